package fitlog

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tharindu/fitlog/internal/service"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's nutrition progress against targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(todayDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			userID, err := service.RequireUserID(sqldb)
			if err != nil {
				return err
			}
			progress, targets, err := service.TodayProgress(sqldb, userID, date)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Progress for %s\n\n", date.Format("2006-01-02"))
			fmt.Fprintf(out, "Calories: %d / %d kcal (%d%%), %d remaining\n",
				progress.ConsumedCalories, targets.Calories,
				progress.CalorieDisplayPct, progress.RemainingCalories)
			if progress.CalorieSurplus > 0 {
				fmt.Fprintf(out, "  %d kcal over target\n", progress.CalorieSurplus)
			}
			fmt.Fprintf(out, "Protein:  %.1f / %.0f g (%d%%)\n",
				progress.ConsumedProteinG, targets.ProteinG, progress.ProteinDisplayPct)
			fmt.Fprintf(out, "Carbs:    %.1f / %.0f g (%d%%)\n",
				progress.ConsumedCarbsG, targets.CarbsG, progress.CarbsDisplayPct)
			fmt.Fprintf(out, "Fat:      %.1f / %.0f g (%d%%)\n",
				progress.ConsumedFatG, targets.FatG, progress.FatDisplayPct)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date (YYYY-MM-DD, default today)")
}
