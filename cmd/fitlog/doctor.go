package fitlog

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tharindu/fitlog/internal/service"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.RunDoctor(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Orphan meal items: %d\n", report.OrphanMealItems)
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicate meals per day/type: %d\n", report.DuplicateMeals)
			fmt.Fprintf(cmd.OutOrStdout(), "Orphan sessions: %d\n", report.OrphanSessions)
			if report.OrphanMealItems > 0 || report.DuplicateMeals > 0 || report.OrphanSessions > 0 {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
