package fitlog

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tharindu/fitlog/internal/model"
	"github.com/tharindu/fitlog/internal/service"
)

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Configure daily nutrition targets",
}

var (
	targetCalories int
	targetProtein  float64
	targetCarbs    float64
	targetFat      float64
)

var targetSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set daily nutrition targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			userID, err := service.RequireUserID(sqldb)
			if err != nil {
				return err
			}
			current, err := service.NutritionTargetsFor(sqldb, userID)
			if err != nil {
				return err
			}
			targets := model.NutritionTargets{
				UserID:   userID,
				Calories: current.Calories,
				ProteinG: current.ProteinG,
				CarbsG:   current.CarbsG,
				FatG:     current.FatG,
			}
			if cmd.Flags().Changed("calories") {
				targets.Calories = targetCalories
			}
			if cmd.Flags().Changed("protein") {
				targets.ProteinG = targetProtein
			}
			if cmd.Flags().Changed("carbs") {
				targets.CarbsG = targetCarbs
			}
			if cmd.Flags().Changed("fat") {
				targets.FatG = targetFat
			}
			if err := service.SetNutritionTargets(sqldb, targets); err != nil {
				return err
			}
			printTargets(cmd, targets)
			return nil
		})
	},
}

var targetShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show daily nutrition targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			userID, err := service.RequireUserID(sqldb)
			if err != nil {
				return err
			}
			targets, err := service.NutritionTargetsFor(sqldb, userID)
			if err != nil {
				return err
			}
			printTargets(cmd, targets)
			return nil
		})
	},
}

func printTargets(cmd *cobra.Command, t model.NutritionTargets) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Calories: %d kcal\n", t.Calories)
	fmt.Fprintf(out, "Protein:  %.0f g\n", t.ProteinG)
	fmt.Fprintf(out, "Carbs:    %.0f g\n", t.CarbsG)
	fmt.Fprintf(out, "Fat:      %.0f g\n", t.FatG)
}

func init() {
	rootCmd.AddCommand(targetCmd)
	targetCmd.AddCommand(targetSetCmd, targetShowCmd)

	targetSetCmd.Flags().IntVar(&targetCalories, "calories", 0, "Daily calorie target")
	targetSetCmd.Flags().Float64Var(&targetProtein, "protein", 0, "Daily protein target in grams")
	targetSetCmd.Flags().Float64Var(&targetCarbs, "carbs", 0, "Daily carb target in grams")
	targetSetCmd.Flags().Float64Var(&targetFat, "fat", 0, "Daily fat target in grams")
}
