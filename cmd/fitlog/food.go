package fitlog

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tharindu/fitlog/internal/service"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Manage the food catalog",
}

var (
	foodName     string
	foodCalories int
	foodServing  string
	foodProtein  float64
	foodCarbs    float64
	foodFat      float64
	foodFiber    float64
	foodSugar    float64
	foodSodium   float64
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food to the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			item, err := service.AddFood(sqldb, service.FoodInput{
				Name:               foodName,
				CaloriesPerServing: foodCalories,
				ServingSize:        foodServing,
				ProteinG:           foodProtein,
				CarbsG:             foodCarbs,
				FatG:               foodFat,
				FiberG:             foodFiber,
				SugarG:             foodSugar,
				SodiumMg:           foodSodium,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%d kcal per %s)\n",
				item.Name, item.CaloriesPerServing, item.ServingSize)
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListFoods(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "NAME\tKCAL\tSERVING\tPROTEIN\tCARBS\tFAT")
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\t%.1f\t%.1f\t%.1f\n",
					item.Name, item.CaloriesPerServing, item.ServingSize,
					item.ProteinG, item.CarbsG, item.FatG)
			}
			return nil
		})
	},
}

var foodShowCmd = &cobra.Command{
	Use:   "show <id-or-name>",
	Short: "Show one food's full nutrition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			item, err := service.FoodByRef(sqldb, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", item.Name, item.ServingSize)
			fmt.Fprintf(out, "  Calories: %d kcal\n", item.CaloriesPerServing)
			fmt.Fprintf(out, "  Protein:  %.1f g\n", item.ProteinG)
			fmt.Fprintf(out, "  Carbs:    %.1f g\n", item.CarbsG)
			fmt.Fprintf(out, "  Fat:      %.1f g\n", item.FatG)
			fmt.Fprintf(out, "  Fiber:    %.1f g\n", item.FiberG)
			fmt.Fprintf(out, "  Sugar:    %.1f g\n", item.SugarG)
			fmt.Fprintf(out, "  Sodium:   %.0f mg\n", item.SodiumMg)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodAddCmd, foodListCmd, foodShowCmd)

	foodAddCmd.Flags().StringVar(&foodName, "name", "", "Food name")
	foodAddCmd.Flags().IntVar(&foodCalories, "calories", 0, "Calories per serving")
	foodAddCmd.Flags().StringVar(&foodServing, "serving", "", "Serving size description")
	foodAddCmd.Flags().Float64Var(&foodProtein, "protein", 0, "Protein grams per serving")
	foodAddCmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "Carb grams per serving")
	foodAddCmd.Flags().Float64Var(&foodFat, "fat", 0, "Fat grams per serving")
	foodAddCmd.Flags().Float64Var(&foodFiber, "fiber", 0, "Fiber grams per serving")
	foodAddCmd.Flags().Float64Var(&foodSugar, "sugar", 0, "Sugar grams per serving")
	foodAddCmd.Flags().Float64Var(&foodSodium, "sodium", 0, "Sodium milligrams per serving")
	_ = foodAddCmd.MarkFlagRequired("name")
	_ = foodAddCmd.MarkFlagRequired("calories")
}
