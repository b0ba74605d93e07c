package fitlog

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tharindu/fitlog/internal/service"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log and review meals",
}

var (
	mealType      string
	mealDate      string
	mealTimeLabel string
	mealItemSpecs []string
)

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal",
	Long: `Log food items for a meal. Each --item takes "food" or "food:quantity",
where food is a catalog id or name. Logging the same meal type twice on
one day folds the new items into the existing meal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(mealDate)
		if err != nil {
			return err
		}
		items := make([]service.MealItemInput, 0, len(mealItemSpecs))
		for _, spec := range mealItemSpecs {
			item, err := parseMealItem(spec)
			if err != nil {
				return err
			}
			items = append(items, item)
		}
		return withDB(func(sqldb *sql.DB) error {
			userID, err := service.RequireUserID(sqldb)
			if err != nil {
				return err
			}
			meal, merged, err := service.AddMeal(sqldb, userID, service.MealInput{
				Type:      mealType,
				TimeLabel: mealTimeLabel,
				Date:      date,
				Items:     items,
			})
			if err != nil {
				return err
			}
			verb := "Logged"
			if merged {
				verb = "Merged into existing"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d item(s), %d kcal total\n",
				verb, meal.Type, len(meal.Items), meal.TotalCalories())
			return nil
		})
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List one day's meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(mealDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			userID, err := service.RequireUserID(sqldb)
			if err != nil {
				return err
			}
			meals, err := service.ListMealsByDate(sqldb, userID, date)
			if err != nil {
				return err
			}
			if len(meals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No meals logged")
				return nil
			}
			out := cmd.OutOrStdout()
			for _, m := range meals {
				fmt.Fprintf(out, "%s (%s)  %d kcal  [%s]\n", m.Type, m.TimeLabel, m.TotalCalories(), m.ID)
				for _, item := range m.Items {
					fmt.Fprintf(out, "  %-24s x%.2g  %d kcal\n",
						item.Food.Name, item.Quantity, item.TotalCalories())
				}
			}
			return nil
		})
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a meal and its items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			userID, err := service.RequireUserID(sqldb)
			if err != nil {
				return err
			}
			if err := service.DeleteMeal(sqldb, userID, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted meal")
			return nil
		})
	},
}

func parseMealItem(spec string) (service.MealItemInput, error) {
	item := service.MealItemInput{Quantity: 1}
	ref := spec
	if i := strings.LastIndex(spec, ":"); i >= 0 {
		ref = spec[:i]
		if _, err := fmt.Sscanf(spec[i+1:], "%g", &item.Quantity); err != nil {
			return service.MealItemInput{}, fmt.Errorf("invalid --item %q (expected food or food:quantity)", spec)
		}
	}
	item.FoodRef = strings.TrimSpace(ref)
	if item.FoodRef == "" {
		return service.MealItemInput{}, fmt.Errorf("invalid --item %q (empty food reference)", spec)
	}
	return item, nil
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd, mealListCmd, mealDeleteCmd)

	mealAddCmd.Flags().StringVar(&mealType, "type", "", "Meal type (breakfast, lunch, dinner, snack)")
	mealAddCmd.Flags().StringVar(&mealDate, "date", "", "Date (YYYY-MM-DD, default today)")
	mealAddCmd.Flags().StringVar(&mealTimeLabel, "time", "", "Display time, e.g. 08:30 AM")
	mealAddCmd.Flags().StringArrayVar(&mealItemSpecs, "item", nil, "Food item as food or food:quantity (repeatable)")
	_ = mealAddCmd.MarkFlagRequired("type")
	_ = mealAddCmd.MarkFlagRequired("item")

	mealListCmd.Flags().StringVar(&mealDate, "date", "", "Date (YYYY-MM-DD, default today)")
}
