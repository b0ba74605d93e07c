package fitlog

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tharindu/fitlog/internal/service"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Log and review workouts",
}

var (
	workoutName     string
	workoutType     string
	workoutDate     string
	workoutDuration int
	workoutCalories int
	workoutNotes    string
)

var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(workoutDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			userID, err := service.RequireUserID(sqldb)
			if err != nil {
				return err
			}
			record, err := service.AddWorkout(sqldb, userID, service.WorkoutInput{
				Name:        workoutName,
				Type:        workoutType,
				Date:        date,
				DurationMin: workoutDuration,
				Calories:    workoutCalories,
				Notes:       workoutNotes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%s, %d min, %d kcal)\n",
				record.Name, record.Type, record.DurationMin, record.Calories)
			return nil
		})
	},
}

var (
	workoutFrom string
	workoutTo   string
)

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts in a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to, err := rangeOrLastWeek(workoutFrom, workoutTo)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			userID, err := service.RequireUserID(sqldb)
			if err != nil {
				return err
			}
			// List end is inclusive on the CLI; widen to the next day.
			records, err := service.ListWorkouts(sqldb, userID, from, to.AddDate(0, 0, 1))
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No workouts logged")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tNAME\tTYPE\tMIN\tKCAL")
			for _, r := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%d\t%d\n",
					r.ID, r.Date.Format("2006-01-02"), r.Name, r.Type, r.DurationMin, r.Calories)
			}
			return nil
		})
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			userID, err := service.RequireUserID(sqldb)
			if err != nil {
				return err
			}
			if err := service.DeleteWorkout(sqldb, userID, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted workout")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutAddCmd, workoutListCmd, workoutDeleteCmd)

	workoutAddCmd.Flags().StringVar(&workoutName, "name", "", "Workout name")
	workoutAddCmd.Flags().StringVar(&workoutType, "type", "", "Workout type (cardio, strength, flexibility, hiit)")
	workoutAddCmd.Flags().StringVar(&workoutDate, "date", "", "Date (YYYY-MM-DD, default today)")
	workoutAddCmd.Flags().IntVar(&workoutDuration, "minutes", 0, "Duration in minutes")
	workoutAddCmd.Flags().IntVar(&workoutCalories, "calories", 0, "Calories burned")
	workoutAddCmd.Flags().StringVar(&workoutNotes, "notes", "", "Notes")
	_ = workoutAddCmd.MarkFlagRequired("name")
	_ = workoutAddCmd.MarkFlagRequired("type")
	_ = workoutAddCmd.MarkFlagRequired("minutes")

	workoutListCmd.Flags().StringVar(&workoutFrom, "from", "", "Start date (YYYY-MM-DD)")
	workoutListCmd.Flags().StringVar(&workoutTo, "to", "", "End date inclusive (YYYY-MM-DD)")
}
