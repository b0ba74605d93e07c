package fitlog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tharindu/fitlog/internal/engine"
	"github.com/tharindu/fitlog/internal/service"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Track goals and their progress",
}

var (
	goalName        string
	goalCategory    string
	goalCurrent     float64
	goalTarget      float64
	goalDeadline    string
	goalPriority    string
	goalDescription string
)

var goalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		deadline, err := parseDate("--deadline", goalDeadline)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			userID, err := service.RequireUserID(sqldb)
			if err != nil {
				return err
			}
			goal, err := service.AddGoal(sqldb, userID, service.GoalInput{
				Name:          goalName,
				Category:      goalCategory,
				CurrentNumber: goalCurrent,
				TargetNumber:  goalTarget,
				Deadline:      deadline,
				Priority:      goalPriority,
				Description:   goalDescription,
			})
			if err != nil {
				return err
			}
			info := goal.Category.Info()
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s goal %q: %s -> %s %s by %s\n",
				info.Label, goal.Name, goal.CurrentValue, goal.TargetValue, info.Unit,
				goal.Deadline.Format("2006-01-02"))
			return nil
		})
	},
}

var goalListAll bool

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals with progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			userID, err := service.RequireUserID(sqldb)
			if err != nil {
				return err
			}
			goals, err := service.ListGoals(sqldb, userID, !goalListAll)
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No goals")
				return nil
			}
			now := time.Now()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ID\tNAME\tCATEGORY\tPROGRESS\tSTATUS\tDEADLINE")
			for _, g := range goals {
				status := "active"
				switch {
				case g.Completed:
					status = "completed"
				case engine.IsOverdue(g, now):
					status = "overdue"
				}
				fmt.Fprintf(out, "%s\t%s\t%s\t%d%%\t%s\t%s (%dd left)\n",
					g.ID, g.Name, g.Category, engine.GoalProgressPercent(g), status,
					g.Deadline.Format("2006-01-02"), engine.DaysRemaining(g, now))
			}
			return nil
		})
	},
}

var goalProgressValue float64

var goalProgressCmd = &cobra.Command{
	Use:   "progress <id>",
	Short: "Record a new current value for a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			userID, err := service.RequireUserID(sqldb)
			if err != nil {
				return err
			}
			goal, err := service.UpdateGoalProgress(sqldb, userID, args[0], goalProgressValue, time.Now())
			if err != nil {
				return err
			}
			if goal.Completed {
				fmt.Fprintf(cmd.OutOrStdout(), "Goal %q completed\n", goal.Name)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goal %q at %d%% (%s / %s %s)\n",
				goal.Name, engine.GoalProgressPercent(goal),
				goal.CurrentValue, goal.TargetValue, goal.Category.Info().Unit)
			return nil
		})
	},
}

var goalCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a goal as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			userID, err := service.RequireUserID(sqldb)
			if err != nil {
				return err
			}
			goal, err := service.CompleteGoal(sqldb, userID, args[0], time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goal %q completed\n", goal.Name)
			return nil
		})
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			userID, err := service.RequireUserID(sqldb)
			if err != nil {
				return err
			}
			if err := service.DeleteGoal(sqldb, userID, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted goal")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalAddCmd, goalListCmd, goalProgressCmd, goalCompleteCmd, goalDeleteCmd)

	goalAddCmd.Flags().StringVar(&goalName, "name", "", "Goal name")
	goalAddCmd.Flags().StringVar(&goalCategory, "category", "", "Category (weight, cardio, strength, nutrition, hydration, activity, sleep, steps)")
	goalAddCmd.Flags().Float64Var(&goalCurrent, "current", 0, "Current value")
	goalAddCmd.Flags().Float64Var(&goalTarget, "target", 0, "Target value")
	goalAddCmd.Flags().StringVar(&goalDeadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	goalAddCmd.Flags().StringVar(&goalPriority, "priority", "", "Priority (low, medium, high, urgent)")
	goalAddCmd.Flags().StringVar(&goalDescription, "description", "", "Description")
	_ = goalAddCmd.MarkFlagRequired("name")
	_ = goalAddCmd.MarkFlagRequired("category")
	_ = goalAddCmd.MarkFlagRequired("target")
	_ = goalAddCmd.MarkFlagRequired("deadline")

	goalListCmd.Flags().BoolVar(&goalListAll, "all", false, "Include completed goals")

	goalProgressCmd.Flags().Float64Var(&goalProgressValue, "value", 0, "New current value")
	_ = goalProgressCmd.MarkFlagRequired("value")
}
