package fitlog

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tharindu/fitlog/internal/service"
)

var reminderCmd = &cobra.Command{
	Use:   "reminder",
	Short: "Manage reminder definitions",
}

var (
	reminderTitle       string
	reminderType        string
	reminderTime        string
	reminderDays        []string
	reminderDescription string
)

var reminderAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a reminder",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			userID, err := service.RequireUserID(sqldb)
			if err != nil {
				return err
			}
			reminder, err := service.AddReminder(sqldb, userID, service.ReminderInput{
				Title:       reminderTitle,
				Type:        reminderType,
				TimeLabel:   reminderTime,
				RepeatDays:  reminderDays,
				Description: reminderDescription,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added reminder %q (%s at %s)\n",
				reminder.Title, reminder.Type, reminder.TimeLabel)
			return nil
		})
	},
}

var reminderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			userID, err := service.RequireUserID(sqldb)
			if err != nil {
				return err
			}
			reminders, err := service.ListReminders(sqldb, userID)
			if err != nil {
				return err
			}
			if len(reminders) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No reminders")
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ID\tTITLE\tTYPE\tTIME\tDAYS\tENABLED")
			for _, r := range reminders {
				enabled := "yes"
				if !r.Enabled {
					enabled = "no"
				}
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\t%s\n",
					r.ID, r.Title, r.Type, r.TimeLabel, strings.Join(r.RepeatDays, ","), enabled)
			}
			return nil
		})
	},
}

var reminderEnableCmd = &cobra.Command{
	Use:   "enable <id>",
	Short: "Enable a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setReminderEnabled(cmd, args[0], true)
	},
}

var reminderDisableCmd = &cobra.Command{
	Use:   "disable <id>",
	Short: "Disable a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setReminderEnabled(cmd, args[0], false)
	},
}

func setReminderEnabled(cmd *cobra.Command, id string, enabled bool) error {
	return withDB(func(sqldb *sql.DB) error {
		userID, err := service.RequireUserID(sqldb)
		if err != nil {
			return err
		}
		if err := service.SetReminderEnabled(sqldb, userID, id, enabled); err != nil {
			return err
		}
		state := "enabled"
		if !enabled {
			state = "disabled"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Reminder %s\n", state)
		return nil
	})
}

var reminderDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			userID, err := service.RequireUserID(sqldb)
			if err != nil {
				return err
			}
			if err := service.DeleteReminder(sqldb, userID, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted reminder")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(reminderCmd)
	reminderCmd.AddCommand(reminderAddCmd, reminderListCmd, reminderEnableCmd, reminderDisableCmd, reminderDeleteCmd)

	reminderAddCmd.Flags().StringVar(&reminderTitle, "title", "", "Reminder title")
	reminderAddCmd.Flags().StringVar(&reminderType, "type", "", "Reminder type (workout, water, meal, medication, sleep, weigh-in, custom)")
	reminderAddCmd.Flags().StringVar(&reminderTime, "time", "", "Display time, e.g. 07:00 AM")
	reminderAddCmd.Flags().StringSliceVar(&reminderDays, "days", nil, "Repeat days, e.g. Mon,Wed,Fri")
	reminderAddCmd.Flags().StringVar(&reminderDescription, "description", "", "Description")
	_ = reminderAddCmd.MarkFlagRequired("title")
	_ = reminderAddCmd.MarkFlagRequired("type")
}
