package fitlog

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "fitlog",
	Short: "fitlog tracks workouts, meals and goals from your terminal",
	Long:  "fitlog is a local-first fitness tracking CLI with workout and meal logging, goals with progress tracking, reminders and period analytics.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
