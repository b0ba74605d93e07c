package fitlog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tharindu/fitlog/internal/engine"
	"github.com/tharindu/fitlog/internal/model"
	"github.com/tharindu/fitlog/internal/service"
)

var (
	reportPeriod string
	reportFrom   string
	reportTo     string
	reportJSON   bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a progress report for a period",
	Long: `Generate a workout, nutrition and goal progress report. The window is
either --period (week, month, quarter, year, counted back from today) or
an explicit --from/--to date range.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := reportWindow()
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			reporter := service.NewReporter(sqldb)
			report, err := reporter.ProgressReport(window)
			if err != nil {
				return err
			}
			if reportJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			printReport(cmd, report)
			return nil
		})
	},
}

func reportWindow() (engine.DateRange, error) {
	if strings.TrimSpace(reportFrom) != "" || strings.TrimSpace(reportTo) != "" {
		start, end, err := rangeOrLastWeek(reportFrom, reportTo)
		if err != nil {
			return engine.DateRange{}, err
		}
		return engine.DateRange{Start: start, End: end}, nil
	}

	end := time.Now()
	var start time.Time
	switch strings.ToLower(strings.TrimSpace(reportPeriod)) {
	case "", "week":
		start = end.AddDate(0, 0, -6)
	case "month":
		start = end.AddDate(0, -1, 0)
	case "quarter":
		start = end.AddDate(0, -3, 0)
	case "year":
		start = end.AddDate(-1, 0, 0)
	default:
		return engine.DateRange{}, fmt.Errorf("invalid --period %q (expected week, month, quarter or year)", reportPeriod)
	}
	return engine.DateRange{Start: start, End: end}, nil
}

func printReport(cmd *cobra.Command, r *engine.ProgressReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Progress report %s to %s\n", r.FromDate, r.ToDate)

	fmt.Fprintln(out, "\nWorkouts")
	fmt.Fprintf(out, "  Sessions:     %d\n", r.Workouts.Count)
	fmt.Fprintf(out, "  Total time:   %d min (avg %d min/session)\n",
		r.Workouts.TotalMinutes, r.Workouts.AverageMinutes)
	fmt.Fprintf(out, "  Burned:       %d kcal\n", r.Workouts.TotalCalories)
	if r.Workouts.MostActiveDay != "" {
		fmt.Fprintf(out, "  Most active:  %s\n", r.Workouts.MostActiveDay)
	}
	if len(r.Workouts.FrequencyByType) > 0 {
		types := make([]string, 0, len(r.Workouts.FrequencyByType))
		for t := range r.Workouts.FrequencyByType {
			types = append(types, string(t))
		}
		sort.Strings(types)
		parts := make([]string, 0, len(types))
		for _, t := range types {
			parts = append(parts, fmt.Sprintf("%s x%d", t, r.Workouts.FrequencyByType[model.WorkoutType(t)]))
		}
		fmt.Fprintf(out, "  By type:      %s\n", strings.Join(parts, ", "))
	}

	fmt.Fprintln(out, "\nNutrition")
	fmt.Fprintf(out, "  Consumed:     %d kcal over %d day(s) (avg %.0f kcal/day)\n",
		r.Nutrition.TotalCalories, r.Nutrition.DayCount, r.Nutrition.AvgDailyCalories)
	fmt.Fprintf(out, "  Macros:       %.0f%% protein, %.0f%% carbs, %.0f%% fat\n",
		r.Nutrition.Distribution.ProteinPct, r.Nutrition.Distribution.CarbsPct,
		r.Nutrition.Distribution.FatPct)

	fmt.Fprintln(out, "\nCalorie balance")
	fmt.Fprintf(out, "  Consumed %d, burned %d, net %+d kcal\n",
		r.Balance.Consumed, r.Balance.Burned, r.Balance.Net)

	fmt.Fprintln(out, "\nGoals")
	fmt.Fprintf(out, "  %d total: %d completed, %d overdue, %d on track (%.0f%% completion)\n",
		r.Goals.Total, r.Goals.Completed, r.Goals.Overdue, r.Goals.OnTrack, r.Goals.CompletionRate)

	if len(r.Insights) > 0 {
		fmt.Fprintln(out, "\nInsights")
		for _, line := range r.Insights {
			fmt.Fprintf(out, "  - %s\n", line)
		}
	}
	if len(r.Recommendations) > 0 {
		fmt.Fprintln(out, "\nRecommendations")
		for _, line := range r.Recommendations {
			fmt.Fprintf(out, "  - %s\n", line)
		}
	}
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportPeriod, "period", "week", "Report period (week, month, quarter, year)")
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "Start date (YYYY-MM-DD), overrides --period")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "End date inclusive (YYYY-MM-DD)")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Emit the report as JSON")
}
