package engine

import (
	"fmt"
	"time"
)

// DefaultRestingBurnPerDay is the flat resting-metabolism estimate
// used when the reporter has no user-specific value. A proper estimate
// would use age, weight and height; the tracked profile does not carry
// them.
const DefaultRestingBurnPerDay = 1800

// Reporter assembles a full progress report from the injected
// collaborators. It holds no state of its own; every call reads a
// fresh snapshot from the store.
type Reporter struct {
	Store    RecordStore
	Sessions SessionProvider
	Clock    Clock
	// RestingBurnPerDay overrides DefaultRestingBurnPerDay when > 0.
	RestingBurnPerDay int
}

type ProgressReport struct {
	FromDate        string           `json:"from_date"`
	ToDate          string           `json:"to_date"`
	Workouts        WorkoutSummary   `json:"workouts"`
	WorkoutTrends   []DayTrend       `json:"workout_trends"`
	Nutrition       NutritionSummary `json:"nutrition"`
	Balance         CalorieBalance   `json:"calorie_balance"`
	Goals           GoalSummary      `json:"goals"`
	Insights        []string         `json:"insights"`
	Recommendations []string         `json:"recommendations"`
	GeneratedAt     time.Time        `json:"generated_at"`
}

// ErrNotSignedIn reports a missing session; the presentation layer
// turns it into user guidance.
var ErrNotSignedIn = fmt.Errorf("not signed in")

// ProgressReport computes the period report for the active user. Store
// errors surface unchanged; an inverted window degrades to an empty
// report rather than failing.
func (r Reporter) ProgressReport(window DateRange) (*ProgressReport, error) {
	userID, ok, err := r.Sessions.CurrentUserID()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotSignedIn
	}
	return r.ProgressReportFor(userID, window)
}

func (r Reporter) ProgressReportFor(userID string, window DateRange) (*ProgressReport, error) {
	now := r.Clock.Now()

	workouts, err := r.Store.ListWorkouts(userID, window)
	if err != nil {
		return nil, err
	}
	meals, err := r.Store.ListMeals(userID, window)
	if err != nil {
		return nil, err
	}
	goals, err := r.Store.ListGoals(userID, false)
	if err != nil {
		return nil, err
	}

	report := &ProgressReport{
		FromDate:    window.Start.Format("2006-01-02"),
		ToDate:      window.End.Format("2006-01-02"),
		GeneratedAt: now,
	}

	// The workout window is half-open; extend the caller's inclusive
	// end date by one day so same-day reports see their records.
	workoutEnd := beginningOfDay(window.End).AddDate(0, 0, 1)
	report.Workouts = AggregateWorkouts(workouts, beginningOfDay(window.Start), workoutEnd)
	report.Workouts.MostActiveDay = MostActiveDay(workouts)
	report.WorkoutTrends = WorkoutTrends(workouts, window.Start, window.End)
	report.Nutrition = AggregateNutrition(meals, window.Start, window.End)

	resting := r.RestingBurnPerDay
	if resting <= 0 {
		resting = DefaultRestingBurnPerDay
	}
	report.Balance = ComputeCalorieBalance(
		report.Nutrition.TotalCalories,
		report.Workouts.TotalCalories,
		resting,
		report.Nutrition.DayCount,
	)
	report.Goals = SummarizeGoals(goals, now)

	in := RuleInput{
		Workouts:  report.Workouts,
		Nutrition: report.Nutrition,
		Balance:   report.Balance,
		Goals:     report.Goals,
	}
	report.Insights = Insights(in)
	report.Recommendations = Recommendations(in)
	return report, nil
}
