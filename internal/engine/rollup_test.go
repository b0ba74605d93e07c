package engine_test

import (
	"testing"
	"time"

	"github.com/tharindu/fitlog/internal/engine"
	"github.com/tharindu/fitlog/internal/model"
)

func workoutOn(date time.Time, workoutType model.WorkoutType, minutes, calories int) model.WorkoutRecord {
	return model.WorkoutRecord{Type: workoutType, Date: date, DurationMin: minutes, Calories: calories}
}

func TestAggregateWorkouts(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, 7)
	records := []model.WorkoutRecord{
		workoutOn(start.Add(9*time.Hour), model.WorkoutCardio, 45, 350),
		workoutOn(start.AddDate(0, 0, 2), model.WorkoutStrength, 30, 250),
	}

	s := engine.AggregateWorkouts(records, start, end)
	if s.Count != 2 {
		t.Fatalf("expected 2 workouts, got %d", s.Count)
	}
	if s.TotalMinutes != 75 || s.TotalCalories != 600 {
		t.Fatalf("unexpected totals: %d min, %d kcal", s.TotalMinutes, s.TotalCalories)
	}
	if s.AverageMinutes != 37 {
		t.Fatalf("expected floor average 37, got %d", s.AverageMinutes)
	}
	if s.FrequencyByType[model.WorkoutCardio] != 1 || s.FrequencyByType[model.WorkoutStrength] != 1 {
		t.Fatalf("unexpected frequency map: %v", s.FrequencyByType)
	}
	if _, ok := s.FrequencyByType[model.WorkoutHIIT]; ok {
		t.Fatal("frequency map must stay sparse for absent types")
	}
}

func TestAggregateWorkoutsHalfOpenWindow(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, 7)
	records := []model.WorkoutRecord{
		workoutOn(start, model.WorkoutCardio, 30, 200),                      // on start: in
		workoutOn(end, model.WorkoutCardio, 30, 200),                        // on end: out
		workoutOn(start.Add(-time.Nanosecond), model.WorkoutCardio, 30, 0), // before start: out
	}

	s := engine.AggregateWorkouts(records, start, end)
	if s.Count != 1 {
		t.Fatalf("half-open window should include only the start record, got %d", s.Count)
	}
}

func TestAggregateWorkoutsEmptyAndInverted(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.Local)
	s := engine.AggregateWorkouts(nil, start, start.AddDate(0, 0, 7))
	if s.Count != 0 || s.AverageMinutes != 0 {
		t.Fatalf("empty window must not divide by zero: %+v", s)
	}

	records := []model.WorkoutRecord{workoutOn(start, model.WorkoutCardio, 30, 200)}
	s = engine.AggregateWorkouts(records, start.AddDate(0, 0, 7), start)
	if s.Count != 0 {
		t.Fatalf("inverted window must match nothing, got %d", s.Count)
	}
}

func TestAggregateNutrition(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, 1)
	meals := []model.Meal{
		mealOf(model.MealBreakfast, start.Add(8*time.Hour), foodServing(600, 30, 60, 20)),
		mealOf(model.MealDinner, end.Add(19*time.Hour), foodServing(800, 50, 80, 25)),
	}

	s := engine.AggregateNutrition(meals, start, end)
	if s.DayCount != 2 {
		t.Fatalf("expected inclusive day count 2, got %d", s.DayCount)
	}
	if s.TotalCalories != 1400 {
		t.Fatalf("expected 1400 kcal total, got %d", s.TotalCalories)
	}
	if s.AvgDailyCalories != 700 {
		t.Fatalf("expected 700 kcal/day, got %v", s.AvgDailyCalories)
	}
	if s.AvgDailyProteinG != 40 {
		t.Fatalf("expected 40 g/day protein, got %v", s.AvgDailyProteinG)
	}

	// 40g protein * 4 kcal over 700 kcal.
	wantProteinPct := 40.0 * 4 / 700 * 100
	if diff := s.Distribution.ProteinPct - wantProteinPct; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected protein share %v, got %v", wantProteinPct, s.Distribution.ProteinPct)
	}
}

func TestAggregateNutritionEmptyDaysZeroSafe(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.Local)
	s := engine.AggregateNutrition(nil, start, start.AddDate(0, 0, 6))
	if s.DayCount != 7 {
		t.Fatalf("expected 7 days, got %d", s.DayCount)
	}
	if s.Distribution.ProteinPct != 0 || s.Distribution.CarbsPct != 0 || s.Distribution.FatPct != 0 {
		t.Fatalf("macro shares must be zero with nothing logged: %+v", s.Distribution)
	}
}

func TestAggregateNutritionInvertedWindow(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.Local)
	s := engine.AggregateNutrition(nil, start, start.AddDate(0, 0, -1))
	if s.DayCount != 0 || s.TotalCalories != 0 {
		t.Fatalf("inverted window must yield the zero summary: %+v", s)
	}
}

func TestComputeCalorieBalance(t *testing.T) {
	t.Parallel()

	b := engine.ComputeCalorieBalance(14000, 600, 1800, 7)
	if b.Burned != 600+1800*7 {
		t.Fatalf("expected burned %d, got %d", 600+1800*7, b.Burned)
	}
	if b.Net != 14000-13200 {
		t.Fatalf("expected net %d, got %d", 14000-13200, b.Net)
	}

	deficit := engine.ComputeCalorieBalance(10000, 600, 1800, 7)
	if deficit.Net >= 0 {
		t.Fatalf("expected negative net in a deficit, got %d", deficit.Net)
	}
}

func TestSummarizeGoals(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	goals := []model.Goal{
		{Category: model.GoalWeight, Priority: model.PriorityHigh, Completed: true, Deadline: now.AddDate(0, 0, 10)},
		{Category: model.GoalCardio, Priority: model.PriorityMedium, Deadline: now.AddDate(0, 0, -1)},
		{Category: model.GoalCardio, Priority: model.PriorityLow, Deadline: now.AddDate(0, 0, 5)},
		{Category: model.GoalSteps, Priority: model.PriorityMedium, Deadline: now.AddDate(0, 0, 20)},
	}

	s := engine.SummarizeGoals(goals, now)
	if s.Total != 4 || s.Completed != 1 || s.Overdue != 1 || s.OnTrack != 2 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.CompletionRate != 25 {
		t.Fatalf("expected 25%% completion, got %v", s.CompletionRate)
	}
	if s.ByCategory[model.GoalCardio] != 2 {
		t.Fatalf("unexpected category counts: %v", s.ByCategory)
	}
	if s.ByPriority[model.PriorityMedium] != 2 {
		t.Fatalf("unexpected priority counts: %v", s.ByPriority)
	}
}

func TestSummarizeGoalsEmpty(t *testing.T) {
	t.Parallel()

	s := engine.SummarizeGoals(nil, time.Now())
	if s.Total != 0 || s.CompletionRate != 0 {
		t.Fatalf("empty list must yield zero summary: %+v", s)
	}
}

func TestWorkoutTrendsZeroFillsDays(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, 2)
	records := []model.WorkoutRecord{
		workoutOn(start.Add(9*time.Hour), model.WorkoutCardio, 45, 350),
	}

	trends := engine.WorkoutTrends(records, start, end)
	if len(trends) != 3 {
		t.Fatalf("expected one point per day, got %d", len(trends))
	}
	if trends[0].Minutes != 45 || trends[0].Calories != 350 {
		t.Fatalf("unexpected first day: %+v", trends[0])
	}
	if trends[1].Minutes != 0 || trends[2].Minutes != 0 {
		t.Fatalf("rest days must be zero-filled: %+v", trends)
	}
	if trends[2].Date != end.Format("2006-01-02") {
		t.Fatalf("unexpected last date %q", trends[2].Date)
	}
}

func TestMostActiveDay(t *testing.T) {
	t.Parallel()

	monday := time.Date(2026, 4, 6, 9, 0, 0, 0, time.Local)
	records := []model.WorkoutRecord{
		workoutOn(monday, model.WorkoutCardio, 30, 200),
		workoutOn(monday.AddDate(0, 0, 7), model.WorkoutStrength, 30, 200),
		workoutOn(monday.AddDate(0, 0, 2), model.WorkoutCardio, 30, 200),
	}
	if day := engine.MostActiveDay(records); day != "Monday" {
		t.Fatalf("expected Monday, got %q", day)
	}
	if day := engine.MostActiveDay(nil); day != "" {
		t.Fatalf("expected empty for no records, got %q", day)
	}
}
