package engine_test

import (
	"testing"
	"time"

	"github.com/tharindu/fitlog/internal/engine"
	"github.com/tharindu/fitlog/internal/model"
)

func weightGoal(start, current, target float64) model.Goal {
	return model.Goal{
		Name:          "Lose Weight",
		Category:      model.GoalWeight,
		StartingValue: start,
		CurrentNumber: current,
		TargetNumber:  target,
	}
}

func TestGoalProgressPercentWeight(t *testing.T) {
	t.Parallel()

	g := weightGoal(73.5, 71.75, 70)
	if pct := engine.GoalProgressPercent(g); pct != 50 {
		t.Fatalf("expected 50%% halfway from 73.5 to 70, got %d", pct)
	}

	g = weightGoal(73.5, 70, 70)
	if pct := engine.GoalProgressPercent(g); pct != 100 {
		t.Fatalf("expected 100%% at target, got %d", pct)
	}

	// Travel past the target still clamps at 100.
	g = weightGoal(73.5, 69, 70)
	if pct := engine.GoalProgressPercent(g); pct != 100 {
		t.Fatalf("expected clamp at 100%%, got %d", pct)
	}
}

func TestGoalProgressPercentWeightDegenerateBaseline(t *testing.T) {
	t.Parallel()

	// Baseline equal to target leaves no distance to travel.
	g := weightGoal(70, 70, 70)
	if pct := engine.GoalProgressPercent(g); pct != 0 {
		t.Fatalf("expected 0%% with zero travel distance, got %d", pct)
	}
}

func TestGoalProgressPercentRatioCategories(t *testing.T) {
	t.Parallel()

	g := model.Goal{Category: model.GoalCardio, CurrentNumber: 3, TargetNumber: 5}
	if pct := engine.GoalProgressPercent(g); pct != 60 {
		t.Fatalf("expected 60%%, got %d", pct)
	}

	// 1800/2200 rounds to 82, not 81.
	g = model.Goal{Category: model.GoalNutrition, CurrentNumber: 1800, TargetNumber: 2200}
	if pct := engine.GoalProgressPercent(g); pct != 82 {
		t.Fatalf("expected rounded 82%%, got %d", pct)
	}

	g = model.Goal{Category: model.GoalSteps, CurrentNumber: 12000, TargetNumber: 10000}
	if pct := engine.GoalProgressPercent(g); pct != 100 {
		t.Fatalf("expected clamp at 100%%, got %d", pct)
	}
}

func TestGoalProgressPercentZeroTarget(t *testing.T) {
	t.Parallel()

	g := model.Goal{Category: model.GoalCardio, CurrentNumber: 10, TargetNumber: 0}
	if pct := engine.GoalProgressPercent(g); pct != 0 {
		t.Fatalf("expected 0%% for unset target, got %d", pct)
	}
}

func TestIsOverdue(t *testing.T) {
	t.Parallel()

	deadline := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	g := model.Goal{Deadline: deadline}

	if engine.IsOverdue(g, deadline.AddDate(0, 0, -1)) {
		t.Fatal("goal before its deadline must not be overdue")
	}
	if engine.IsOverdue(g, deadline) {
		t.Fatal("goal exactly at its deadline must not be overdue")
	}
	if !engine.IsOverdue(g, deadline.Add(time.Hour)) {
		t.Fatal("active goal past its deadline must be overdue")
	}

	g.Completed = true
	if engine.IsOverdue(g, deadline.AddDate(0, 0, 30)) {
		t.Fatal("completed goal is never overdue")
	}
}

func TestDaysRemaining(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g := model.Goal{Deadline: now.AddDate(0, 0, 10)}
	if d := engine.DaysRemaining(g, now); d != 10 {
		t.Fatalf("expected 10 days, got %d", d)
	}

	// Partial days floor.
	g.Deadline = now.Add(36 * time.Hour)
	if d := engine.DaysRemaining(g, now); d != 1 {
		t.Fatalf("expected floor to 1 day, got %d", d)
	}

	g.Deadline = now.AddDate(0, 0, -5)
	if d := engine.DaysRemaining(g, now); d != 0 {
		t.Fatalf("expected 0 for past deadline, got %d", d)
	}
}

func TestStartingBaseline(t *testing.T) {
	t.Parallel()

	if b := engine.StartingBaseline(73.5, 70); b != 73.5 {
		t.Fatalf("expected baseline 73.5, got %v", b)
	}
	if b := engine.StartingBaseline(60, 65); b != 65 {
		t.Fatalf("expected baseline 65, got %v", b)
	}
}

func TestCompleteGoalIdempotent(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	g := model.Goal{Name: "Run 5k", Category: model.GoalCardio, CurrentNumber: 3, TargetNumber: 5}

	done := engine.CompleteGoal(g, now)
	if !done.Completed {
		t.Fatal("goal not marked completed")
	}
	if done.CompletedAt == nil || !done.CompletedAt.Equal(now) {
		t.Fatalf("completed_at not set to now: %v", done.CompletedAt)
	}
	if done.CurrentNumber != done.TargetNumber {
		t.Fatalf("completion must snap current to target, got %v", done.CurrentNumber)
	}
	if pct := engine.GoalProgressPercent(done); pct != 100 {
		t.Fatalf("completed goal must read 100%%, got %d", pct)
	}

	later := now.Add(48 * time.Hour)
	again := engine.CompleteGoal(done, later)
	if !again.CompletedAt.Equal(now) {
		t.Fatalf("repeat completion must not move completed_at: %v", again.CompletedAt)
	}
}

func TestUpdateGoalProgressRejectsCompleted(t *testing.T) {
	t.Parallel()

	g := engine.CompleteGoal(model.Goal{Name: "Hydrate", TargetNumber: 8}, time.Now())
	if _, err := engine.UpdateGoalProgress(g, 4); err == nil {
		t.Fatal("expected error updating a completed goal")
	}
}

func TestUpdateGoalProgressDoesNotAutoComplete(t *testing.T) {
	t.Parallel()

	g := model.Goal{Category: model.GoalCardio, CurrentNumber: 0, TargetNumber: 5}
	updated, err := engine.UpdateGoalProgress(g, 5)
	if err != nil {
		t.Fatalf("update goal progress: %v", err)
	}
	if updated.Completed {
		t.Fatal("progress update must not complete the goal implicitly")
	}
	if !engine.IsAchieved(updated) {
		t.Fatal("goal at target should report achieved")
	}
	if updated.CurrentValue != "5" {
		t.Fatalf("expected display value 5, got %q", updated.CurrentValue)
	}
}
