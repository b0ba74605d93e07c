package service_test

import (
	"testing"
	"time"

	"github.com/tharindu/fitlog/internal/engine"
	"github.com/tharindu/fitlog/internal/service"
)

func TestAddGoalCapturesBaseline(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	userID := signUpTestUser(t, db, "user@example.com")
	goal, err := service.AddGoal(db, userID, service.GoalInput{
		Name:          "Lose Weight",
		Category:      "weight",
		CurrentNumber: 73.5,
		TargetNumber:  70,
		Deadline:      time.Now().AddDate(0, 2, 0),
		Priority:      "high",
	})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if goal.StartingValue != 73.5 {
		t.Fatalf("expected starting baseline 73.5, got %v", goal.StartingValue)
	}
	if goal.CurrentValue != "73.5" || goal.TargetValue != "70" {
		t.Fatalf("unexpected display values: %q / %q", goal.CurrentValue, goal.TargetValue)
	}

	// Halfway down reads 50%.
	updated, err := service.UpdateGoalProgress(db, userID, goal.ID, 71.75, time.Now())
	if err != nil {
		t.Fatalf("update progress: %v", err)
	}
	if pct := engine.GoalProgressPercent(updated); pct != 50 {
		t.Fatalf("expected 50%%, got %d", pct)
	}

	// The baseline survives a round trip through the store.
	stored, err := service.GetGoal(db, userID, goal.ID)
	if err != nil {
		t.Fatalf("get goal: %v", err)
	}
	if stored.StartingValue != 73.5 {
		t.Fatalf("baseline lost on round trip: %v", stored.StartingValue)
	}
}

func TestUpdateGoalProgressAutoCompletes(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	userID := signUpTestUser(t, db, "user@example.com")
	goal, err := service.AddGoal(db, userID, service.GoalInput{
		Name:          "Weekly Cardio",
		Category:      "cardio",
		CurrentNumber: 0,
		TargetNumber:  5,
		Deadline:      time.Now().AddDate(0, 0, 7),
	})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}

	now := time.Now()
	updated, err := service.UpdateGoalProgress(db, userID, goal.ID, 5, now)
	if err != nil {
		t.Fatalf("update progress: %v", err)
	}
	if !updated.Completed {
		t.Fatal("reaching the target must complete the goal")
	}
	if updated.CompletedAt == nil {
		t.Fatal("completed_at not set")
	}

	// Completed goals reject further progress updates.
	if _, err := service.UpdateGoalProgress(db, userID, goal.ID, 6, now); err == nil {
		t.Fatal("expected update of completed goal to fail")
	}
}

func TestCompleteGoalIsIdempotent(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	userID := signUpTestUser(t, db, "user@example.com")
	goal, err := service.AddGoal(db, userID, service.GoalInput{
		Name:          "Hydration",
		Category:      "hydration",
		CurrentNumber: 3,
		TargetNumber:  8,
		Deadline:      time.Now().AddDate(0, 0, 30),
	})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}

	first := time.Now()
	done, err := service.CompleteGoal(db, userID, goal.ID, first)
	if err != nil {
		t.Fatalf("complete goal: %v", err)
	}
	if !done.Completed || done.CurrentNumber != 8 {
		t.Fatalf("unexpected completed goal: %+v", done)
	}

	again, err := service.CompleteGoal(db, userID, goal.ID, first.Add(time.Hour))
	if err != nil {
		t.Fatalf("repeat complete: %v", err)
	}
	if !again.CompletedAt.Equal(*done.CompletedAt) {
		t.Fatalf("repeat completion moved completed_at: %v vs %v", again.CompletedAt, done.CompletedAt)
	}
}

func TestListGoalsActiveFilter(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	userID := signUpTestUser(t, db, "user@example.com")
	deadline := time.Now().AddDate(0, 1, 0)
	active, err := service.AddGoal(db, userID, service.GoalInput{
		Name: "Steps", Category: "steps", TargetNumber: 10000, Deadline: deadline,
	})
	if err != nil {
		t.Fatalf("add active goal: %v", err)
	}
	completed, err := service.AddGoal(db, userID, service.GoalInput{
		Name: "Sleep", Category: "sleep", TargetNumber: 8, Deadline: deadline,
	})
	if err != nil {
		t.Fatalf("add second goal: %v", err)
	}
	if _, err := service.CompleteGoal(db, userID, completed.ID, time.Now()); err != nil {
		t.Fatalf("complete goal: %v", err)
	}

	goals, err := service.ListGoals(db, userID, true)
	if err != nil {
		t.Fatalf("list active goals: %v", err)
	}
	if len(goals) != 1 || goals[0].ID != active.ID {
		t.Fatalf("active filter failed: %+v", goals)
	}

	goals, err = service.ListGoals(db, userID, false)
	if err != nil {
		t.Fatalf("list all goals: %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(goals))
	}
}

func TestAddGoalValidation(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	userID := signUpTestUser(t, db, "user@example.com")
	deadline := time.Now().AddDate(0, 1, 0)
	cases := []service.GoalInput{
		{Name: "", Category: "weight", TargetNumber: 70, Deadline: deadline},
		{Name: "G", Category: "swimming", TargetNumber: 70, Deadline: deadline},
		{Name: "G", Category: "weight", TargetNumber: -1, Deadline: deadline},
		{Name: "G", Category: "weight", TargetNumber: 70},
		{Name: "G", Category: "weight", TargetNumber: 70, Deadline: deadline, Priority: "whenever"},
	}
	for _, in := range cases {
		if _, err := service.AddGoal(db, userID, in); err == nil {
			t.Fatalf("expected validation error for %+v", in)
		}
	}
}

func TestDeleteGoal(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	userID := signUpTestUser(t, db, "user@example.com")
	goal, err := service.AddGoal(db, userID, service.GoalInput{
		Name: "Steps", Category: "steps", TargetNumber: 10000, Deadline: time.Now().AddDate(0, 1, 0),
	})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if err := service.DeleteGoal(db, userID, goal.ID); err != nil {
		t.Fatalf("delete goal: %v", err)
	}
	if _, err := service.GetGoal(db, userID, goal.ID); err == nil {
		t.Fatal("expected deleted goal to be gone")
	}
}
