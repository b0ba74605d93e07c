package service_test

import (
	"testing"
	"time"

	"github.com/tharindu/fitlog/internal/service"
)

func TestRunDoctorCleanDatabase(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	userID := signUpTestUser(t, db, "user@example.com")
	if _, _, err := service.AddMeal(db, userID, service.MealInput{
		Type:  "lunch",
		Items: []service.MealItemInput{{FoodRef: "White Rice", Quantity: 1}},
	}); err != nil {
		t.Fatalf("add meal: %v", err)
	}

	report, err := service.RunDoctor(db)
	if err != nil {
		t.Fatalf("run doctor: %v", err)
	}
	if report.OrphanMealItems != 0 || report.DuplicateMeals != 0 || report.OrphanSessions != 0 {
		t.Fatalf("expected clean report, got %+v", report)
	}
}

func TestRunDoctorFlagsDuplicateMeals(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	userID := signUpTestUser(t, db, "user@example.com")
	day := time.Date(2026, 4, 10, 12, 0, 0, 0, time.Local)

	// Bypass the merge path to plant two lunch rows on one day.
	for _, id := range []string{"m1", "m2"} {
		if _, err := db.Exec(`
INSERT INTO meals(id, user_id, type, time_label, date, created_at)
VALUES(?, ?, 'lunch', '', ?, ?)
`, id, userID, day.Format(time.RFC3339), day.Format(time.RFC3339)); err != nil {
			t.Fatalf("insert meal row: %v", err)
		}
	}

	report, err := service.RunDoctor(db)
	if err != nil {
		t.Fatalf("run doctor: %v", err)
	}
	if report.DuplicateMeals != 1 {
		t.Fatalf("expected 1 duplicate group, got %d", report.DuplicateMeals)
	}
}
