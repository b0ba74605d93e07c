package service

import (
	"database/sql"
	"time"

	"github.com/tharindu/fitlog/internal/engine"
	"github.com/tharindu/fitlog/internal/model"
)

// Store adapts the SQLite-backed service functions to the engine's
// RecordStore collaborator interface.
type Store struct {
	DB *sql.DB
}

func (s Store) ListWorkouts(userID string, r engine.DateRange) ([]model.WorkoutRecord, error) {
	return ListWorkouts(s.DB, userID, r.Start, endExclusive(r.End))
}

func (s Store) ListMeals(userID string, r engine.DateRange) ([]model.Meal, error) {
	return ListMealsByRange(s.DB, userID, r.Start, endExclusive(r.End))
}

func (s Store) ListGoals(userID string, activeOnly bool) ([]model.Goal, error) {
	return ListGoals(s.DB, userID, activeOnly)
}

func (s Store) NutritionTargets(userID string) (model.NutritionTargets, error) {
	return NutritionTargetsFor(s.DB, userID)
}

// endExclusive widens an inclusive report end date to the start of the
// following day so the half-open SQL window covers it.
func endExclusive(end time.Time) time.Time {
	y, m, d := end.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, end.Location()).AddDate(0, 0, 1)
}

// Sessions adapts the session table to engine.SessionProvider.
type Sessions struct {
	DB *sql.DB
}

func (s Sessions) CurrentUserID() (string, bool, error) {
	return CurrentUserID(s.DB)
}

// NewReporter wires the engine's collaborators to the local database
// and the system clock.
func NewReporter(db *sql.DB) engine.Reporter {
	return engine.Reporter{
		Store:    Store{DB: db},
		Sessions: Sessions{DB: db},
		Clock:    engine.SystemClock{},
	}
}

// TodayProgress computes one day's nutrition progress against the
// user's target profile.
func TodayProgress(db *sql.DB, userID string, date time.Time) (engine.NutritionProgress, model.NutritionTargets, error) {
	targets, err := NutritionTargetsFor(db, userID)
	if err != nil {
		return engine.NutritionProgress{}, model.NutritionTargets{}, err
	}
	meals, err := ListMealsByDate(db, userID, date)
	if err != nil {
		return engine.NutritionProgress{}, model.NutritionTargets{}, err
	}
	return engine.ComputeNutritionProgress(targets, meals), targets, nil
}
