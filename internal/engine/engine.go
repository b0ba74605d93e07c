// Package engine computes goal progress, nutrition progress and period
// rollups from records already loaded in memory. Every function is a
// deterministic function of its inputs: the package performs no I/O,
// holds no mutable state and never reads the wall clock, so callers may
// invoke it concurrently without locking. Persistence and the current
// time come in through the collaborator interfaces below.
package engine

import (
	"time"

	"github.com/tharindu/fitlog/internal/model"
)

// DateRange is a calendar window. Workout aggregation treats it as
// half-open [Start, End); nutrition day counts include both endpoints.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// RecordStore lists a user's records for a window. Implementations own
// all I/O and error semantics; the engine surfaces their errors
// unchanged and never retries.
type RecordStore interface {
	ListWorkouts(userID string, r DateRange) ([]model.WorkoutRecord, error)
	ListMeals(userID string, r DateRange) ([]model.Meal, error)
	ListGoals(userID string, activeOnly bool) ([]model.Goal, error)
	NutritionTargets(userID string) (model.NutritionTargets, error)
}

// SessionProvider resolves the active user. ok is false when nobody is
// signed in.
type SessionProvider interface {
	CurrentUserID() (userID string, ok bool, err error)
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant. Used in tests.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time { return c.Time }

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// inclusiveDayCount counts calendar days in [from, to], both ends
// included. Zero when from is after to.
func inclusiveDayCount(from, to time.Time) int {
	from = beginningOfDay(from)
	to = beginningOfDay(to)
	if from.After(to) {
		return 0
	}
	days := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}
