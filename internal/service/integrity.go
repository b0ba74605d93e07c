package service

import (
	"database/sql"
	"fmt"
)

type DoctorReport struct {
	OrphanMealItems int
	// DuplicateMeals counts (user, day, type) groups holding more than
	// one meal row; the merge invariant allows at most one.
	DuplicateMeals int
	OrphanSessions int
}

// RunDoctor checks the invariants the write paths are supposed to
// maintain. It never mutates data.
func RunDoctor(db *sql.DB) (DoctorReport, error) {
	var report DoctorReport

	err := db.QueryRow(`
SELECT COUNT(*)
FROM meal_items mi
LEFT JOIN food_items f ON f.id = mi.food_id
WHERE f.id IS NULL
`).Scan(&report.OrphanMealItems)
	if err != nil {
		return report, fmt.Errorf("count orphan meal items: %w", err)
	}

	err = db.QueryRow(`
SELECT COUNT(*)
FROM (
  SELECT 1
  FROM meals
  GROUP BY user_id, date(date), type
  HAVING COUNT(*) > 1
)
`).Scan(&report.DuplicateMeals)
	if err != nil {
		return report, fmt.Errorf("count duplicate meals: %w", err)
	}

	err = db.QueryRow(`
SELECT COUNT(*)
FROM sessions s
LEFT JOIN users u ON u.id = s.user_id
WHERE u.id IS NULL
`).Scan(&report.OrphanSessions)
	if err != nil {
		return report, fmt.Errorf("count orphan sessions: %w", err)
	}

	return report, nil
}
