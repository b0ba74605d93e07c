package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tharindu/fitlog/internal/model"
)

type WorkoutInput struct {
	Name        string
	Type        string
	Date        time.Time
	DurationMin int
	Calories    int
	Notes       string
}

func AddWorkout(db *sql.DB, userID string, in WorkoutInput) (model.WorkoutRecord, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.WorkoutRecord{}, fmt.Errorf("workout name is required")
	}
	workoutType, err := model.ParseWorkoutType(in.Type)
	if err != nil {
		return model.WorkoutRecord{}, err
	}
	if err := validatePositiveInt("duration", in.DurationMin); err != nil {
		return model.WorkoutRecord{}, err
	}
	if err := validateNonNegativeInt("calories", in.Calories); err != nil {
		return model.WorkoutRecord{}, err
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	record := model.WorkoutRecord{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Type:        workoutType,
		Date:        date,
		DurationMin: in.DurationMin,
		Calories:    in.Calories,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   time.Now(),
	}
	if _, err := db.Exec(`
INSERT INTO workouts(id, user_id, name, type, date, duration_min, calories, notes, created_at)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
`, record.ID, record.UserID, record.Name, string(record.Type), formatTime(record.Date),
		record.DurationMin, record.Calories, record.Notes, formatTime(record.CreatedAt)); err != nil {
		return model.WorkoutRecord{}, fmt.Errorf("add workout: %w", err)
	}
	return record, nil
}

// ListWorkouts returns a user's workouts with date in the half-open
// window [from, to), newest first.
func ListWorkouts(db *sql.DB, userID string, from, to time.Time) ([]model.WorkoutRecord, error) {
	rows, err := db.Query(`
SELECT id, user_id, name, type, date, duration_min, calories, notes, created_at
FROM workouts
WHERE user_id = ? AND date >= ? AND date < ?
ORDER BY date DESC
`, userID, formatTime(from), formatTime(to))
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	records := make([]model.WorkoutRecord, 0)
	for rows.Next() {
		var r model.WorkoutRecord
		var typeRaw, dateRaw, createdRaw string
		if err := rows.Scan(&r.ID, &r.UserID, &r.Name, &typeRaw, &dateRaw, &r.DurationMin, &r.Calories, &r.Notes, &createdRaw); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		r.Type = model.WorkoutType(typeRaw)
		if r.Date, err = parseStoredTime("date", dateRaw); err != nil {
			return nil, err
		}
		if r.CreatedAt, err = parseStoredTime("created_at", createdRaw); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workouts: %w", err)
	}
	return records, nil
}

func DeleteWorkout(db *sql.DB, userID, id string) error {
	res, err := db.Exec(`DELETE FROM workouts WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete workout %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("workout %s not found", id)
	}
	return nil
}
