package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tharindu/fitlog/internal/engine"
	"github.com/tharindu/fitlog/internal/model"
)

type GoalInput struct {
	Name          string
	Category      string
	CurrentNumber float64
	TargetNumber  float64
	Deadline      time.Time
	Priority      string
	Description   string
}

// AddGoal creates an active goal, capturing the starting baseline the
// weight progress formula measures against.
func AddGoal(db *sql.DB, userID string, in GoalInput) (model.Goal, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Goal{}, fmt.Errorf("goal name is required")
	}
	category, err := model.ParseGoalCategory(in.Category)
	if err != nil {
		return model.Goal{}, err
	}
	priority := model.PriorityMedium
	if strings.TrimSpace(in.Priority) != "" {
		if priority, err = model.ParsePriority(in.Priority); err != nil {
			return model.Goal{}, err
		}
	}
	if err := validateNonNegativeFloat("current value", in.CurrentNumber); err != nil {
		return model.Goal{}, err
	}
	if err := validateNonNegativeFloat("target value", in.TargetNumber); err != nil {
		return model.Goal{}, err
	}
	if in.Deadline.IsZero() {
		return model.Goal{}, fmt.Errorf("deadline is required")
	}

	goal := model.Goal{
		ID:            uuid.NewString(),
		UserID:        userID,
		Name:          name,
		Category:      category,
		CurrentValue:  engine.FormatValue(in.CurrentNumber),
		TargetValue:   engine.FormatValue(in.TargetNumber),
		CurrentNumber: in.CurrentNumber,
		TargetNumber:  in.TargetNumber,
		StartingValue: engine.StartingBaseline(in.CurrentNumber, in.TargetNumber),
		Deadline:      in.Deadline,
		CreatedAt:     time.Now(),
		Priority:      priority,
		Description:   strings.TrimSpace(in.Description),
	}
	if err := insertGoal(db, goal); err != nil {
		return model.Goal{}, err
	}
	return goal, nil
}

func insertGoal(db *sql.DB, g model.Goal) error {
	var completedAt any
	if g.CompletedAt != nil {
		completedAt = formatTime(*g.CompletedAt)
	}
	if _, err := db.Exec(`
INSERT INTO goals(id, user_id, name, category, current_value, target_value, current_number,
  target_number, starting_value, deadline, created_at, completed, completed_at, priority, description)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, g.ID, g.UserID, g.Name, string(g.Category), g.CurrentValue, g.TargetValue, g.CurrentNumber,
		g.TargetNumber, g.StartingValue, formatTime(g.Deadline), formatTime(g.CreatedAt),
		boolToInt(g.Completed), completedAt, string(g.Priority), g.Description); err != nil {
		return fmt.Errorf("add goal: %w", err)
	}
	return nil
}

// ListGoals returns a user's goals, newest first. With activeOnly set,
// completed goals are filtered out.
func ListGoals(db *sql.DB, userID string, activeOnly bool) ([]model.Goal, error) {
	query := `
SELECT id, user_id, name, category, current_value, target_value, current_number,
  target_number, starting_value, deadline, created_at, completed, completed_at, priority, description
FROM goals
WHERE user_id = ?`
	if activeOnly {
		query += ` AND completed = 0`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	goals := make([]model.Goal, 0)
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}
	return goals, nil
}

func GetGoal(db *sql.DB, userID, id string) (model.Goal, error) {
	rows, err := db.Query(`
SELECT id, user_id, name, category, current_value, target_value, current_number,
  target_number, starting_value, deadline, created_at, completed, completed_at, priority, description
FROM goals
WHERE id = ? AND user_id = ?
`, id, userID)
	if err != nil {
		return model.Goal{}, fmt.Errorf("get goal %s: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return model.Goal{}, fmt.Errorf("get goal %s: %w", id, err)
		}
		return model.Goal{}, fmt.Errorf("goal %s not found", id)
	}
	return scanGoal(rows)
}

// UpdateGoalProgress records a new current value. When the update
// reaches the target the goal completes in the same step; that policy
// lives here, not in the pure calculator.
func UpdateGoalProgress(db *sql.DB, userID, id string, value float64, now time.Time) (model.Goal, error) {
	goal, err := GetGoal(db, userID, id)
	if err != nil {
		return model.Goal{}, err
	}
	updated, err := engine.UpdateGoalProgress(goal, value)
	if err != nil {
		return model.Goal{}, err
	}
	if engine.IsAchieved(updated) {
		updated = engine.CompleteGoal(updated, now)
	}
	if err := persistGoalState(db, updated); err != nil {
		return model.Goal{}, err
	}
	return updated, nil
}

// CompleteGoal marks a goal done; repeating the call is a no-op.
func CompleteGoal(db *sql.DB, userID, id string, now time.Time) (model.Goal, error) {
	goal, err := GetGoal(db, userID, id)
	if err != nil {
		return model.Goal{}, err
	}
	completed := engine.CompleteGoal(goal, now)
	if err := persistGoalState(db, completed); err != nil {
		return model.Goal{}, err
	}
	return completed, nil
}

func persistGoalState(db *sql.DB, g model.Goal) error {
	var completedAt any
	if g.CompletedAt != nil {
		completedAt = formatTime(*g.CompletedAt)
	}
	if _, err := db.Exec(`
UPDATE goals
SET current_value = ?, current_number = ?, completed = ?, completed_at = ?
WHERE id = ? AND user_id = ?
`, g.CurrentValue, g.CurrentNumber, boolToInt(g.Completed), completedAt, g.ID, g.UserID); err != nil {
		return fmt.Errorf("update goal %s: %w", g.ID, err)
	}
	return nil
}

func DeleteGoal(db *sql.DB, userID, id string) error {
	res, err := db.Exec(`DELETE FROM goals WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete goal %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("goal %s not found", id)
	}
	return nil
}

func scanGoal(rows *sql.Rows) (model.Goal, error) {
	var g model.Goal
	var categoryRaw, deadlineRaw, createdRaw, priorityRaw string
	var completed int
	var completedAtRaw sql.NullString
	if err := rows.Scan(&g.ID, &g.UserID, &g.Name, &categoryRaw, &g.CurrentValue, &g.TargetValue,
		&g.CurrentNumber, &g.TargetNumber, &g.StartingValue, &deadlineRaw, &createdRaw,
		&completed, &completedAtRaw, &priorityRaw, &g.Description); err != nil {
		return model.Goal{}, fmt.Errorf("scan goal: %w", err)
	}
	g.Category = model.GoalCategory(categoryRaw)
	g.Priority = model.Priority(priorityRaw)
	g.Completed = completed == 1

	var err error
	if g.Deadline, err = parseStoredTime("deadline", deadlineRaw); err != nil {
		return model.Goal{}, err
	}
	if g.CreatedAt, err = parseStoredTime("created_at", createdRaw); err != nil {
		return model.Goal{}, err
	}
	if completedAtRaw.Valid {
		t, err := parseStoredTime("completed_at", completedAtRaw.String)
		if err != nil {
			return model.Goal{}, err
		}
		g.CompletedAt = &t
	}
	return g, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
