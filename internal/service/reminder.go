package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tharindu/fitlog/internal/model"
)

type ReminderInput struct {
	Title       string
	Type        string
	TimeLabel   string
	RepeatDays  []string
	Description string
}

// AddReminder stores the reminder definition only; delivery belongs to
// an external alarm mechanism.
func AddReminder(db *sql.DB, userID string, in ReminderInput) (model.Reminder, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.Reminder{}, fmt.Errorf("reminder title is required")
	}
	reminderType, err := model.ParseReminderType(in.Type)
	if err != nil {
		return model.Reminder{}, err
	}

	reminder := model.Reminder{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Type:        reminderType,
		TimeLabel:   strings.TrimSpace(in.TimeLabel),
		RepeatDays:  in.RepeatDays,
		Enabled:     true,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   time.Now(),
	}
	if _, err := db.Exec(`
INSERT INTO reminders(id, user_id, title, type, time_label, repeat_days, enabled, description, created_at)
VALUES(?, ?, ?, ?, ?, ?, 1, ?, ?)
`, reminder.ID, reminder.UserID, reminder.Title, string(reminder.Type), reminder.TimeLabel,
		joinRepeatDays(reminder.RepeatDays), reminder.Description, formatTime(reminder.CreatedAt)); err != nil {
		return model.Reminder{}, fmt.Errorf("add reminder: %w", err)
	}
	return reminder, nil
}

func ListReminders(db *sql.DB, userID string) ([]model.Reminder, error) {
	rows, err := db.Query(`
SELECT id, user_id, title, type, time_label, repeat_days, enabled, description, created_at
FROM reminders
WHERE user_id = ?
ORDER BY created_at ASC
`, userID)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer rows.Close()

	reminders := make([]model.Reminder, 0)
	for rows.Next() {
		var r model.Reminder
		var typeRaw, daysRaw, createdRaw string
		var enabled int
		if err := rows.Scan(&r.ID, &r.UserID, &r.Title, &typeRaw, &r.TimeLabel, &daysRaw,
			&enabled, &r.Description, &createdRaw); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		r.Type = model.ReminderType(typeRaw)
		r.RepeatDays = splitRepeatDays(daysRaw)
		r.Enabled = enabled == 1
		if r.CreatedAt, err = parseStoredTime("created_at", createdRaw); err != nil {
			return nil, err
		}
		reminders = append(reminders, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reminders: %w", err)
	}
	return reminders, nil
}

func SetReminderEnabled(db *sql.DB, userID, id string, enabled bool) error {
	res, err := db.Exec(`UPDATE reminders SET enabled = ? WHERE id = ? AND user_id = ?`,
		boolToInt(enabled), id, userID)
	if err != nil {
		return fmt.Errorf("update reminder %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("reminder %s not found", id)
	}
	return nil
}

func DeleteReminder(db *sql.DB, userID, id string) error {
	res, err := db.Exec(`DELETE FROM reminders WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete reminder %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("reminder %s not found", id)
	}
	return nil
}
