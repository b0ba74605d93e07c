package service

import (
	"database/sql"
	"fmt"
	"time"
)

// The session is a single-slot table: signing in replaces whoever was
// signed in before, mirroring a single-device session.

func saveSession(db *sql.DB, userID string) error {
	_, err := db.Exec(`
INSERT INTO sessions(slot, user_id, signed_in_at) VALUES(1, ?, ?)
ON CONFLICT(slot) DO UPDATE SET user_id = excluded.user_id, signed_in_at = excluded.signed_in_at
`, userID, formatTime(time.Now()))
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func SignOut(db *sql.DB) error {
	if _, err := db.Exec(`DELETE FROM sessions WHERE slot = 1`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// CurrentUserID resolves the signed-in user; ok is false when nobody
// is signed in.
func CurrentUserID(db *sql.DB) (string, bool, error) {
	var userID string
	err := db.QueryRow(`SELECT user_id FROM sessions WHERE slot = 1`).Scan(&userID)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read session: %w", err)
	}
	return userID, true, nil
}

// RequireUserID is CurrentUserID for call sites that need a session.
func RequireUserID(db *sql.DB) (string, error) {
	userID, ok, err := CurrentUserID(db)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("not signed in (run 'fitlog user signin' first)")
	}
	return userID, nil
}
