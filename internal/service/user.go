package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tharindu/fitlog/internal/model"
)

type SignUpInput struct {
	Email    string
	Name     string
	Password string
}

// SignUp creates a user with a bcrypt-hashed password and signs them
// in, rejecting duplicate emails.
func SignUp(db *sql.DB, in SignUpInput) (model.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return model.User{}, fmt.Errorf("invalid email %q", in.Email)
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.User{}, fmt.Errorf("name is required")
	}
	if len(in.Password) < 6 {
		return model.User{}, fmt.Errorf("password must be at least 6 characters")
	}

	var exists int
	err := db.QueryRow(`SELECT 1 FROM users WHERE email = ?`, email).Scan(&exists)
	if err == nil {
		return model.User{}, fmt.Errorf("email %s is already registered", email)
	}
	if err != sql.ErrNoRows {
		return model.User{}, fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		LastActiveAt: time.Now(),
	}
	if _, err := db.Exec(`
INSERT INTO users(id, email, name, password_hash, created_at, last_active_at)
VALUES(?, ?, ?, ?, ?, ?)
`, user.ID, user.Email, user.Name, user.PasswordHash, formatTime(user.CreatedAt), formatTime(user.LastActiveAt)); err != nil {
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	if err := saveSession(db, user.ID); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// SignIn verifies the credential and returns the identity, updating
// last activity and the session on success.
func SignIn(db *sql.DB, email, password string) (model.User, error) {
	user, err := userByEmail(db, normalizeEmail(email))
	if err != nil {
		return model.User{}, err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return model.User{}, fmt.Errorf("invalid email or password")
	}

	now := time.Now()
	if _, err := db.Exec(`UPDATE users SET last_active_at = ? WHERE id = ?`, formatTime(now), user.ID); err != nil {
		return model.User{}, fmt.Errorf("update last activity: %w", err)
	}
	user.LastActiveAt = now
	if err := saveSession(db, user.ID); err != nil {
		return model.User{}, err
	}
	return *user, nil
}

// CurrentUser returns the signed-in user, or nil without error when
// there is no session.
func CurrentUser(db *sql.DB) (*model.User, error) {
	userID, ok, err := CurrentUserID(db)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return userByID(db, userID)
}

// DeleteUser removes a user; owned records cascade at the store level.
func DeleteUser(db *sql.DB, userID string) error {
	res, err := db.Exec(`DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user %s not found", userID)
	}
	return nil
}

func userByEmail(db *sql.DB, email string) (*model.User, error) {
	return scanUser(db.QueryRow(`
SELECT id, email, name, password_hash, created_at, last_active_at FROM users WHERE email = ?
`, email))
}

func userByID(db *sql.DB, id string) (*model.User, error) {
	return scanUser(db.QueryRow(`
SELECT id, email, name, password_hash, created_at, last_active_at FROM users WHERE id = ?
`, id))
}

func scanUser(row *sql.Row) (*model.User, error) {
	var u model.User
	var createdRaw, activeRaw string
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &createdRaw, &activeRaw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	if u.CreatedAt, err = parseStoredTime("created_at", createdRaw); err != nil {
		return nil, err
	}
	if u.LastActiveAt, err = parseStoredTime("last_active_at", activeRaw); err != nil {
		return nil, err
	}
	return &u, nil
}
