package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/tharindu/fitlog/internal/db"
	"github.com/tharindu/fitlog/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fitlog.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

// signUpTestUser creates and signs in a fresh user, returning its id.
func signUpTestUser(t *testing.T, sqldb *sql.DB, email string) string {
	t.Helper()
	user, err := service.SignUp(sqldb, service.SignUpInput{
		Email:    email,
		Name:     "Test User",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("sign up %s: %v", email, err)
	}
	return user.ID
}
