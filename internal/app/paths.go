package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName = "fitlog"
	dbFileName = "fitlog.db"

	// EnvDBPath overrides the default database location.
	EnvDBPath = "FITLOG_DB"
)

func DefaultDBPath() (string, error) {
	if override := os.Getenv(EnvDBPath); override != "" {
		return override, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, dbFileName), nil
}

func EnsureDBDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return nil
}
