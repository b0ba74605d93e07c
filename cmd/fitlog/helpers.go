package fitlog

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tharindu/fitlog/internal/app"
	"github.com/tharindu/fitlog/internal/db"
)

func resolveDBPath() (string, error) {
	if strings.TrimSpace(dbPath) != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func parseDateOrToday(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}

func parseDate(name, date string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(date), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q (expected YYYY-MM-DD)", name, date)
	}
	return t, nil
}

// rangeOrLastWeek parses --from/--to, defaulting to the last 7 days
// ending today when both are empty.
func rangeOrLastWeek(from, to string) (time.Time, time.Time, error) {
	if strings.TrimSpace(from) == "" && strings.TrimSpace(to) == "" {
		end := time.Now()
		return end.AddDate(0, 0, -6), end, nil
	}
	start, err := parseDate("--from", from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end := time.Now()
	if strings.TrimSpace(to) != "" {
		end, err = parseDate("--to", to)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return start, end, nil
}
