package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  last_active_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS sessions (
  slot INTEGER PRIMARY KEY CHECK(slot = 1),
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  signed_in_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS workouts (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  type TEXT NOT NULL,
  date DATETIME NOT NULL,
  duration_min INTEGER NOT NULL CHECK(duration_min > 0),
  calories INTEGER NOT NULL CHECK(calories >= 0),
  notes TEXT NOT NULL DEFAULT '',
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_workouts_user_date ON workouts(user_id, date);

CREATE TABLE IF NOT EXISTS food_items (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  calories_per_serving INTEGER NOT NULL CHECK(calories_per_serving >= 0),
  serving_size TEXT NOT NULL DEFAULT '',
  protein_g REAL NOT NULL DEFAULT 0 CHECK(protein_g >= 0),
  carbs_g REAL NOT NULL DEFAULT 0 CHECK(carbs_g >= 0),
  fat_g REAL NOT NULL DEFAULT 0 CHECK(fat_g >= 0),
  fiber_g REAL NOT NULL DEFAULT 0,
  sugar_g REAL NOT NULL DEFAULT 0,
  sodium_mg REAL NOT NULL DEFAULT 0,
  seeded INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS meals (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  type TEXT NOT NULL,
  time_label TEXT NOT NULL DEFAULT '',
  date DATETIME NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_meals_user_date ON meals(user_id, date);

CREATE TABLE IF NOT EXISTS meal_items (
  id TEXT PRIMARY KEY,
  meal_id TEXT NOT NULL REFERENCES meals(id) ON DELETE CASCADE,
  food_id TEXT NOT NULL REFERENCES food_items(id),
  position INTEGER NOT NULL,
  quantity REAL NOT NULL CHECK(quantity > 0),
  custom_portion TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_meal_items_meal ON meal_items(meal_id);

CREATE TABLE IF NOT EXISTS goals (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  current_value TEXT NOT NULL DEFAULT '',
  target_value TEXT NOT NULL DEFAULT '',
  current_number REAL NOT NULL DEFAULT 0,
  target_number REAL NOT NULL DEFAULT 0,
  starting_value REAL NOT NULL DEFAULT 0,
  deadline DATETIME NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  completed INTEGER NOT NULL DEFAULT 0,
  completed_at DATETIME,
  priority TEXT NOT NULL DEFAULT 'medium',
  description TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_goals_user ON goals(user_id);

CREATE TABLE IF NOT EXISTS nutrition_targets (
  user_id TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
  calories INTEGER NOT NULL CHECK(calories >= 0),
  protein_g REAL NOT NULL CHECK(protein_g >= 0),
  carbs_g REAL NOT NULL CHECK(carbs_g >= 0),
  fat_g REAL NOT NULL CHECK(fat_g >= 0)
);

CREATE TABLE IF NOT EXISTS reminders (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  title TEXT NOT NULL,
  type TEXT NOT NULL,
  time_label TEXT NOT NULL DEFAULT '',
  repeat_days TEXT NOT NULL DEFAULT '',
  enabled INTEGER NOT NULL DEFAULT 1,
  description TEXT NOT NULL DEFAULT '',
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
}

type seedFood struct {
	id          string
	name        string
	calories    int
	servingSize string
	proteinG    float64
	carbsG      float64
	fatG        float64
}

// The built-in catalog the app ships with; user-added foods live in
// the same table with seeded = 0.
var seedFoods = []seedFood{
	{"oatmeal", "Oatmeal with Berries", 280, "1 bowl", 8.0, 54.0, 6.0},
	{"greek_yogurt", "Greek Yogurt", 120, "1 cup (200g)", 20.0, 9.0, 0.5},
	{"black_coffee", "Black Coffee", 20, "1 cup", 0.3, 0.0, 0.0},
	{"banana", "Banana", 105, "1 medium (118g)", 1.3, 27.0, 0.4},
	{"eggs", "Scrambled Eggs", 91, "1 large egg", 6.3, 0.6, 6.3},
	{"chicken_salad", "Grilled Chicken Salad", 450, "1 serving", 35.0, 15.0, 25.0},
	{"whole_grain_bread", "Whole Grain Bread", 120, "2 slices", 4.0, 24.0, 2.0},
	{"apple", "Apple", 80, "1 medium", 0.4, 21.0, 0.3},
	{"quinoa", "Quinoa", 222, "1 cup cooked", 8.1, 39.4, 3.6},
	{"protein_bar", "Protein Bar", 200, "1 bar", 20.0, 15.0, 8.0},
	{"almonds", "Almonds", 164, "1 oz (28g)", 6.0, 6.0, 14.0},
	{"protein_shake", "Protein Shake", 150, "1 scoop", 25.0, 5.0, 2.0},
	{"rice", "White Rice", 205, "1 cup cooked", 4.3, 45.0, 0.4},
	{"broccoli", "Broccoli", 25, "1 cup", 3.0, 5.0, 0.3},
	{"salmon", "Grilled Salmon", 206, "100g", 22.0, 0.0, 12.0},
	{"avocado", "Avocado", 234, "1 whole", 2.9, 12.0, 21.0},
	{"sweet_potato", "Sweet Potato", 112, "1 medium", 2.0, 26.0, 0.1},
}

func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}

	for _, f := range seedFoods {
		if _, err := db.Exec(`
INSERT OR IGNORE INTO food_items(id, name, calories_per_serving, serving_size, protein_g, carbs_g, fat_g, seeded)
VALUES(?, ?, ?, ?, ?, ?, ?, 1)
`, f.id, f.name, f.calories, f.servingSize, f.proteinG, f.carbsG, f.fatG); err != nil {
			return fmt.Errorf("seed food %s: %w", f.name, err)
		}
	}

	return nil
}
