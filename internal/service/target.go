package service

import (
	"database/sql"
	"fmt"

	"github.com/tharindu/fitlog/internal/model"
)

// Default daily targets applied before the user configures a profile.
const (
	DefaultTargetCalories = 2000
	DefaultTargetProteinG = 150.0
	DefaultTargetCarbsG   = 250.0
	DefaultTargetFatG     = 65.0
)

func SetNutritionTargets(db *sql.DB, targets model.NutritionTargets) error {
	if err := validateNonNegativeInt("target calories", targets.Calories); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("target protein", targets.ProteinG); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("target carbs", targets.CarbsG); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("target fat", targets.FatG); err != nil {
		return err
	}
	if _, err := db.Exec(`
INSERT INTO nutrition_targets(user_id, calories, protein_g, carbs_g, fat_g)
VALUES(?, ?, ?, ?, ?)
ON CONFLICT(user_id) DO UPDATE SET
  calories = excluded.calories,
  protein_g = excluded.protein_g,
  carbs_g = excluded.carbs_g,
  fat_g = excluded.fat_g
`, targets.UserID, targets.Calories, targets.ProteinG, targets.CarbsG, targets.FatG); err != nil {
		return fmt.Errorf("set nutrition targets: %w", err)
	}
	return nil
}

// NutritionTargetsFor returns the user's target profile, falling back
// to the stock defaults when none is configured.
func NutritionTargetsFor(db *sql.DB, userID string) (model.NutritionTargets, error) {
	targets := model.NutritionTargets{UserID: userID}
	err := db.QueryRow(`
SELECT calories, protein_g, carbs_g, fat_g FROM nutrition_targets WHERE user_id = ?
`, userID).Scan(&targets.Calories, &targets.ProteinG, &targets.CarbsG, &targets.FatG)
	if err == sql.ErrNoRows {
		targets.Calories = DefaultTargetCalories
		targets.ProteinG = DefaultTargetProteinG
		targets.CarbsG = DefaultTargetCarbsG
		targets.FatG = DefaultTargetFatG
		return targets, nil
	}
	if err != nil {
		return model.NutritionTargets{}, fmt.Errorf("load nutrition targets: %w", err)
	}
	return targets, nil
}
