package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tharindu/fitlog/internal/model"
)

type FoodInput struct {
	Name               string
	CaloriesPerServing int
	ServingSize        string
	ProteinG           float64
	CarbsG             float64
	FatG               float64
	FiberG             float64
	SugarG             float64
	SodiumMg           float64
}

// AddFood registers a user-supplied catalog entry alongside the seeded
// ones. Catalog rows are reference data: immutable once created.
func AddFood(db *sql.DB, in FoodInput) (model.FoodItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.FoodItem{}, fmt.Errorf("food name is required")
	}
	if err := validateNonNegativeInt("calories per serving", in.CaloriesPerServing); err != nil {
		return model.FoodItem{}, err
	}
	for _, check := range []struct {
		name  string
		value float64
	}{
		{"protein", in.ProteinG}, {"carbs", in.CarbsG}, {"fat", in.FatG},
		{"fiber", in.FiberG}, {"sugar", in.SugarG}, {"sodium", in.SodiumMg},
	} {
		if err := validateNonNegativeFloat(check.name, check.value); err != nil {
			return model.FoodItem{}, err
		}
	}

	item := model.FoodItem{
		ID:                 uuid.NewString(),
		Name:               name,
		CaloriesPerServing: in.CaloriesPerServing,
		ServingSize:        strings.TrimSpace(in.ServingSize),
		ProteinG:           in.ProteinG,
		CarbsG:             in.CarbsG,
		FatG:               in.FatG,
		FiberG:             in.FiberG,
		SugarG:             in.SugarG,
		SodiumMg:           in.SodiumMg,
		CreatedAt:          time.Now(),
	}
	if _, err := db.Exec(`
INSERT INTO food_items(id, name, calories_per_serving, serving_size, protein_g, carbs_g, fat_g, fiber_g, sugar_g, sodium_mg, seeded, created_at)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?)
`, item.ID, item.Name, item.CaloriesPerServing, item.ServingSize, item.ProteinG, item.CarbsG,
		item.FatG, item.FiberG, item.SugarG, item.SodiumMg, formatTime(item.CreatedAt)); err != nil {
		return model.FoodItem{}, fmt.Errorf("add food %q: %w", name, err)
	}
	return item, nil
}

func ListFoods(db *sql.DB) ([]model.FoodItem, error) {
	rows, err := db.Query(`
SELECT id, name, calories_per_serving, serving_size, protein_g, carbs_g, fat_g, fiber_g, sugar_g, sodium_mg, seeded
FROM food_items
ORDER BY name ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	defer rows.Close()

	items := make([]model.FoodItem, 0)
	for rows.Next() {
		var item model.FoodItem
		var seeded int
		if err := rows.Scan(&item.ID, &item.Name, &item.CaloriesPerServing, &item.ServingSize,
			&item.ProteinG, &item.CarbsG, &item.FatG, &item.FiberG, &item.SugarG, &item.SodiumMg, &seeded); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		item.Seeded = seeded == 1
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate foods: %w", err)
	}
	return items, nil
}

// FoodByRef resolves a food by id first, then by exact name.
func FoodByRef(db *sql.DB, ref string) (model.FoodItem, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return model.FoodItem{}, fmt.Errorf("food reference is required")
	}
	var item model.FoodItem
	var seeded int
	err := db.QueryRow(`
SELECT id, name, calories_per_serving, serving_size, protein_g, carbs_g, fat_g, fiber_g, sugar_g, sodium_mg, seeded
FROM food_items
WHERE id = ? OR name = ? COLLATE NOCASE
`, ref, ref).Scan(&item.ID, &item.Name, &item.CaloriesPerServing, &item.ServingSize,
		&item.ProteinG, &item.CarbsG, &item.FatG, &item.FiberG, &item.SugarG, &item.SodiumMg, &seeded)
	if err == sql.ErrNoRows {
		return model.FoodItem{}, fmt.Errorf("food %q not found", ref)
	}
	if err != nil {
		return model.FoodItem{}, fmt.Errorf("lookup food %q: %w", ref, err)
	}
	item.Seeded = seeded == 1
	return item, nil
}
