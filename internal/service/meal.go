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

type MealItemInput struct {
	FoodRef       string
	Quantity      float64
	CustomPortion string
}

type MealInput struct {
	Type      string
	TimeLabel string
	Date      time.Time
	Items     []MealItemInput
}

// AddMeal logs food items for a meal. A day holds at most one meal per
// type: logging a second breakfast appends its items to the existing
// breakfast instead of creating a duplicate. The merge decision is the
// pure engine.MergeMeal; this function only persists its outcome.
// The returned bool reports whether the items merged into an existing
// meal.
func AddMeal(db *sql.DB, userID string, in MealInput) (model.Meal, bool, error) {
	mealType, err := model.ParseMealType(in.Type)
	if err != nil {
		return model.Meal{}, false, err
	}
	if len(in.Items) == 0 {
		return model.Meal{}, false, fmt.Errorf("a meal needs at least one food item")
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	items := make([]model.SelectedFoodItem, 0, len(in.Items))
	for _, itemIn := range in.Items {
		if itemIn.Quantity <= 0 {
			return model.Meal{}, false, fmt.Errorf("quantity must be > 0")
		}
		food, err := FoodByRef(db, itemIn.FoodRef)
		if err != nil {
			return model.Meal{}, false, err
		}
		items = append(items, model.SelectedFoodItem{
			Food:          food,
			Quantity:      itemIn.Quantity,
			CustomPortion: strings.TrimSpace(itemIn.CustomPortion),
		})
	}

	incoming := model.Meal{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      mealType,
		TimeLabel: strings.TrimSpace(in.TimeLabel),
		Date:      date,
		Items:     items,
	}

	existing, err := ListMealsByDate(db, userID, date)
	if err != nil {
		return model.Meal{}, false, err
	}
	merged := engine.MergeMeal(existing, incoming)

	if len(merged) == len(existing) {
		// Items folded into an existing meal of the same type.
		for _, m := range merged {
			if m.Type != mealType {
				continue
			}
			start := len(m.Items) - len(items)
			if err := insertMealItems(db, m.ID, m.Items[start:], start); err != nil {
				return model.Meal{}, false, err
			}
			return m, true, nil
		}
		return model.Meal{}, false, fmt.Errorf("merge target for %s meal not found", mealType)
	}

	if _, err := db.Exec(`
INSERT INTO meals(id, user_id, type, time_label, date, created_at)
VALUES(?, ?, ?, ?, ?, ?)
`, incoming.ID, incoming.UserID, string(incoming.Type), incoming.TimeLabel,
		formatTime(incoming.Date), formatTime(time.Now())); err != nil {
		return model.Meal{}, false, fmt.Errorf("add meal: %w", err)
	}
	if err := insertMealItems(db, incoming.ID, incoming.Items, 0); err != nil {
		return model.Meal{}, false, err
	}
	return incoming, false, nil
}

func insertMealItems(db *sql.DB, mealID string, items []model.SelectedFoodItem, startPosition int) error {
	for i, item := range items {
		if _, err := db.Exec(`
INSERT INTO meal_items(id, meal_id, food_id, position, quantity, custom_portion)
VALUES(?, ?, ?, ?, ?, ?)
`, uuid.NewString(), mealID, item.Food.ID, startPosition+i, item.Quantity, item.CustomPortion); err != nil {
			return fmt.Errorf("add meal item %q: %w", item.Food.Name, err)
		}
	}
	return nil
}

// ListMealsByDate returns one calendar day's meals in meal-type order
// with food items materialized.
func ListMealsByDate(db *sql.DB, userID string, date time.Time) ([]model.Meal, error) {
	start, end := dayBounds(date)
	return ListMealsByRange(db, userID, start, end)
}

// ListMealsByRange returns meals with date in the half-open window
// [from, to).
func ListMealsByRange(db *sql.DB, userID string, from, to time.Time) ([]model.Meal, error) {
	rows, err := db.Query(`
SELECT id, user_id, type, time_label, date
FROM meals
WHERE user_id = ? AND date >= ? AND date < ?
ORDER BY date ASC
`, userID, formatTime(from), formatTime(to))
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	meals := make([]model.Meal, 0)
	for rows.Next() {
		var m model.Meal
		var typeRaw, dateRaw string
		if err := rows.Scan(&m.ID, &m.UserID, &typeRaw, &m.TimeLabel, &dateRaw); err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		m.Type = model.MealType(typeRaw)
		if m.Date, err = parseStoredTime("date", dateRaw); err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meals: %w", err)
	}

	for i := range meals {
		items, err := mealItems(db, meals[i].ID)
		if err != nil {
			return nil, err
		}
		meals[i].Items = items
	}
	return meals, nil
}

func mealItems(db *sql.DB, mealID string) ([]model.SelectedFoodItem, error) {
	rows, err := db.Query(`
SELECT f.id, f.name, f.calories_per_serving, f.serving_size, f.protein_g, f.carbs_g, f.fat_g,
       f.fiber_g, f.sugar_g, f.sodium_mg, mi.quantity, mi.custom_portion
FROM meal_items mi
JOIN food_items f ON f.id = mi.food_id
WHERE mi.meal_id = ?
ORDER BY mi.position ASC
`, mealID)
	if err != nil {
		return nil, fmt.Errorf("list meal items: %w", err)
	}
	defer rows.Close()

	items := make([]model.SelectedFoodItem, 0)
	for rows.Next() {
		var item model.SelectedFoodItem
		if err := rows.Scan(&item.Food.ID, &item.Food.Name, &item.Food.CaloriesPerServing,
			&item.Food.ServingSize, &item.Food.ProteinG, &item.Food.CarbsG, &item.Food.FatG,
			&item.Food.FiberG, &item.Food.SugarG, &item.Food.SodiumMg,
			&item.Quantity, &item.CustomPortion); err != nil {
			return nil, fmt.Errorf("scan meal item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meal items: %w", err)
	}
	return items, nil
}

func DeleteMeal(db *sql.DB, userID, id string) error {
	res, err := db.Exec(`DELETE FROM meals WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete meal %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("meal %s not found", id)
	}
	return nil
}
