package service_test

import (
	"testing"
	"time"

	"github.com/tharindu/fitlog/internal/model"
	"github.com/tharindu/fitlog/internal/service"
)

func TestAddMealAndListByDate(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	userID := signUpTestUser(t, db, "user@example.com")
	morning := time.Date(2026, 4, 10, 8, 30, 0, 0, time.Local)

	meal, merged, err := service.AddMeal(db, userID, service.MealInput{
		Type:      "breakfast",
		TimeLabel: "08:30 AM",
		Date:      morning,
		Items: []service.MealItemInput{
			{FoodRef: "Oatmeal with Berries", Quantity: 1},
			{FoodRef: "Banana", Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("add meal: %v", err)
	}
	if merged {
		t.Fatal("first meal of the day must not report a merge")
	}
	if got := meal.TotalCalories(); got != 280+2*105 {
		t.Fatalf("expected %d kcal, got %d", 280+2*105, got)
	}

	meals, err := service.ListMealsByDate(db, userID, morning)
	if err != nil {
		t.Fatalf("list meals: %v", err)
	}
	if len(meals) != 1 || len(meals[0].Items) != 2 {
		t.Fatalf("unexpected meals: %+v", meals)
	}
	if meals[0].Items[0].Food.Name != "Oatmeal with Berries" {
		t.Fatalf("item order not preserved: %+v", meals[0].Items)
	}
}

func TestAddMealMergesSameTypeSameDay(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	userID := signUpTestUser(t, db, "user@example.com")
	morning := time.Date(2026, 4, 10, 8, 0, 0, 0, time.Local)

	if _, _, err := service.AddMeal(db, userID, service.MealInput{
		Type: "breakfast", Date: morning,
		Items: []service.MealItemInput{{FoodRef: "Oatmeal with Berries", Quantity: 1}},
	}); err != nil {
		t.Fatalf("add first breakfast: %v", err)
	}

	meal, merged, err := service.AddMeal(db, userID, service.MealInput{
		Type: "breakfast", Date: morning.Add(2 * time.Hour),
		Items: []service.MealItemInput{{FoodRef: "Scrambled Eggs", Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("add second breakfast: %v", err)
	}
	if !merged {
		t.Fatal("second breakfast on the same day must merge")
	}
	if len(meal.Items) != 2 {
		t.Fatalf("expected 2 items after merge, got %d", len(meal.Items))
	}

	meals, err := service.ListMealsByDate(db, userID, morning)
	if err != nil {
		t.Fatalf("list meals: %v", err)
	}
	if len(meals) != 1 {
		t.Fatalf("day must hold one breakfast, got %d meals", len(meals))
	}
	items := meals[0].Items
	if len(items) != 2 || items[0].Food.Name != "Oatmeal with Berries" || items[1].Food.Name != "Scrambled Eggs" {
		t.Fatalf("persisted merge lost item order: %+v", items)
	}
}

func TestAddMealDifferentTypesStaySeparate(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	userID := signUpTestUser(t, db, "user@example.com")
	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.Local)

	for _, in := range []service.MealInput{
		{Type: "dinner", Date: day.Add(19 * time.Hour), Items: []service.MealItemInput{{FoodRef: "Grilled Salmon", Quantity: 1}}},
		{Type: "breakfast", Date: day.Add(8 * time.Hour), Items: []service.MealItemInput{{FoodRef: "Oatmeal with Berries", Quantity: 1}}},
	} {
		if _, _, err := service.AddMeal(db, userID, in); err != nil {
			t.Fatalf("add %s: %v", in.Type, err)
		}
	}

	meals, err := service.ListMealsByDate(db, userID, day)
	if err != nil {
		t.Fatalf("list meals: %v", err)
	}
	if len(meals) != 2 {
		t.Fatalf("expected 2 meals, got %d", len(meals))
	}
}

func TestAddMealValidation(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	userID := signUpTestUser(t, db, "user@example.com")
	cases := []service.MealInput{
		{Type: "brunch", Items: []service.MealItemInput{{FoodRef: "Oatmeal with Berries", Quantity: 1}}},
		{Type: "lunch"},
		{Type: "lunch", Items: []service.MealItemInput{{FoodRef: "Oatmeal with Berries", Quantity: 0}}},
		{Type: "lunch", Items: []service.MealItemInput{{FoodRef: "not-a-food", Quantity: 1}}},
	}
	for _, in := range cases {
		if _, _, err := service.AddMeal(db, userID, in); err == nil {
			t.Fatalf("expected validation error for %+v", in)
		}
	}
}

func TestDeleteMealRemovesItems(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	userID := signUpTestUser(t, db, "user@example.com")
	meal, _, err := service.AddMeal(db, userID, service.MealInput{
		Type: "snack",
		Items: []service.MealItemInput{
			{FoodRef: "Almonds", Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("add meal: %v", err)
	}
	if meal.Type != model.MealSnack {
		t.Fatalf("unexpected meal type %s", meal.Type)
	}

	if err := service.DeleteMeal(db, userID, meal.ID); err != nil {
		t.Fatalf("delete meal: %v", err)
	}

	var items int
	if err := db.QueryRow(`SELECT COUNT(*) FROM meal_items WHERE meal_id = ?`, meal.ID).Scan(&items); err != nil {
		t.Fatalf("count meal items: %v", err)
	}
	if items != 0 {
		t.Fatalf("expected meal items to cascade, %d left", items)
	}
}
