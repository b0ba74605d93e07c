package model

import (
	"fmt"
	"strings"
)

// CategoryInfo carries the presentation metadata attached to a goal
// category in the source design. Kept as data so callers can render
// labels and units without the engine depending on display concerns.
type CategoryInfo struct {
	Label string
	Unit  string
	Color string
}

var goalCategoryInfo = map[GoalCategory]CategoryInfo{
	GoalWeight:    {Label: "Weight", Unit: "kg", Color: "#4ECDC4"},
	GoalCardio:    {Label: "Cardio Endurance", Unit: "km", Color: "#FF6B6B"},
	GoalStrength:  {Label: "Strength Training", Unit: "kg", Color: "#45B7D1"},
	GoalNutrition: {Label: "Nutrition", Unit: "kcal", Color: "#96CEB4"},
	GoalHydration: {Label: "Hydration", Unit: "L", Color: "#4A90D9"},
	GoalActivity:  {Label: "Activity", Unit: "workouts", Color: "#F7B731"},
	GoalSleep:     {Label: "Sleep", Unit: "hours", Color: "#A55EEA"},
	GoalSteps:     {Label: "Steps", Unit: "steps", Color: "#FD9644"},
}

func (c GoalCategory) Info() CategoryInfo {
	return goalCategoryInfo[c]
}

func GoalCategories() []GoalCategory {
	return []GoalCategory{
		GoalWeight, GoalCardio, GoalStrength, GoalNutrition,
		GoalHydration, GoalActivity, GoalSleep, GoalSteps,
	}
}

func ParseGoalCategory(value string) (GoalCategory, error) {
	c := GoalCategory(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := goalCategoryInfo[c]; !ok {
		return "", fmt.Errorf("invalid goal category %q", value)
	}
	return c, nil
}

func ParseWorkoutType(value string) (WorkoutType, error) {
	switch t := WorkoutType(strings.ToLower(strings.TrimSpace(value))); t {
	case WorkoutCardio, WorkoutStrength, WorkoutFlexibility, WorkoutHIIT:
		return t, nil
	default:
		return "", fmt.Errorf("invalid workout type %q (use cardio, strength, flexibility or hiit)", value)
	}
}

func ParseMealType(value string) (MealType, error) {
	switch t := MealType(strings.ToLower(strings.TrimSpace(value))); t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return t, nil
	default:
		return "", fmt.Errorf("invalid meal type %q (use breakfast, lunch, dinner or snack)", value)
	}
}

func ParsePriority(value string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(value))); p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return p, nil
	default:
		return "", fmt.Errorf("invalid priority %q (use low, medium, high or urgent)", value)
	}
}

func ParseReminderType(value string) (ReminderType, error) {
	switch t := ReminderType(strings.ToLower(strings.TrimSpace(value))); t {
	case ReminderWorkout, ReminderWater, ReminderMeal, ReminderMedication,
		ReminderSleep, ReminderWeighIn, ReminderCustom:
		return t, nil
	default:
		return "", fmt.Errorf("invalid reminder type %q", value)
	}
}
