package model

import "time"

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	LastActiveAt time.Time
}

type WorkoutType string

const (
	WorkoutCardio      WorkoutType = "cardio"
	WorkoutStrength    WorkoutType = "strength"
	WorkoutFlexibility WorkoutType = "flexibility"
	WorkoutHIIT        WorkoutType = "hiit"
)

type WorkoutRecord struct {
	ID          string
	UserID      string
	Name        string
	Type        WorkoutType
	Date        time.Time
	DurationMin int
	Calories    int
	Notes       string
	CreatedAt   time.Time
}

type FoodItem struct {
	ID                 string
	Name               string
	CaloriesPerServing int
	ServingSize        string
	ProteinG           float64
	CarbsG             float64
	FatG               float64
	FiberG             float64
	SugarG             float64
	SodiumMg           float64
	Seeded             bool
	CreatedAt          time.Time
}

// SelectedFoodItem is a food catalog entry scaled by a quantity multiplier.
type SelectedFoodItem struct {
	Food          FoodItem
	Quantity      float64
	CustomPortion string
}

// TotalCalories truncates toward zero, matching per-serving integer math.
func (s SelectedFoodItem) TotalCalories() int {
	return int(float64(s.Food.CaloriesPerServing) * s.Quantity)
}

func (s SelectedFoodItem) TotalProteinG() float64 { return s.Food.ProteinG * s.Quantity }
func (s SelectedFoodItem) TotalCarbsG() float64   { return s.Food.CarbsG * s.Quantity }
func (s SelectedFoodItem) TotalFatG() float64     { return s.Food.FatG * s.Quantity }

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Ordinal fixes the display order of meal types within a day.
func (t MealType) Ordinal() int {
	switch t {
	case MealBreakfast:
		return 0
	case MealLunch:
		return 1
	case MealDinner:
		return 2
	case MealSnack:
		return 3
	}
	return 4
}

type Meal struct {
	ID        string
	UserID    string
	Type      MealType
	TimeLabel string
	Date      time.Time
	Items     []SelectedFoodItem
}

func (m Meal) TotalCalories() int {
	total := 0
	for _, item := range m.Items {
		total += item.TotalCalories()
	}
	return total
}

func (m Meal) TotalProteinG() float64 {
	total := 0.0
	for _, item := range m.Items {
		total += item.TotalProteinG()
	}
	return total
}

func (m Meal) TotalCarbsG() float64 {
	total := 0.0
	for _, item := range m.Items {
		total += item.TotalCarbsG()
	}
	return total
}

func (m Meal) TotalFatG() float64 {
	total := 0.0
	for _, item := range m.Items {
		total += item.TotalFatG()
	}
	return total
}

type GoalCategory string

const (
	GoalWeight    GoalCategory = "weight"
	GoalCardio    GoalCategory = "cardio"
	GoalStrength  GoalCategory = "strength"
	GoalNutrition GoalCategory = "nutrition"
	GoalHydration GoalCategory = "hydration"
	GoalActivity  GoalCategory = "activity"
	GoalSleep     GoalCategory = "sleep"
	GoalSteps     GoalCategory = "steps"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type Goal struct {
	ID            string
	UserID        string
	Name          string
	Category      GoalCategory
	CurrentValue  string
	TargetValue   string
	CurrentNumber float64
	TargetNumber  float64
	// StartingValue is the numeric baseline captured when the goal is
	// created: whichever of current/target is larger. Weight-category
	// progress measures travel from this baseline toward the target.
	StartingValue float64
	Deadline      time.Time
	CreatedAt     time.Time
	Completed     bool
	CompletedAt   *time.Time
	Priority      Priority
	Description   string
}

// NutritionTargets is a per-user daily target profile.
type NutritionTargets struct {
	UserID   string
	Calories int
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

type ReminderType string

const (
	ReminderWorkout    ReminderType = "workout"
	ReminderWater      ReminderType = "water"
	ReminderMeal       ReminderType = "meal"
	ReminderMedication ReminderType = "medication"
	ReminderSleep      ReminderType = "sleep"
	ReminderWeighIn    ReminderType = "weigh-in"
	ReminderCustom     ReminderType = "custom"
)

type Reminder struct {
	ID          string
	UserID      string
	Title       string
	Type        ReminderType
	TimeLabel   string
	RepeatDays  []string
	Enabled     bool
	Description string
	CreatedAt   time.Time
}
