package engine

import "fmt"

// RuleInput bundles the period aggregates the recommendation rules
// evaluate against.
type RuleInput struct {
	Workouts  WorkoutSummary
	Nutrition NutritionSummary
	Balance   CalorieBalance
	Goals     GoalSummary
}

// RecommendationRule is a pure condition over the aggregates. Rules
// are independent: evaluation order affects only display order, never
// which rules fire.
type RecommendationRule struct {
	Name  string
	Apply func(RuleInput) (string, bool)
}

func recommendWorkoutFrequency(in RuleInput) (string, bool) {
	if in.Workouts.Count < 3 {
		return "Try to increase workout frequency to at least 3 times per week", true
	}
	return "", false
}

func recommendWorkoutDuration(in RuleInput) (string, bool) {
	if in.Workouts.AverageMinutes < 30 {
		return "Consider extending workout duration to 30+ minutes for better results", true
	}
	return "", false
}

func recommendProteinIntake(in RuleInput) (string, bool) {
	if in.Nutrition.Distribution.ProteinPct < 20 {
		return "Increase protein intake to support muscle recovery and growth", true
	}
	return "", false
}

func recommendCalorieDeficit(in RuleInput) (string, bool) {
	if in.Balance.Net > 500 {
		return "Consider reducing calorie intake or increasing physical activity", true
	}
	return "", false
}

func recommendGoalMilestones(in RuleInput) (string, bool) {
	if in.Goals.CompletionRate < 50 {
		return "Break down large goals into smaller, more achievable milestones", true
	}
	return "", false
}

func recommendDeadlineReview(in RuleInput) (string, bool) {
	if in.Goals.Overdue > 0 {
		return "Review overdue goals and adjust deadlines or targets if needed", true
	}
	return "", false
}

var recommendationRules = []RecommendationRule{
	{Name: "workout-frequency", Apply: recommendWorkoutFrequency},
	{Name: "workout-duration", Apply: recommendWorkoutDuration},
	{Name: "protein-intake", Apply: recommendProteinIntake},
	{Name: "calorie-surplus", Apply: recommendCalorieDeficit},
	{Name: "goal-milestones", Apply: recommendGoalMilestones},
	{Name: "deadline-review", Apply: recommendDeadlineReview},
}

// Recommendations evaluates the fixed rule list in order and collects
// the messages of the rules that fire.
func Recommendations(in RuleInput) []string {
	out := make([]string, 0, len(recommendationRules))
	for _, rule := range recommendationRules {
		if msg, ok := rule.Apply(in); ok {
			out = append(out, msg)
		}
	}
	return out
}

// Insights renders informational observations about the period. Unlike
// recommendations, these describe what happened rather than suggest a
// change.
func Insights(in RuleInput) []string {
	out := make([]string, 0, 6)
	if in.Workouts.Count > 0 {
		out = append(out, fmt.Sprintf("You completed %d workouts this period", in.Workouts.Count))
		if day := in.Workouts.MostActiveDay; day != "" {
			out = append(out, fmt.Sprintf("Your most active day is %s", day))
		}
	}
	if in.Nutrition.AvgDailyCalories > 0 {
		out = append(out, fmt.Sprintf("Average daily intake: %.0f calories", in.Nutrition.AvgDailyCalories))
		d := in.Nutrition.Distribution
		out = append(out, fmt.Sprintf("Macro distribution: %.0f%% protein, %.0f%% carbs, %.0f%% fat",
			d.ProteinPct, d.CarbsPct, d.FatPct))
	}
	if in.Goals.Total > 0 {
		out = append(out, fmt.Sprintf("Goal completion rate: %.0f%%", in.Goals.CompletionRate))
		if in.Goals.Overdue > 0 {
			out = append(out, fmt.Sprintf("%d goals are overdue and need attention", in.Goals.Overdue))
		}
	}
	return out
}
