package engine

import (
	"time"

	"github.com/tharindu/fitlog/internal/model"
)

type WorkoutSummary struct {
	TotalMinutes  int `json:"total_minutes"`
	TotalCalories int `json:"total_calories"`
	Count         int `json:"count"`
	// AverageMinutes uses floor integer division; 75 minutes over two
	// workouts reads 37.
	AverageMinutes  int                       `json:"average_minutes_per_workout"`
	FrequencyByType map[model.WorkoutType]int `json:"frequency_by_type"`
	// MostActiveDay is filled by the reporter from the full record set.
	MostActiveDay string `json:"most_active_day,omitempty"`
}

// AggregateWorkouts summarizes records whose date falls in the
// half-open window [start, end). The start boundary is included and
// the end excluded so adjacent windows never double-count a workout.
// An inverted window matches nothing.
func AggregateWorkouts(records []model.WorkoutRecord, start, end time.Time) WorkoutSummary {
	s := WorkoutSummary{FrequencyByType: make(map[model.WorkoutType]int)}
	for _, r := range records {
		if r.Date.Before(start) || !r.Date.Before(end) {
			continue
		}
		s.TotalMinutes += r.DurationMin
		s.TotalCalories += r.Calories
		s.Count++
		s.FrequencyByType[r.Type]++
	}
	if s.Count > 0 {
		s.AverageMinutes = s.TotalMinutes / s.Count
	}
	return s
}

type MacroDistribution struct {
	ProteinPct float64 `json:"protein_pct"`
	CarbsPct   float64 `json:"carbs_pct"`
	FatPct     float64 `json:"fat_pct"`
}

type NutritionSummary struct {
	TotalCalories    int               `json:"total_calories"`
	DayCount         int               `json:"day_count"`
	AvgDailyCalories float64           `json:"avg_daily_calories"`
	AvgDailyProteinG float64           `json:"avg_daily_protein_g"`
	AvgDailyCarbsG   float64           `json:"avg_daily_carbs_g"`
	AvgDailyFatG     float64           `json:"avg_daily_fat_g"`
	Distribution     MacroDistribution `json:"macro_distribution"`
}

// AggregateNutrition averages meal totals over the inclusive calendar
// days in [start, end]. Macro shares convert grams to calories at
// 4/4/9 kcal per gram and are zero, not NaN, when nothing was logged.
// A window with start after end yields the zero summary.
func AggregateNutrition(meals []model.Meal, start, end time.Time) NutritionSummary {
	var s NutritionSummary
	s.DayCount = inclusiveDayCount(start, end)
	if s.DayCount == 0 {
		return s
	}

	startDay := beginningOfDay(start)
	endDay := beginningOfDay(end)
	var proteinG, carbsG, fatG float64
	for _, m := range meals {
		day := beginningOfDay(m.Date)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		s.TotalCalories += m.TotalCalories()
		proteinG += m.TotalProteinG()
		carbsG += m.TotalCarbsG()
		fatG += m.TotalFatG()
	}

	days := float64(s.DayCount)
	s.AvgDailyCalories = float64(s.TotalCalories) / days
	s.AvgDailyProteinG = proteinG / days
	s.AvgDailyCarbsG = carbsG / days
	s.AvgDailyFatG = fatG / days
	s.Distribution = MacroDistribution{
		ProteinPct: macroSharePct(s.AvgDailyProteinG*4, s.AvgDailyCalories),
		CarbsPct:   macroSharePct(s.AvgDailyCarbsG*4, s.AvgDailyCalories),
		FatPct:     macroSharePct(s.AvgDailyFatG*9, s.AvgDailyCalories),
	}
	return s
}

func macroSharePct(macroCalories, totalCalories float64) float64 {
	if totalCalories <= 0 {
		return 0
	}
	return macroCalories / totalCalories * 100
}

// CalorieBalance reports energy in versus energy out over a period.
// Burned folds in the resting estimate; Net keeps the sign convention
// consumed - (burned + resting*days), positive meaning surplus.
type CalorieBalance struct {
	Consumed int `json:"consumed"`
	Burned   int `json:"burned"`
	Net      int `json:"net"`
}

func ComputeCalorieBalance(consumed, burned, restingPerDay, days int) CalorieBalance {
	expended := burned + restingPerDay*days
	return CalorieBalance{
		Consumed: consumed,
		Burned:   expended,
		Net:      consumed - expended,
	}
}

type GoalSummary struct {
	Total          int                        `json:"total"`
	Completed      int                        `json:"completed"`
	Overdue        int                        `json:"overdue"`
	OnTrack        int                        `json:"on_track"`
	CompletionRate float64                    `json:"completion_rate"`
	ByCategory     map[model.GoalCategory]int `json:"by_category"`
	ByPriority     map[model.Priority]int     `json:"by_priority"`
}

// SummarizeGoals counts completion and overdue state across a user's
// goals. The completion rate is a percentage, zero when there are no
// goals.
func SummarizeGoals(goals []model.Goal, now time.Time) GoalSummary {
	s := GoalSummary{
		ByCategory: make(map[model.GoalCategory]int),
		ByPriority: make(map[model.Priority]int),
	}
	for _, g := range goals {
		s.Total++
		if g.Completed {
			s.Completed++
		}
		if IsOverdue(g, now) {
			s.Overdue++
		}
		s.ByCategory[g.Category]++
		s.ByPriority[g.Priority]++
	}
	if s.Total > 0 {
		s.CompletionRate = float64(s.Completed) / float64(s.Total) * 100
	}
	s.OnTrack = s.Total - s.Completed - s.Overdue
	return s
}

type DayTrend struct {
	Date     string `json:"date"`
	Minutes  int    `json:"minutes"`
	Calories int    `json:"calories"`
}

// WorkoutTrends produces one point per calendar day in [start, end],
// zero-filled for days without workouts.
func WorkoutTrends(records []model.WorkoutRecord, start, end time.Time) []DayTrend {
	startDay := beginningOfDay(start)
	endDay := beginningOfDay(end)
	if startDay.After(endDay) {
		return nil
	}
	trends := make([]DayTrend, 0, inclusiveDayCount(start, end))
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		point := DayTrend{Date: d.Format("2006-01-02")}
		for _, r := range records {
			if sameDay(r.Date, d) {
				point.Minutes += r.DurationMin
				point.Calories += r.Calories
			}
		}
		trends = append(trends, point)
	}
	return trends
}

// MostActiveDay names the weekday with the most logged workouts, or ""
// when there are none.
func MostActiveDay(records []model.WorkoutRecord) string {
	counts := make(map[time.Weekday]int)
	for _, r := range records {
		counts[r.Date.Weekday()]++
	}
	best := ""
	bestCount := 0
	for day := time.Sunday; day <= time.Saturday; day++ {
		if counts[day] > bestCount {
			best = day.String()
			bestCount = counts[day]
		}
	}
	return best
}
