package engine

import "github.com/tharindu/fitlog/internal/model"

// NutritionProgress compares one day's consumed totals against the
// user's target profile. Remaining and percentage fields come in two
// flavors: raw signed values for downstream analytics and clamped
// values for display. The engine never silently discards the sign;
// calorie-balance insight rules key off it.
type NutritionProgress struct {
	ConsumedCalories int
	// RemainingCalories is clamped at zero for display.
	RemainingCalories int
	// CalorieSurplus is the unclamped signed remainder
	// (consumed - target); positive means over target.
	CalorieSurplus int

	ConsumedProteinG float64
	ConsumedCarbsG   float64
	ConsumedFatG     float64

	// Raw percentages are not capped; over-consumption past 100% is
	// valid signal for analytics.
	CalorieProgressPct int
	ProteinPct         int
	CarbsPct           int
	FatPct             int

	// Display percentages cap at 100.
	CalorieDisplayPct int
	ProteinDisplayPct int
	CarbsDisplayPct   int
	FatDisplayPct     int
}

// ComputeNutritionProgress sums the supplied meals (the caller filters
// to the desired day) against the targets. Zero targets produce zero
// percentages rather than dividing by zero.
func ComputeNutritionProgress(targets model.NutritionTargets, meals []model.Meal) NutritionProgress {
	var p NutritionProgress
	for _, m := range meals {
		p.ConsumedCalories += m.TotalCalories()
		p.ConsumedProteinG += m.TotalProteinG()
		p.ConsumedCarbsG += m.TotalCarbsG()
		p.ConsumedFatG += m.TotalFatG()
	}

	p.CalorieSurplus = p.ConsumedCalories - targets.Calories
	p.RemainingCalories = targets.Calories - p.ConsumedCalories
	if p.RemainingCalories < 0 {
		p.RemainingCalories = 0
	}

	p.CalorieProgressPct = roundPercent(float64(p.ConsumedCalories), float64(targets.Calories))
	p.ProteinPct = roundPercent(p.ConsumedProteinG, targets.ProteinG)
	p.CarbsPct = roundPercent(p.ConsumedCarbsG, targets.CarbsG)
	p.FatPct = roundPercent(p.ConsumedFatG, targets.FatG)

	p.CalorieDisplayPct = capPercent(p.CalorieProgressPct)
	p.ProteinDisplayPct = capPercent(p.ProteinPct)
	p.CarbsDisplayPct = capPercent(p.CarbsPct)
	p.FatDisplayPct = capPercent(p.FatPct)
	return p
}

func capPercent(pct int) int {
	if pct > 100 {
		return 100
	}
	return pct
}
