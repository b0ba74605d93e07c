package engine

import (
	"sort"

	"github.com/tharindu/fitlog/internal/model"
)

// MergeMeal folds an incoming meal into an existing meal list. At most
// one meal per (day, type) is the canonical target: when a meal of the
// same type already exists on the same calendar day, the incoming food
// items append to it in order; otherwise the meal joins the list,
// which stays sorted in meal-type order. The inputs are not mutated;
// the caller decides how and when to persist the returned list.
func MergeMeal(existing []model.Meal, incoming model.Meal) []model.Meal {
	merged := make([]model.Meal, len(existing))
	copy(merged, existing)

	for i, m := range merged {
		if m.Type != incoming.Type || !sameDay(m.Date, incoming.Date) {
			continue
		}
		items := make([]model.SelectedFoodItem, 0, len(m.Items)+len(incoming.Items))
		items = append(items, m.Items...)
		items = append(items, incoming.Items...)
		merged[i].Items = items
		return merged
	}

	merged = append(merged, incoming)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Type.Ordinal() < merged[j].Type.Ordinal()
	})
	return merged
}
