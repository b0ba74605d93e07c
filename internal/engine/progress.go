package engine

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/tharindu/fitlog/internal/model"
)

// GoalProgressPercent returns how close a goal is to its target as an
// integer in [0, 100]. A target of zero yields 0 rather than an error;
// an unset target is a legitimate state for a freshly created goal.
//
// Weight goals measure travel from the stored starting baseline toward
// the target instead of the raw current/target ratio, so a start of
// 73.5 kg heading for 70 kg reads 50% at 71.75 kg. All other
// categories use round(current/target*100).
func GoalProgressPercent(g model.Goal) int {
	if g.TargetNumber <= 0 {
		return 0
	}
	var pct float64
	if g.Category == model.GoalWeight {
		total := math.Abs(g.TargetNumber - g.StartingValue)
		if total == 0 {
			return 0
		}
		achieved := math.Abs(g.CurrentNumber - g.StartingValue)
		pct = achieved / total * 100
	} else {
		pct = g.CurrentNumber / g.TargetNumber * 100
	}
	return clampPercent(int(math.Round(pct)))
}

// IsAchieved reports whether the goal's progress has reached its
// target. Callers decide whether to complete the goal; updating
// progress never completes it implicitly.
func IsAchieved(g model.Goal) bool {
	return GoalProgressPercent(g) >= 100
}

// IsOverdue is a pure function of stored state and the caller's now.
func IsOverdue(g model.Goal, now time.Time) bool {
	return !g.Completed && now.After(g.Deadline)
}

// DaysRemaining returns whole days until the deadline, never negative.
func DaysRemaining(g model.Goal, now time.Time) int {
	days := int(g.Deadline.Sub(now).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// StartingBaseline picks the numeric baseline recorded at goal
// creation: whichever of current and target is larger, so the
// direction of travel is downward for weight goals.
func StartingBaseline(current, target float64) float64 {
	if current > target {
		return current
	}
	return target
}

// CompleteGoal transitions a goal to its terminal Completed state,
// forcing current = target so the goal displays 100% even when the
// last recorded update undershot. Completing an already completed goal
// is a no-op, making the transition idempotent.
func CompleteGoal(g model.Goal, now time.Time) model.Goal {
	if g.Completed {
		return g
	}
	g.Completed = true
	g.CompletedAt = &now
	g.CurrentNumber = g.TargetNumber
	g.CurrentValue = FormatValue(g.TargetNumber)
	return g
}

// UpdateGoalProgress records a new current value. Completed goals are
// immutable; the state machine has no path back to Active.
func UpdateGoalProgress(g model.Goal, value float64) (model.Goal, error) {
	if g.Completed {
		return g, fmt.Errorf("goal %q is already completed", g.Name)
	}
	g.CurrentNumber = value
	g.CurrentValue = FormatValue(value)
	return g, nil
}

// FormatValue renders a numeric goal value without trailing zeros.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func clampPercent(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func roundPercent(num, den float64) int {
	if den <= 0 {
		return 0
	}
	return int(math.Round(num / den * 100))
}
