package stats

import "math"

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  0.8,
	ActivityModerate:   1.0,
	ActivityActive:     1.1,
	ActivityVeryActive: 1.2,
}

const (
	mlPerKg          = 30
	seniorAge        = 55
	seniorMultiplier = 0.9
	goalStepMl       = 50
)

type Progress struct {
	CurrentMl   int `json:"current_ml"`
	GoalMl      int `json:"goal_ml"`
	Percent     int `json:"percent"`
	RemainingMl int `json:"remaining_ml"`
}

// CalculateProgress clamps the percentage to [0, 100] and the remainder at 0.
// A non-positive goal is rejected when the profile is saved; here it only
// yields zero values.
func CalculateProgress(currentMl, goalMl int) Progress {
	p := Progress{CurrentMl: currentMl, GoalMl: goalMl}
	if goalMl <= 0 {
		return p
	}
	percent := int(math.Round(float64(currentMl) / float64(goalMl) * 100))
	p.Percent = min(max(percent, 0), 100)
	p.RemainingMl = max(goalMl-currentMl, 0)
	return p
}

// RecommendGoal suggests a daily goal: 30 ml per kg, times 0.9 above 55 years,
// times the activity multiplier, rounded to the nearest 50 ml. Without a usable
// weight the default goal is returned. Unknown activity levels count as moderate.
func RecommendGoal(weightKg float64, ageYears int, activity ActivityLevel) int {
	if weightKg <= 0 || math.IsNaN(weightKg) || math.IsInf(weightKg, 0) {
		return DefaultDailyGoalMl
	}
	goal := weightKg * mlPerKg
	if ageYears > seniorAge {
		goal *= seniorMultiplier
	}
	if m, ok := activityMultipliers[activity]; ok {
		goal *= m
	}
	return int(math.Round(goal/goalStepMl)) * goalStepMl
}

// ValidActivityLevel reports whether level is one of the known activity levels.
func ValidActivityLevel(level string) bool {
	_, ok := activityMultipliers[ActivityLevel(level)]
	return ok
}
