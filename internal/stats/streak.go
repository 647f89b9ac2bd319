package stats

import (
	"time"

	"github.com/limbo/hydration/pkg/entity"
)

// GoalStreak counts consecutive days, ending today, on which the goal was met.
// Today is still in progress, so when it hasn't reached the goal yet the count
// starts from yesterday. The streak can't be longer than the lookback window.
func GoalStreak(logs []entity.BeverageLog, goalMl int, now time.Time) int {
	if goalMl <= 0 {
		return 0
	}
	totals := dailyTotals(logs, now, LookbackDays)
	i := len(totals) - 1
	if totals[i] < goalMl {
		i--
	}
	streak := 0
	for ; i >= 0 && totals[i] >= goalMl; i-- {
		streak++
	}
	return streak
}
