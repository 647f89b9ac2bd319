package stats

import (
	"time"

	"github.com/limbo/hydration/pkg/entity"
)

const (
	// LookbackDays is the width of the historical window statistics are computed over.
	LookbackDays = 30
	// DefaultDailyGoalMl is used when the user has no profile yet.
	DefaultDailyGoalMl = 2500

	weekDays  = 7
	weekCount = 4
)

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// LookbackStart returns the first instant of the lookback window ending on now's day.
func LookbackStart(now time.Time) time.Time {
	return dayStart(now).AddDate(0, 0, -(LookbackDays - 1))
}

// dayIndex returns how many calendar days t lies before now's day, judged in
// now's location. Logs from the future give a negative index.
func dayIndex(t, now time.Time) int {
	ty, tm, td := t.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	// Calendar dates compared in UTC, where every day is exactly 24h long.
	day := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return int(today.Sub(day).Hours() / 24)
}

// dailyTotals sums amounts per calendar day for the last `days` days ending today.
// Index 0 is the oldest day.
func dailyTotals(logs []entity.BeverageLog, now time.Time, days int) []int {
	totals := make([]int, days)
	for _, l := range logs {
		idx := dayIndex(l.CreatedAt, now)
		if idx < 0 || idx >= days {
			continue
		}
		totals[days-1-idx] += l.AmountMl
	}
	return totals
}

// inLookback keeps logs that fall inside the lookback window ending today.
func inLookback(logs []entity.BeverageLog, now time.Time) []entity.BeverageLog {
	result := make([]entity.BeverageLog, 0, len(logs))
	for _, l := range logs {
		idx := dayIndex(l.CreatedAt, now)
		if idx >= 0 && idx < LookbackDays {
			result = append(result, l)
		}
	}
	return result
}
