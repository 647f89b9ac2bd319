package stats

import (
	"math"
	"time"

	"github.com/limbo/hydration/pkg/entity"
)

type DayBucket struct {
	Date    string `json:"date"`
	Label   string `json:"label"`
	TotalMl int    `json:"total_ml"`
}

type WeeklySummary struct {
	Days      []DayBucket `json:"days"`
	AverageMl int         `json:"average_ml"`
	// nil when nothing was logged during the week
	BestDay *DayBucket `json:"best_day,omitempty"`
}

// WeeklyByDay totals the 7 calendar days ending today, oldest first.
func WeeklyByDay(logs []entity.BeverageLog, now time.Time) WeeklySummary {
	return dayWindow(logs, now, weekDays)
}

// dayWindow is WeeklyByDay for an arbitrary number of days. Buckets are kept
// positionally, so two days sharing a weekday label are never merged.
func dayWindow(logs []entity.BeverageLog, now time.Time, days int) WeeklySummary {
	totals := dailyTotals(logs, now, days)
	first := dayStart(now).AddDate(0, 0, -(days - 1))
	summary := WeeklySummary{Days: make([]DayBucket, days)}
	sum := 0
	best := -1
	for i, total := range totals {
		day := first.AddDate(0, 0, i)
		summary.Days[i] = DayBucket{
			Date:    day.Format(time.DateOnly),
			Label:   WeekdayLabel(day),
			TotalMl: total,
		}
		sum += total
		// strictly greater keeps the earliest day on ties
		if total > 0 && (best < 0 || total > totals[best]) {
			best = i
		}
	}
	summary.AverageMl = int(math.Round(float64(sum) / float64(days)))
	if best >= 0 {
		bestDay := summary.Days[best]
		summary.BestDay = &bestDay
	}
	return summary
}
