package stats

import (
	"math"
	"time"

	"github.com/limbo/hydration/pkg/entity"
)

type WeekBucket struct {
	Label     string `json:"label"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	TotalMl   int    `json:"total_ml"`
}

type MonthlySummary struct {
	Weeks          []WeekBucket `json:"weeks"`
	TotalMl        int          `json:"total_ml"`
	TotalDisplay   string       `json:"total_display"`
	DailyAverageMl int          `json:"daily_average_ml"`
}

// MonthlyByWeek splits the last 28 days into four sliding 7-day buckets ending
// today ("Week 1" is the oldest). The total and the daily average cover the
// whole lookback window, and the average always divides by LookbackDays.
func MonthlyByWeek(logs []entity.BeverageLog, now time.Time) MonthlySummary {
	totals := dailyTotals(logs, now, LookbackDays)
	today := dayStart(now)
	summary := MonthlySummary{Weeks: make([]WeekBucket, weekCount)}
	for w := 0; w < weekCount; w++ {
		// days ago of the newest day in this bucket
		newest := (weekCount - 1 - w) * weekDays
		oldest := newest + weekDays - 1
		bucket := WeekBucket{
			Label:     WeekLabel(w + 1),
			StartDate: today.AddDate(0, 0, -oldest).Format(time.DateOnly),
			EndDate:   today.AddDate(0, 0, -newest).Format(time.DateOnly),
		}
		for ago := newest; ago <= oldest; ago++ {
			bucket.TotalMl += totals[LookbackDays-1-ago]
		}
		summary.Weeks[w] = bucket
	}
	for _, total := range totals {
		summary.TotalMl += total
	}
	summary.TotalDisplay = FormatVolume(summary.TotalMl)
	summary.DailyAverageMl = int(math.Round(float64(summary.TotalMl) / LookbackDays))
	return summary
}
