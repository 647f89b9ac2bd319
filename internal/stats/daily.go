package stats

import (
	"time"

	"github.com/limbo/hydration/pkg/entity"
)

type HourBucket struct {
	Hour    int    `json:"hour"`
	Label   string `json:"label"`
	TotalMl int    `json:"total_ml"`
}

// DailyByHour groups today's logs by hour of day. Buckets come out in clock
// order (midnight first) and only hours with logs are present. No logs today
// gives an empty slice.
func DailyByHour(logs []entity.BeverageLog, now time.Time) []HourBucket {
	var totals [24]int
	var seen [24]bool
	for _, l := range logs {
		if dayIndex(l.CreatedAt, now) != 0 {
			continue
		}
		h := l.CreatedAt.In(now.Location()).Hour()
		totals[h] += l.AmountMl
		seen[h] = true
	}
	buckets := make([]HourBucket, 0)
	for h := range totals {
		if !seen[h] {
			continue
		}
		buckets = append(buckets, HourBucket{
			Hour:    h,
			Label:   HourLabel(h),
			TotalMl: totals[h],
		})
	}
	return buckets
}

// TodayIntake is the sum of today's logs.
func TodayIntake(logs []entity.BeverageLog, now time.Time) int {
	total := 0
	for _, l := range logs {
		if dayIndex(l.CreatedAt, now) == 0 {
			total += l.AmountMl
		}
	}
	return total
}
