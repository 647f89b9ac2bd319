package stats_test

import (
	"testing"

	"github.com/limbo/hydration/internal/stats"
	"github.com/limbo/hydration/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyByWeek(t *testing.T) {
	logs := []entity.BeverageLog{
		logAt("water", 1000, at(0, 9, 0)),
		logAt("water", 500, at(6, 9, 0)),
		logAt("milk", 700, at(7, 9, 0)),
		logAt("coffee", 300, at(27, 9, 0)),
		// outside the four buckets but still inside the window
		logAt("water", 900, at(28, 9, 0)),
		logAt("water", 100, at(29, 23, 59)),
		// outside the window
		logAt("water", 5000, at(30, 12, 0)),
		logAt("water", 5000, at(-1, 12, 0)),
	}
	summary := stats.MonthlyByWeek(logs, now)

	require.Len(t, summary.Weeks, 4)
	assert.Equal(t, stats.WeekBucket{Label: "Week 1", StartDate: "2026-02-16", EndDate: "2026-02-22", TotalMl: 300}, summary.Weeks[0])
	assert.Equal(t, stats.WeekBucket{Label: "Week 2", StartDate: "2026-02-23", EndDate: "2026-03-01", TotalMl: 0}, summary.Weeks[1])
	assert.Equal(t, stats.WeekBucket{Label: "Week 3", StartDate: "2026-03-02", EndDate: "2026-03-08", TotalMl: 700}, summary.Weeks[2])
	assert.Equal(t, stats.WeekBucket{Label: "Week 4", StartDate: "2026-03-09", EndDate: "2026-03-15", TotalMl: 1500}, summary.Weeks[3])

	assert.Equal(t, 3500, summary.TotalMl)
	assert.Equal(t, "3.5 L", summary.TotalDisplay)
	assert.Equal(t, 117, summary.DailyAverageMl)
}

func TestMonthlyByWeekDividesByWholeWindow(t *testing.T) {
	logs := []entity.BeverageLog{
		logAt("water", 3000, at(0, 9, 0)),
	}
	summary := stats.MonthlyByWeek(logs, now)
	assert.Equal(t, 100, summary.DailyAverageMl)
	assert.Equal(t, "3 L", summary.TotalDisplay)

	empty := stats.MonthlyByWeek(nil, now)
	assert.Equal(t, 0, empty.TotalMl)
	assert.Equal(t, "0 ml", empty.TotalDisplay)
	assert.Len(t, empty.Weeks, 4)
}
