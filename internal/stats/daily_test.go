package stats_test

import (
	"testing"
	"time"

	"github.com/limbo/hydration/internal/stats"
	"github.com/limbo/hydration/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestDailyByHour(t *testing.T) {
	t.Run("two logs in the same hour", func(t *testing.T) {
		logs := []entity.BeverageLog{
			logAt("water", 250, at(0, 8, 0)),
			logAt("coffee", 150, at(0, 8, 30)),
		}
		buckets := stats.DailyByHour(logs, now)
		assert.Equal(t, []stats.HourBucket{{Hour: 8, Label: "8am", TotalMl: 400}}, buckets)
	})
	t.Run("chronological order, not label order", func(t *testing.T) {
		logs := []entity.BeverageLog{
			logAt("water", 100, at(0, 14, 0)),
			logAt("water", 200, at(0, 9, 10)),
			logAt("milk", 300, at(0, 0, 30)),
			logAt("water", 400, at(0, 12, 15)),
			logAt("coffee", 500, at(0, 23, 59)),
			logAt("water", 50, at(0, 9, 50)),
		}
		buckets := stats.DailyByHour(logs, now)
		labels := make([]string, 0, len(buckets))
		for _, b := range buckets {
			labels = append(labels, b.Label)
		}
		assert.Equal(t, []string{"12am", "9am", "12pm", "2pm", "11pm"}, labels)
		assert.Equal(t, 250, buckets[1].TotalMl)
	})
	t.Run("other days are ignored", func(t *testing.T) {
		logs := []entity.BeverageLog{
			logAt("water", 250, at(1, 8, 0)),
			logAt("water", 250, at(-1, 8, 0)),
			logAt("water", 250, at(0, 10, 0)),
		}
		buckets := stats.DailyByHour(logs, now)
		assert.Equal(t, []stats.HourBucket{{Hour: 10, Label: "10am", TotalMl: 250}}, buckets)
	})
	t.Run("day boundaries follow the reference location", func(t *testing.T) {
		// 23:30 UTC on Saturday is 02:30 on Sunday at UTC+3
		createdAt := time.Date(2026, time.March, 14, 23, 30, 0, 0, time.UTC)
		buckets := stats.DailyByHour([]entity.BeverageLog{logAt("water", 300, createdAt)}, now)
		assert.Equal(t, []stats.HourBucket{{Hour: 2, Label: "2am", TotalMl: 300}}, buckets)
	})
	t.Run("no logs today", func(t *testing.T) {
		buckets := stats.DailyByHour([]entity.BeverageLog{logAt("water", 250, at(2, 8, 0))}, now)
		assert.NotNil(t, buckets)
		assert.Empty(t, buckets)
		assert.Empty(t, stats.DailyByHour(nil, now))
	})
}

func TestDailyBucketsConserveTodayTotal(t *testing.T) {
	logs := make([]entity.BeverageLog, 0)
	for i := 0; i < 48; i++ {
		logs = append(logs, logAt("water", 10+i*7, at(i%3, (i*5)%24, i%60)))
	}
	today := make([]entity.BeverageLog, 0)
	for _, l := range logs {
		if l.CreatedAt.Day() == now.Day() {
			today = append(today, l)
		}
	}
	bucketTotal := 0
	for _, b := range stats.DailyByHour(logs, now) {
		bucketTotal += b.TotalMl
	}
	assert.Equal(t, sumAmounts(today), bucketTotal)
	assert.Equal(t, sumAmounts(today), stats.TodayIntake(logs, now))
}
