package stats_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/hydration/pkg/entity"
)

var (
	// UTC+3, no DST
	loc = time.FixedZone("MSK", 3*60*60)
	// Sunday
	now    = time.Date(2026, time.March, 15, 18, 0, 0, 0, loc)
	userID = uuid.New()
)

func at(daysAgo, hour, minute int) time.Time {
	d := now.AddDate(0, 0, -daysAgo)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, loc)
}

func logAt(typ string, amount int, createdAt time.Time) entity.BeverageLog {
	return entity.BeverageLog{
		ID:           uuid.New(),
		UserID:       userID,
		BeverageType: typ,
		AmountMl:     amount,
		CreatedAt:    createdAt,
	}
}

func sumAmounts(logs []entity.BeverageLog) int {
	total := 0
	for _, l := range logs {
		total += l.AmountMl
	}
	return total
}
