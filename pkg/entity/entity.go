package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

// BeverageLog is a single consumption event. It is never updated after creation.
type BeverageLog struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"uid"`
	BeverageType string    `json:"beverage_type"`
	AmountMl     int       `json:"amount_ml"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile holds the goal configuration of a user. At most one per user.
type Profile struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"uid"`
	DailyGoalMl   int       `json:"daily_goal_ml"`
	Age           *int      `json:"age,omitempty"`
	Gender        *string   `json:"gender,omitempty"`
	WeightKg      *float64  `json:"weight_kg,omitempty"`
	ActivityLevel *string   `json:"activity_level,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ReminderSettings struct {
	UserID          uuid.UUID `json:"uid"`
	Frequency       string    `json:"frequency"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	IntervalMinutes int       `json:"interval_minutes"`
	FixedTimes      []string  `json:"fixed_times"`
	UpdatedAt       time.Time `json:"updated_at"`
}
