package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/hydration/internal/stats"
	"github.com/limbo/hydration/pkg/entity"
)

//go:generate mockgen -destination=mocks/service_mocks.go -package=mocks github.com/limbo/hydration/internal/service UserServiceI,HydrationServiceI,ProfileServiceI,StatsServiceI,ReminderServiceI

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,alphanum_underscore,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type AppendLogRequest struct {
	BeverageType string `json:"beverage_type" validate:"required,max=32,beverage_type"`
	AmountMl     int    `json:"amount_ml" validate:"required,gt=0,lte=5000"`
}

// ListLogsQuery holds calendar dates (YYYY-MM-DD) interpreted in Location.
// Both ends are inclusive, an empty EndDate means "up to now".
type ListLogsQuery struct {
	StartDate string
	EndDate   string
	Location  *time.Location
}

type SaveProfileRequest struct {
	DailyGoalMl   int      `json:"daily_goal_ml" validate:"required,min=1,max=20000"`
	Age           *int     `json:"age,omitempty" validate:"omitempty,min=1,max=120"`
	Gender        *string  `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	WeightKg      *float64 `json:"weight_kg,omitempty" validate:"omitempty,gt=0,lte=300"`
	ActivityLevel *string  `json:"activity_level,omitempty" validate:"omitempty,oneof=sedentary moderate active very_active"`
}

// RecommendationQuery overrides stored profile values. Nil fields are taken from the profile.
type RecommendationQuery struct {
	WeightKg      *float64
	Age           *int
	ActivityLevel *string
}

type SaveRemindersRequest struct {
	Frequency       string   `json:"frequency" validate:"required,oneof=hourly custom fixed_times"`
	StartTime       string   `json:"start_time,omitempty" validate:"omitempty,clock"`
	EndTime         string   `json:"end_time,omitempty" validate:"omitempty,clock"`
	IntervalMinutes int      `json:"interval_minutes,omitempty" validate:"omitempty,min=15,max=240"`
	FixedTimes      []string `json:"fixed_times,omitempty" validate:"omitempty,max=48,dive,clock"`
}

// Statistics is the full statistics payload. DataUnavailable is set when the
// logs couldn't be fetched and the views were computed over an empty list.
type Statistics struct {
	stats.Summary
	DataUnavailable bool `json:"data_unavailable"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Deletes account with all of its logs, profile and reminders
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type HydrationServiceI interface {
	AppendLog(ctx context.Context, uid uuid.UUID, req *AppendLogRequest) (*entity.BeverageLog, error)
	ListLogs(ctx context.Context, uid uuid.UUID, query ListLogsQuery) ([]entity.BeverageLog, error)
}

type ProfileServiceI interface {
	Get(ctx context.Context, uid uuid.UUID) (*entity.Profile, error)
	Save(ctx context.Context, uid uuid.UUID, req *SaveProfileRequest) (*entity.Profile, error)
	Recommend(ctx context.Context, uid uuid.UUID, query RecommendationQuery) (int, error)
}

type StatsServiceI interface {
	// Never fails because of the log store: see Statistics.DataUnavailable
	Statistics(ctx context.Context, uid uuid.UUID, loc *time.Location) (*Statistics, error)
	// Today's progress against the daily goal
	Progress(ctx context.Context, uid uuid.UUID, loc *time.Location) (*stats.Progress, error)
}

type ReminderServiceI interface {
	Get(ctx context.Context, uid uuid.UUID) (*entity.ReminderSettings, error)
	Save(ctx context.Context, uid uuid.UUID, req *SaveRemindersRequest) (*entity.ReminderSettings, error)
	// Reminder times of day ("HH:MM"). Users without settings get the hourly defaults
	Schedule(ctx context.Context, uid uuid.UUID) ([]string, error)
}
