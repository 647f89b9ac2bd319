package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/internal/repository"
	"github.com/limbo/hydration/internal/stats"
	"github.com/limbo/hydration/pkg/entity"
)

type StatsService struct {
	logsRepo     repository.BeverageLogsRepositoryI
	profilesRepo repository.ProfilesRepositoryI
	now          func() time.Time
}

type StatsOption func(*StatsService)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) StatsOption {
	return func(ss *StatsService) {
		ss.now = now
	}
}

func NewStatsService(logsRepo repository.BeverageLogsRepositoryI, profilesRepo repository.ProfilesRepositoryI, opts ...StatsOption) *StatsService {
	if logsRepo == nil || profilesRepo == nil {
		log.Fatal("on stats service provided nil repos")
	}
	ss := &StatsService{
		logsRepo:     logsRepo,
		profilesRepo: profilesRepo,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(ss)
	}
	return ss
}

func (ss *StatsService) Statistics(ctx context.Context, uid uuid.UUID, loc *time.Location) (*Statistics, error) {
	now := ss.localNow(loc)
	goal, goalOK := ss.dailyGoal(ctx, uid)
	logs, logsOK := ss.lookbackLogs(ctx, uid, now)
	return &Statistics{
		Summary:         stats.Summarize(logs, goal, now),
		DataUnavailable: !goalOK || !logsOK,
	}, nil
}

func (ss *StatsService) Progress(ctx context.Context, uid uuid.UUID, loc *time.Location) (*stats.Progress, error) {
	now := ss.localNow(loc)
	goal, _ := ss.dailyGoal(ctx, uid)
	logs, _ := ss.lookbackLogs(ctx, uid, now)
	p := stats.CalculateProgress(stats.TodayIntake(logs, now), goal)
	return &p, nil
}

func (ss *StatsService) localNow(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return ss.now().In(loc)
}

// dailyGoal falls back to the default goal when the user has no profile or it can't be read.
// The second result is false only on a read failure.
func (ss *StatsService) dailyGoal(ctx context.Context, uid uuid.UUID) (int, bool) {
	p, err := ss.profilesRepo.GetByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return stats.DefaultDailyGoalMl, true
		}
		slog.WarnContext(ctx, "profile unavailable, using default goal", slog.String("uid", uid.String()), slog.String("error", err.Error()))
		return stats.DefaultDailyGoalMl, false
	}
	return p.DailyGoalMl, true
}

// lookbackLogs substitutes an empty list when the store fails.
func (ss *StatsService) lookbackLogs(ctx context.Context, uid uuid.UUID, now time.Time) ([]entity.BeverageLog, bool) {
	logs, err := ss.logsRepo.ListByUserAndRange(ctx, uid, stats.LookbackStart(now), nil)
	if err != nil {
		slog.WarnContext(ctx, "beverage logs unavailable, computing over empty list", slog.String("uid", uid.String()), slog.String("error", err.Error()))
		return []entity.BeverageLog{}, false
	}
	return logs, true
}
