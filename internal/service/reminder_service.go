package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/internal/repository"
	"github.com/limbo/hydration/pkg/entity"
)

const (
	FrequencyHourly     = "hourly"
	FrequencyCustom     = "custom"
	FrequencyFixedTimes = "fixed_times"

	DefaultReminderStart = "08:00"
	DefaultReminderEnd   = "20:00"
	hourlyInterval       = 60
)

type ReminderService struct {
	repo repository.RemindersRepositoryI
}

func NewReminderService(remindersRepo repository.RemindersRepositoryI) *ReminderService {
	if remindersRepo == nil {
		log.Fatal("provided nil remindersRepo")
	}
	return &ReminderService{
		repo: remindersRepo,
	}
}

func (rs *ReminderService) Get(ctx context.Context, uid uuid.UUID) (*entity.ReminderSettings, error) {
	s, err := rs.repo.GetByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRemindersNotFound) {
			return nil, err
		}
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	return s, nil
}

func (rs *ReminderService) Save(ctx context.Context, uid uuid.UUID, req *SaveRemindersRequest) (*entity.ReminderSettings, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	s := entity.ReminderSettings{
		UserID:          uid,
		Frequency:       req.Frequency,
		StartTime:       cmp.Or(req.StartTime, DefaultReminderStart),
		EndTime:         cmp.Or(req.EndTime, DefaultReminderEnd),
		IntervalMinutes: req.IntervalMinutes,
		FixedTimes:      []string{},
	}
	if clockMinutes(s.StartTime) >= clockMinutes(s.EndTime) {
		return nil, invalid("start_time must be before end_time")
	}
	switch s.Frequency {
	case FrequencyHourly:
		s.IntervalMinutes = hourlyInterval
	case FrequencyCustom:
		if s.IntervalMinutes == 0 {
			return nil, invalid("interval_minutes is required for custom frequency")
		}
	case FrequencyFixedTimes:
		if len(req.FixedTimes) == 0 {
			return nil, invalid("fixed_times must not be empty")
		}
		s.IntervalMinutes = hourlyInterval
		s.FixedTimes = normalizeTimes(req.FixedTimes)
	}
	if err := rs.repo.Upsert(ctx, &s); err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	return &s, nil
}

func (rs *ReminderService) Schedule(ctx context.Context, uid uuid.UUID) ([]string, error) {
	s, err := rs.repo.GetByUserID(ctx, uid)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrRemindersNotFound) {
			return nil, errors.New("reminders repository error: " + err.Error())
		}
		s = &entity.ReminderSettings{
			Frequency:       FrequencyHourly,
			StartTime:       DefaultReminderStart,
			EndTime:         DefaultReminderEnd,
			IntervalMinutes: hourlyInterval,
		}
	}
	return ReminderSchedule(*s), nil
}

// ReminderSchedule lists the times of day a reminder fires. Interval based
// frequencies step from start through end inclusive.
func ReminderSchedule(s entity.ReminderSettings) []string {
	if s.Frequency == FrequencyFixedTimes {
		return normalizeTimes(s.FixedTimes)
	}
	interval := s.IntervalMinutes
	if s.Frequency == FrequencyHourly || interval <= 0 {
		interval = hourlyInterval
	}
	start, end := clockMinutes(s.StartTime), clockMinutes(s.EndTime)
	times := make([]string, 0)
	if start < 0 || end < 0 {
		return times
	}
	for m := start; m <= end; m += interval {
		times = append(times, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return times
}

func normalizeTimes(times []string) []string {
	result := slices.Clone(times)
	slices.Sort(result)
	return slices.Compact(result)
}

// clockMinutes converts "HH:MM" to minutes since midnight, -1 if malformed.
func clockMinutes(clock string) int {
	if !clockRe.MatchString(clock) {
		return -1
	}
	return int(clock[0]-'0')*600 + int(clock[1]-'0')*60 + int(clock[3]-'0')*10 + int(clock[4]-'0')
}
