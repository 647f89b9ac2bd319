package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/internal/repository/mocks"
	"github.com/limbo/hydration/internal/service"
	"github.com/limbo/hydration/pkg/entity"
)

func TestReminderSchedule(t *testing.T) {
	testCases := []struct {
		Desc     string
		Settings entity.ReminderSettings
		Expected []string
	}{
		{
			Desc:     "hourly includes end",
			Settings: entity.ReminderSettings{Frequency: "hourly", StartTime: "08:00", EndTime: "12:00", IntervalMinutes: 60},
			Expected: []string{"08:00", "09:00", "10:00", "11:00", "12:00"},
		},
		{
			Desc:     "hourly ignores interval",
			Settings: entity.ReminderSettings{Frequency: "hourly", StartTime: "08:00", EndTime: "10:00", IntervalMinutes: 15},
			Expected: []string{"08:00", "09:00", "10:00"},
		},
		{
			Desc:     "custom interval lands on end",
			Settings: entity.ReminderSettings{Frequency: "custom", StartTime: "07:30", EndTime: "12:00", IntervalMinutes: 90},
			Expected: []string{"07:30", "09:00", "10:30", "12:00"},
		},
		{
			Desc:     "custom interval not reaching end",
			Settings: entity.ReminderSettings{Frequency: "custom", StartTime: "09:00", EndTime: "10:00", IntervalMinutes: 45},
			Expected: []string{"09:00", "09:45"},
		},
		{
			Desc:     "fixed times sorted and deduplicated",
			Settings: entity.ReminderSettings{Frequency: "fixed_times", FixedTimes: []string{"15:00", "09:30", "15:00", "07:00"}},
			Expected: []string{"07:00", "09:30", "15:00"},
		},
		{
			Desc:     "malformed bounds",
			Settings: entity.ReminderSettings{Frequency: "hourly", StartTime: "8am", EndTime: "20:00"},
			Expected: []string{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, service.ReminderSchedule(tc.Settings))
		})
	}
}

func TestSaveReminders(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRemindersRepositoryI(ctrl)
	rs := service.NewReminderService(repo)
	ctx := context.Background()

	t.Run("hourly with defaults", func(t *testing.T) {
		repo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		s, err := rs.Save(ctx, userID, &service.SaveRemindersRequest{Frequency: "hourly"})
		require.NoError(t, err)
		assert.Equal(t, "08:00", s.StartTime)
		assert.Equal(t, "20:00", s.EndTime)
		assert.Equal(t, 60, s.IntervalMinutes)
	})
	t.Run("fixed times normalized", func(t *testing.T) {
		repo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		s, err := rs.Save(ctx, userID, &service.SaveRemindersRequest{Frequency: "fixed_times", FixedTimes: []string{"18:00", "09:00", "18:00"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "18:00"}, s.FixedTimes)
	})
	invalidRequests := map[string]service.SaveRemindersRequest{
		"unknown frequency":       {Frequency: "daily"},
		"start after end":         {Frequency: "hourly", StartTime: "21:00", EndTime: "20:00"},
		"start equals end":        {Frequency: "hourly", StartTime: "10:00", EndTime: "10:00"},
		"malformed clock":         {Frequency: "hourly", StartTime: "8:00"},
		"custom without interval": {Frequency: "custom"},
		"interval too small":      {Frequency: "custom", IntervalMinutes: 5},
		"interval too big":        {Frequency: "custom", IntervalMinutes: 241},
		"empty fixed times":       {Frequency: "fixed_times"},
		"malformed fixed time":    {Frequency: "fixed_times", FixedTimes: []string{"24:00"}},
	}
	for desc, req := range invalidRequests {
		t.Run(desc, func(t *testing.T) {
			_, err := rs.Save(ctx, userID, &req)
			assert.ErrorIs(t, err, errorvalues.ErrValidation)
		})
	}
}

func TestSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRemindersRepositoryI(ctrl)
	rs := service.NewReminderService(repo)
	ctx := context.Background()

	repo.EXPECT().GetByUserID(ctx, userID).Return(nil, errorvalues.ErrRemindersNotFound)
	times, err := rs.Schedule(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, times, 13)
	assert.Equal(t, "08:00", times[0])
	assert.Equal(t, "20:00", times[12])

	repo.EXPECT().GetByUserID(ctx, userID).Return(&entity.ReminderSettings{Frequency: "fixed_times", FixedTimes: []string{"12:00"}}, nil)
	times, err = rs.Schedule(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"12:00"}, times)

	repo.EXPECT().GetByUserID(ctx, userID).Return(nil, errorvalues.ErrRemindersNotFound)
	_, err = rs.Get(ctx, userID)
	assert.ErrorIs(t, err, errorvalues.ErrRemindersNotFound)
}
