package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/internal/repository"
	"github.com/limbo/hydration/pkg/entity"
)

func TestUpsertReminders(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewRemindersRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO reminder_settings (user_id, frequency, start_time, end_time, interval_minutes, fixed_times) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (user_id) DO UPDATE SET`)
	ts := time.Date(2026, time.March, 15, 8, 0, 0, 0, time.UTC)
	ctx := context.Background()
	t.Run("nil fixed times are stored as empty array", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, "hourly", "08:00", "20:00", 60, []string{}).
			WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(ts))
		s := entity.ReminderSettings{UserID: userID, Frequency: "hourly", StartTime: "08:00", EndTime: "20:00", IntervalMinutes: 60}
		require.NoError(t, repo.Upsert(ctx, &s))
		assert.Equal(t, ts, s.UpdatedAt)
	})
	t.Run("fk violation", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, "fixed_times", "08:00", "20:00", 60, []string{"09:00", "13:00"}).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		s := entity.ReminderSettings{UserID: userID, Frequency: "fixed_times", StartTime: "08:00", EndTime: "20:00", IntervalMinutes: 60, FixedTimes: []string{"09:00", "13:00"}}
		assert.ErrorIs(t, repo.Upsert(ctx, &s), errorvalues.ErrOwnerNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReminders(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewRemindersRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT user_id, frequency, start_time, end_time, interval_minutes, fixed_times, updated_at FROM reminder_settings WHERE user_id = $1;`)
	columns := []string{"user_id", "frequency", "start_time", "end_time", "interval_minutes", "fixed_times", "updated_at"}
	ts := time.Date(2026, time.March, 15, 8, 0, 0, 0, time.UTC)
	ctx := context.Background()
	testCases := []struct {
		Desc         string
		Expected     *entity.ReminderSettings
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "found",
			Expected: &entity.ReminderSettings{
				UserID: userID, Frequency: "custom", StartTime: "07:30", EndTime: "22:00",
				IntervalMinutes: 90, FixedTimes: []string{}, UpdatedAt: ts,
			},
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(userID).
					WillReturnRows(pgxmock.NewRows(columns).AddRow(userID, "custom", "07:30", "22:00", 90, []string{}, ts))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrRemindersNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting reminder settings error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			s, err := repo.GetByUserID(ctx, userID)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, s)
		})
	}
}
