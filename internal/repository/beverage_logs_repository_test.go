package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/internal/repository"
	"github.com/limbo/hydration/pkg/entity"
)

var (
	userID = uuid.New()
)

func TestCreateBeverageLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewBeverageLogsRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO beverage_logs (user_id, beverage_type, amount_ml) VALUES ($1, $2, $3) RETURNING id, created_at;`)
	logID := uuid.New()
	createdAt := time.Date(2026, time.March, 15, 8, 0, 0, 0, time.UTC)
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "successful",
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(userID, "water", 250).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(logID, createdAt))
			},
		},
		{
			Desc:  "fk violation",
			Error: errorvalues.ErrOwnerNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(userID, "water", 250).
					WillReturnError(&pgconn.PgError{Code: "23503"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating beverage log error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(userID, "water", 250).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			l := entity.BeverageLog{UserID: userID, BeverageType: "water", AmountMl: 250}
			err := repo.Create(ctx, &l)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, logID, l.ID)
			assert.Equal(t, createdAt, l.CreatedAt)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBeverageLogs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewBeverageLogsRepoWithConn(mock)
	columns := []string{"id", "user_id", "beverage_type", "amount_ml", "created_at"}
	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	logs := []entity.BeverageLog{
		{ID: uuid.New(), UserID: userID, BeverageType: "water", AmountMl: 250, CreatedAt: from.Add(8 * time.Hour)},
		{ID: uuid.New(), UserID: userID, BeverageType: "coffee", AmountMl: 150, CreatedAt: from.Add(30 * time.Hour)},
	}
	ctx := context.Background()

	t.Run("open range", func(t *testing.T) {
		rows := pgxmock.NewRows(columns)
		for _, l := range logs {
			rows.AddRow(l.ID, l.UserID, l.BeverageType, l.AmountMl, l.CreatedAt)
		}
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, beverage_type, amount_ml, created_at FROM beverage_logs WHERE user_id = $1 AND created_at >= $2 ORDER BY created_at ASC, id ASC;`)).
			WithArgs(userID, from).
			WillReturnRows(rows)
		result, err := repo.ListByUserAndRange(ctx, userID, from, nil)
		require.NoError(t, err)
		assert.Equal(t, logs, result)
	})
	t.Run("bounded range without rows", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, beverage_type, amount_ml, created_at FROM beverage_logs WHERE user_id = $1 AND created_at >= $2 AND created_at < $3 ORDER BY created_at ASC, id ASC;`)).
			WithArgs(userID, from, to).
			WillReturnRows(pgxmock.NewRows(columns))
		result, err := repo.ListByUserAndRange(ctx, userID, from, &to)
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM beverage_logs`)).
			WithArgs(userID, from, to).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListByUserAndRange(ctx, userID, from, &to)
		assert.EqualError(t, err, "listing beverage logs error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
