package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/internal/repository"
	"github.com/limbo/hydration/pkg/entity"
)

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepoWithConn(conn)
	query := regexp.QuoteMeta(`INSERT INTO users (name, password_hash) VALUES ($1, $2) RETURNING id;`)
	newID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "successfully created",
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs("test_user", "test_password_hash").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(newID))
			},
		},
		{
			Desc:  "unique violation",
			Error: errorvalues.ErrUserExists,
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs("test_user", "test_password_hash").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating user db error: db error"),
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs("test_user", "test_password_hash").
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			user := entity.User{Name: "test_user", PasswordHash: "test_password_hash"}
			err := repo.Create(ctx, &user)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, newID, user.ID)
		})
	}
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestFindUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:           uuid.New(),
		Name:         "test_user",
		PasswordHash: "test_password_hash",
	}
	byName := regexp.QuoteMeta(`SELECT id, name, password_hash FROM users WHERE name = $1;`)
	byID := regexp.QuoteMeta(`SELECT id, name, password_hash FROM users WHERE id = $1;`)
	t.Run("found by name", func(t *testing.T) {
		conn.ExpectQuery(byName).
			WithArgs(user.Name).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "password_hash"}).AddRow(user.ID, user.Name, user.PasswordHash))
		result, err := repo.FindByName(ctx, user.Name)
		require.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("found by id", func(t *testing.T) {
		conn.ExpectQuery(byID).
			WithArgs(user.ID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "password_hash"}).AddRow(user.ID, user.Name, user.PasswordHash))
		result, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(byID).
			WithArgs(user.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(byName).
			WithArgs(user.Name).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByName(ctx, user.Name)
		assert.EqualError(t, err, "searching user error: db error")
	})
}

func TestDeleteUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM users WHERE id = $1;`)
	t.Run("deleted", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, uid))
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, uid), errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid).
			WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Delete(ctx, uid))
	})
}
