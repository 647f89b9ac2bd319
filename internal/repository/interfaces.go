package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/hydration/pkg/entity"
)

//go:generate mockgen -destination=mocks/repository_mocks.go -package=mocks github.com/limbo/hydration/internal/repository UsersRepositoryI,BeverageLogsRepositoryI,ProfilesRepositoryI,RemindersRepositoryI

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user together with all of his records
	Delete(ctx context.Context, uid uuid.UUID) error
}

type BeverageLogsRepositoryI interface {
	// Appends a log. ID and CreatedAt are assigned by the database and written back into log
	Create(ctx context.Context, log *entity.BeverageLog) error
	// Lists logs of uid created in [from, to), oldest first. Nil to means no upper bound
	ListByUserAndRange(ctx context.Context, uid uuid.UUID, from time.Time, to *time.Time) ([]entity.BeverageLog, error)
}

type ProfilesRepositoryI interface {
	// Creates or replaces the profile of profile.UserID. ID and timestamps are written back
	Upsert(ctx context.Context, profile *entity.Profile) error
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Profile, error)
}

type RemindersRepositoryI interface {
	Upsert(ctx context.Context, settings *entity.ReminderSettings) error
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.ReminderSettings, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
