package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/pkg/entity"
)

type RemindersRepository struct {
	conn PgConnection
}

func NewRemindersRepoWithConn(conn PgConnection) *RemindersRepository {
	mustPing(conn, "remindersRepo")
	return &RemindersRepository{
		conn: conn,
	}
}

func (rr *RemindersRepository) Upsert(ctx context.Context, settings *entity.ReminderSettings) error {
	if settings == nil {
		return errors.New("reminder settings are nil")
	}
	fixed := settings.FixedTimes
	if fixed == nil {
		fixed = []string{}
	}
	row := rr.conn.QueryRow(ctx, `INSERT INTO reminder_settings (user_id, frequency, start_time, end_time, interval_minutes, fixed_times) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (user_id) DO UPDATE SET frequency = EXCLUDED.frequency, start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time, interval_minutes = EXCLUDED.interval_minutes, fixed_times = EXCLUDED.fixed_times, updated_at = NOW() RETURNING updated_at;`,
		settings.UserID,
		settings.Frequency,
		settings.StartTime,
		settings.EndTime,
		settings.IntervalMinutes,
		fixed,
	)
	if err := row.Scan(&settings.UpdatedAt); err != nil {
		if pgErrorCode(err) == foreignKeyViolation {
			return errorvalues.ErrOwnerNotFound
		}
		return errors.New("upserting reminder settings error: " + err.Error())
	}
	return nil
}

func (rr *RemindersRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.ReminderSettings, error) {
	var s entity.ReminderSettings
	row := rr.conn.QueryRow(ctx, `SELECT user_id, frequency, start_time, end_time, interval_minutes, fixed_times, updated_at FROM reminder_settings WHERE user_id = $1;`, uid)
	err := row.Scan(&s.UserID, &s.Frequency, &s.StartTime, &s.EndTime, &s.IntervalMinutes, &s.FixedTimes, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrRemindersNotFound
		}
		return nil, errors.New("getting reminder settings error: " + err.Error())
	}
	return &s, nil
}
