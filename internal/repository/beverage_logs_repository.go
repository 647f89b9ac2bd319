package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/pkg/entity"
)

const (
	listLogsQuery        = `SELECT id, user_id, beverage_type, amount_ml, created_at FROM beverage_logs WHERE user_id = $1 AND created_at >= $2 ORDER BY created_at ASC, id ASC;`
	listLogsBoundedQuery = `SELECT id, user_id, beverage_type, amount_ml, created_at FROM beverage_logs WHERE user_id = $1 AND created_at >= $2 AND created_at < $3 ORDER BY created_at ASC, id ASC;`
)

type BeverageLogsRepository struct {
	conn PgConnection
}

func NewBeverageLogsRepoWithConn(conn PgConnection) *BeverageLogsRepository {
	mustPing(conn, "beverageLogsRepo")
	return &BeverageLogsRepository{
		conn: conn,
	}
}

func (br *BeverageLogsRepository) Create(ctx context.Context, log *entity.BeverageLog) error {
	if log == nil {
		return errors.New("log is nil")
	}
	row := br.conn.QueryRow(ctx, `INSERT INTO beverage_logs (user_id, beverage_type, amount_ml) VALUES ($1, $2, $3) RETURNING id, created_at;`,
		log.UserID,
		log.BeverageType,
		log.AmountMl,
	)
	if err := row.Scan(&log.ID, &log.CreatedAt); err != nil {
		if pgErrorCode(err) == foreignKeyViolation {
			return errorvalues.ErrOwnerNotFound
		}
		return errors.New("creating beverage log error: " + err.Error())
	}
	return nil
}

func (br *BeverageLogsRepository) ListByUserAndRange(ctx context.Context, uid uuid.UUID, from time.Time, to *time.Time) ([]entity.BeverageLog, error) {
	query, args := listLogsQuery, []any{uid, from}
	if to != nil {
		query, args = listLogsBoundedQuery, append(args, *to)
	}
	rows, err := br.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("listing beverage logs error: " + err.Error())
	}
	defer rows.Close()
	logs := make([]entity.BeverageLog, 0)
	for rows.Next() {
		var l entity.BeverageLog
		err = rows.Scan(&l.ID, &l.UserID, &l.BeverageType, &l.AmountMl, &l.CreatedAt)
		if err != nil {
			return nil, errors.New("scanning beverage log error: " + err.Error())
		}
		logs = append(logs, l)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return logs, nil
}
