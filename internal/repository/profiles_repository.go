package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/pkg/entity"
)

type ProfilesRepository struct {
	conn PgConnection
}

func NewProfilesRepoWithConn(conn PgConnection) *ProfilesRepository {
	mustPing(conn, "profilesRepo")
	return &ProfilesRepository{
		conn: conn,
	}
}

// Upsert relies on the UNIQUE(user_id) constraint: a second save for the same user
// replaces every field and bumps updated_at, keeping id and created_at.
func (pr *ProfilesRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	if profile == nil {
		return errors.New("profile is nil")
	}
	row := pr.conn.QueryRow(ctx, `INSERT INTO user_profiles (user_id, daily_goal_ml, age, gender, weight_kg, activity_level) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (user_id) DO UPDATE SET daily_goal_ml = EXCLUDED.daily_goal_ml, age = EXCLUDED.age, gender = EXCLUDED.gender, weight_kg = EXCLUDED.weight_kg, activity_level = EXCLUDED.activity_level, updated_at = NOW() RETURNING id, created_at, updated_at;`,
		profile.UserID,
		profile.DailyGoalMl,
		profile.Age,
		profile.Gender,
		profile.WeightKg,
		profile.ActivityLevel,
	)
	if err := row.Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
		if pgErrorCode(err) == foreignKeyViolation {
			return errorvalues.ErrOwnerNotFound
		}
		return errors.New("upserting profile error: " + err.Error())
	}
	return nil
}

func (pr *ProfilesRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Profile, error) {
	var p entity.Profile
	row := pr.conn.QueryRow(ctx, `SELECT id, user_id, daily_goal_ml, age, gender, weight_kg, activity_level, created_at, updated_at FROM user_profiles WHERE user_id = $1;`, uid)
	err := row.Scan(&p.ID, &p.UserID, &p.DailyGoalMl, &p.Age, &p.Gender, &p.WeightKg, &p.ActivityLevel, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, errors.New("getting profile error: " + err.Error())
	}
	return &p, nil
}
