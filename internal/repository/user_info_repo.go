package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fitness_tracker/internal/models"
)

type UserInfoRepository struct {
	db *sql.DB
}

func NewUserInfoRepository(db *sql.DB) *UserInfoRepository {
	return &UserInfoRepository{db: db}
}

var _ UserInfos = (*UserInfoRepository)(nil)

const (
	upsertUserInfoSQL = `
		INSERT INTO user_info (user_id, height_cm, weight_kg, birth_date, gender, goal, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			height_cm=excluded.height_cm,
			weight_kg=excluded.weight_kg,
			birth_date=excluded.birth_date,
			gender=excluded.gender,
			goal=excluded.goal,
			updated_at=excluded.updated_at
	`

	selectUserInfoSQL = `
		SELECT user_id, height_cm, weight_kg, birth_date, gender, goal, updated_at
		FROM user_info WHERE user_id = ?
	`
)

// Upsert writes the single user_info row of a user.
func (r *UserInfoRepository) Upsert(ctx context.Context, info models.UserInfo) error {
	ts := info.UpdatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, upsertUserInfoSQL,
		info.UserID,
		info.HeightCm,
		info.WeightKg,
		info.BirthDate,
		info.Gender,
		info.Goal,
		ts.UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert user_info %d: %w", info.UserID, classify(err))
	}
	return nil
}

// Get returns (nil, nil) if the user never saved their info.
func (r *UserInfoRepository) Get(ctx context.Context, userID int64) (*models.UserInfo, error) {
	var info models.UserInfo
	err := r.db.QueryRowContext(ctx, selectUserInfoSQL, userID).Scan(
		&info.UserID,
		&info.HeightCm,
		&info.WeightKg,
		&info.BirthDate,
		&info.Gender,
		&info.Goal,
		&info.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user_info %d: %w", userID, err)
	}
	info.UpdatedAt = info.UpdatedAt.UTC()
	return &info, nil
}
