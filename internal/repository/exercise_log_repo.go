package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"fitness_tracker/internal/models"
)

// LogQuery filters exercise logs. Empty dates and a zero ExerciseID mean no bound.
type LogQuery struct {
	UserID     int64
	From       string // YYYY-MM-DD, inclusive
	To         string // YYYY-MM-DD, inclusive
	ExerciseID int64
}

type ExerciseLogRepository struct {
	db *sql.DB
}

func NewExerciseLogRepository(db *sql.DB) *ExerciseLogRepository {
	return &ExerciseLogRepository{db: db}
}

var _ ExerciseLogs = (*ExerciseLogRepository)(nil)

const (
	exerciseLogColumns = `id, user_id, exercise_id, log_date, sets, reps, weight_kg, duration_sec, memo, points, created_at`

	insertExerciseLogSQL = `
		INSERT INTO exercise_logs (user_id, exercise_id, log_date, sets, reps, weight_kg, duration_sec, memo, points, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	updateExerciseLogSQL = `
		UPDATE exercise_logs
		SET exercise_id = ?, log_date = ?, sets = ?, reps = ?, weight_kg = ?, duration_sec = ?, memo = ?, points = ?
		WHERE id = ?
	`
	deleteExerciseLogSQL     = `DELETE FROM exercise_logs WHERE id = ?`
	selectExerciseLogByIDSQL = `SELECT ` + exerciseLogColumns + ` FROM exercise_logs WHERE id = ?`
	selectExerciseLogsSQL    = `SELECT ` + exerciseLogColumns + ` FROM exercise_logs`
)

func scanExerciseLog(s interface{ Scan(dest ...any) error }, l *models.ExerciseLog) error {
	if err := s.Scan(
		&l.ID,
		&l.UserID,
		&l.ExerciseID,
		&l.LogDate,
		&l.Sets,
		&l.Reps,
		&l.WeightKg,
		&l.DurationSec,
		&l.Memo,
		&l.Points,
		&l.CreatedAt,
	); err != nil {
		return err
	}
	l.CreatedAt = l.CreatedAt.UTC()
	return nil
}

// Create inserts a log. CreatedAt is set when zero.
func (r *ExerciseLogRepository) Create(ctx context.Context, l models.ExerciseLog) (int64, error) {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, insertExerciseLogSQL,
		l.UserID,
		l.ExerciseID,
		l.LogDate,
		l.Sets,
		l.Reps,
		l.WeightKg,
		l.DurationSec,
		l.Memo,
		l.Points,
		l.CreatedAt.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert exercise log for user %d: %w", l.UserID, classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for exercise log: %w", err)
	}
	return id, nil
}

func (r *ExerciseLogRepository) Update(ctx context.Context, l models.ExerciseLog) error {
	res, err := r.db.ExecContext(ctx, updateExerciseLogSQL,
		l.ExerciseID,
		l.LogDate,
		l.Sets,
		l.Reps,
		l.WeightKg,
		l.DurationSec,
		l.Memo,
		l.Points,
		l.ID,
	)
	if err != nil {
		return fmt.Errorf("update exercise log %d: %w", l.ID, classify(err))
	}
	return expectAffected(res)
}

func (r *ExerciseLogRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteExerciseLogSQL, id)
	if err != nil {
		return fmt.Errorf("delete exercise log %d: %w", id, err)
	}
	return expectAffected(res)
}

// GetByID returns (nil, nil) if the log does not exist.
func (r *ExerciseLogRepository) GetByID(ctx context.Context, id int64) (*models.ExerciseLog, error) {
	var l models.ExerciseLog
	if err := scanExerciseLog(r.db.QueryRowContext(ctx, selectExerciseLogByIDSQL, id), &l); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select exercise log %d: %w", id, err)
	}
	return &l, nil
}

// List returns logs matching q, ordered by date then id ASC.
func (r *ExerciseLogRepository) List(ctx context.Context, q LogQuery) ([]models.ExerciseLog, error) {
	var (
		conds []string
		args  []any
	)

	if q.UserID != 0 {
		conds = append(conds, "user_id = ?")
		args = append(args, q.UserID)
	}
	if q.From != "" {
		conds = append(conds, "log_date >= ?")
		args = append(args, q.From)
	}
	if q.To != "" {
		conds = append(conds, "log_date <= ?")
		args = append(args, q.To)
	}
	if q.ExerciseID != 0 {
		conds = append(conds, "exercise_id = ?")
		args = append(args, q.ExerciseID)
	}

	query := selectExerciseLogsSQL
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY log_date ASC, id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercise logs: %w", err)
	}
	defer rows.Close()

	out := make([]models.ExerciseLog, 0, 64)
	for rows.Next() {
		var l models.ExerciseLog
		if err := scanExerciseLog(rows, &l); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
