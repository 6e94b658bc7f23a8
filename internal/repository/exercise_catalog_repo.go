package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fitness_tracker/internal/models"
)

type ExerciseCategoryRepository struct {
	db *sql.DB
}

func NewExerciseCategoryRepository(db *sql.DB) *ExerciseCategoryRepository {
	return &ExerciseCategoryRepository{db: db}
}

var _ ExerciseCategories = (*ExerciseCategoryRepository)(nil)

const (
	insertExerciseCategorySQL     = `INSERT INTO exercise_categories (name, description) VALUES (?, ?)`
	updateExerciseCategorySQL     = `UPDATE exercise_categories SET name = ?, description = ? WHERE id = ?`
	deleteExerciseCategorySQL     = `DELETE FROM exercise_categories WHERE id = ?`
	selectExerciseCategoryByID    = `SELECT id, name, description FROM exercise_categories WHERE id = ?`
	selectExerciseCategoryByName  = `SELECT id, name, description FROM exercise_categories WHERE name = ?`
	selectExerciseCategoriesSQL   = `SELECT id, name, description FROM exercise_categories ORDER BY name ASC`
)

func (r *ExerciseCategoryRepository) Create(ctx context.Context, c models.ExerciseCategory) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertExerciseCategorySQL, c.Name, c.Description)
	if err != nil {
		return 0, fmt.Errorf("insert exercise category %q: %w", c.Name, classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for exercise category %q: %w", c.Name, err)
	}
	return id, nil
}

func (r *ExerciseCategoryRepository) Update(ctx context.Context, c models.ExerciseCategory) error {
	res, err := r.db.ExecContext(ctx, updateExerciseCategorySQL, c.Name, c.Description, c.ID)
	if err != nil {
		return fmt.Errorf("update exercise category %d: %w", c.ID, classify(err))
	}
	return expectAffected(res)
}

func (r *ExerciseCategoryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteExerciseCategorySQL, id)
	if err != nil {
		return fmt.Errorf("delete exercise category %d: %w", id, classify(err))
	}
	return expectAffected(res)
}

func (r *ExerciseCategoryRepository) get(ctx context.Context, query string, arg any) (*models.ExerciseCategory, error) {
	var c models.ExerciseCategory
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&c.ID, &c.Name, &c.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select exercise category %v: %w", arg, err)
	}
	return &c, nil
}

func (r *ExerciseCategoryRepository) GetByID(ctx context.Context, id int64) (*models.ExerciseCategory, error) {
	return r.get(ctx, selectExerciseCategoryByID, id)
}

func (r *ExerciseCategoryRepository) GetByName(ctx context.Context, name string) (*models.ExerciseCategory, error) {
	return r.get(ctx, selectExerciseCategoryByName, name)
}

func (r *ExerciseCategoryRepository) List(ctx context.Context) ([]models.ExerciseCategory, error) {
	rows, err := r.db.QueryContext(ctx, selectExerciseCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("list exercise categories: %w", err)
	}
	defer rows.Close()

	out := make([]models.ExerciseCategory, 0, 16)
	for rows.Next() {
		var c models.ExerciseCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type ExerciseRepository struct {
	db *sql.DB
}

func NewExerciseRepository(db *sql.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

var _ Exercises = (*ExerciseRepository)(nil)

const (
	exerciseColumns = `id, category_id, name, description, points`

	insertExerciseSQL     = `INSERT INTO exercises (category_id, name, description, points) VALUES (?, ?, ?, ?)`
	updateExerciseSQL     = `UPDATE exercises SET category_id = ?, name = ?, description = ?, points = ? WHERE id = ?`
	deleteExerciseSQL     = `DELETE FROM exercises WHERE id = ?`
	selectExerciseByID    = `SELECT ` + exerciseColumns + ` FROM exercises WHERE id = ?`
	selectExerciseByName  = `SELECT ` + exerciseColumns + ` FROM exercises WHERE name = ?`
	selectExercisesSQL    = `SELECT ` + exerciseColumns + ` FROM exercises`
)

func (r *ExerciseRepository) Create(ctx context.Context, e models.Exercise) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertExerciseSQL, e.CategoryID, e.Name, e.Description, e.Points)
	if err != nil {
		return 0, fmt.Errorf("insert exercise %q: %w", e.Name, classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for exercise %q: %w", e.Name, err)
	}
	return id, nil
}

func (r *ExerciseRepository) Update(ctx context.Context, e models.Exercise) error {
	res, err := r.db.ExecContext(ctx, updateExerciseSQL, e.CategoryID, e.Name, e.Description, e.Points, e.ID)
	if err != nil {
		return fmt.Errorf("update exercise %d: %w", e.ID, classify(err))
	}
	return expectAffected(res)
}

func (r *ExerciseRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteExerciseSQL, id)
	if err != nil {
		return fmt.Errorf("delete exercise %d: %w", id, classify(err))
	}
	return expectAffected(res)
}

func (r *ExerciseRepository) get(ctx context.Context, query string, arg any) (*models.Exercise, error) {
	var e models.Exercise
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&e.ID, &e.CategoryID, &e.Name, &e.Description, &e.Points); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select exercise %v: %w", arg, err)
	}
	return &e, nil
}

func (r *ExerciseRepository) GetByID(ctx context.Context, id int64) (*models.Exercise, error) {
	return r.get(ctx, selectExerciseByID, id)
}

func (r *ExerciseRepository) GetByName(ctx context.Context, name string) (*models.Exercise, error) {
	return r.get(ctx, selectExerciseByName, name)
}

func (r *ExerciseRepository) List(ctx context.Context, categoryID int64) ([]models.Exercise, error) {
	q := selectExercisesSQL
	var args []any
	if categoryID != 0 {
		q += " WHERE category_id = ?"
		args = append(args, categoryID)
	}
	q += " ORDER BY name ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	out := make([]models.Exercise, 0, 32)
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.CategoryID, &e.Name, &e.Description, &e.Points); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
