package service

import (
	"context"
	"strings"

	"fitness_tracker/internal/apperr"
	"fitness_tracker/internal/models"
	"fitness_tracker/internal/repository"
)

const (
	maxCatalogNameLen = 50
	maxExercisePoints = 1000
)

// ExerciseCatalogService manages exercise categories and exercises.
type ExerciseCatalogService struct {
	categories repository.ExerciseCategories
	exercises  repository.Exercises
}

func NewExerciseCatalogService(categories repository.ExerciseCategories, exercises repository.Exercises) *ExerciseCatalogService {
	return &ExerciseCatalogService{categories: categories, exercises: exercises}
}

// catalogName trims and validates a catalog entry name.
func catalogName(kind, name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", apperr.Validation("%s name is empty", kind)
	}
	if len([]rune(n)) > maxCatalogNameLen {
		return "", apperr.Validation("%s name must be at most %d characters", kind, maxCatalogNameLen)
	}
	return n, nil
}

// nameTaken reports a conflict when another row (id != self) already uses the name.
func nameTaken(kind, name string, foundID, selfID int64) error {
	if foundID != selfID {
		return apperr.Conflict("%s %q already exists", kind, name)
	}
	return nil
}

func (s *ExerciseCatalogService) CreateCategory(ctx context.Context, actor Identity, in CategoryInput) (*models.ExerciseCategory, error) {
	return s.saveCategory(ctx, actor, 0, in)
}

func (s *ExerciseCatalogService) UpdateCategory(ctx context.Context, actor Identity, id int64, in CategoryInput) (*models.ExerciseCategory, error) {
	return s.saveCategory(ctx, actor, id, in)
}

// saveCategory creates when id is zero and updates otherwise.
func (s *ExerciseCatalogService) saveCategory(ctx context.Context, actor Identity, id int64, in CategoryInput) (*models.ExerciseCategory, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	name, err := catalogName("category", in.Name)
	if err != nil {
		return nil, err
	}
	if id != 0 {
		if _, err := s.GetCategory(ctx, id); err != nil {
			return nil, err
		}
	}
	existing, err := s.categories.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := nameTaken("category", name, existing.ID, id); err != nil {
			return nil, err
		}
	}

	c := models.ExerciseCategory{ID: id, Name: name, Description: strings.TrimSpace(in.Description)}
	if id == 0 {
		c.ID, err = s.categories.Create(ctx, c)
	} else {
		err = s.categories.Update(ctx, c)
	}
	if err != nil {
		return nil, translate(err, "category")
	}
	return &c, nil
}

func (s *ExerciseCatalogService) DeleteCategory(ctx context.Context, actor Identity, id int64) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return translate(s.categories.Delete(ctx, id), "category")
}

func (s *ExerciseCatalogService) GetCategory(ctx context.Context, id int64) (*models.ExerciseCategory, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound("category", id)
	}
	return c, nil
}

func (s *ExerciseCatalogService) ListCategories(ctx context.Context) ([]models.ExerciseCategory, error) {
	return s.categories.List(ctx)
}

func (s *ExerciseCatalogService) CreateExercise(ctx context.Context, actor Identity, in ExerciseInput) (*models.Exercise, error) {
	return s.saveExercise(ctx, actor, 0, in)
}

func (s *ExerciseCatalogService) UpdateExercise(ctx context.Context, actor Identity, id int64, in ExerciseInput) (*models.Exercise, error) {
	return s.saveExercise(ctx, actor, id, in)
}

func (s *ExerciseCatalogService) saveExercise(ctx context.Context, actor Identity, id int64, in ExerciseInput) (*models.Exercise, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	name, err := catalogName("exercise", in.Name)
	if err != nil {
		return nil, err
	}
	if in.Points < 0 || in.Points > maxExercisePoints {
		return nil, apperr.Validation("points must be between 0 and %d", maxExercisePoints)
	}
	if id != 0 {
		if _, err := s.GetExercise(ctx, id); err != nil {
			return nil, err
		}
	}
	if _, err := s.GetCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	existing, err := s.exercises.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := nameTaken("exercise", name, existing.ID, id); err != nil {
			return nil, err
		}
	}

	e := models.Exercise{
		ID:          id,
		CategoryID:  in.CategoryID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Points:      in.Points,
	}
	if id == 0 {
		e.ID, err = s.exercises.Create(ctx, e)
	} else {
		err = s.exercises.Update(ctx, e)
	}
	if err != nil {
		return nil, translate(err, "exercise")
	}
	return &e, nil
}

func (s *ExerciseCatalogService) DeleteExercise(ctx context.Context, actor Identity, id int64) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return translate(s.exercises.Delete(ctx, id), "exercise")
}

func (s *ExerciseCatalogService) GetExercise(ctx context.Context, id int64) (*models.Exercise, error) {
	e, err := s.exercises.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, notFound("exercise", id)
	}
	return e, nil
}

func (s *ExerciseCatalogService) ListExercises(ctx context.Context, categoryID int64) ([]models.Exercise, error) {
	return s.exercises.List(ctx, categoryID)
}
