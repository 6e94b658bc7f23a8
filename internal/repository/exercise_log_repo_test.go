package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"fitness_tracker/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var exerciseLogCols = []string{
	"id", "user_id", "exercise_id", "log_date", "sets", "reps", "weight_kg", "duration_sec", "memo", "points", "created_at",
}

func TestExerciseLogRepository_Create_SetsCreatedAt(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewExerciseLogRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(insertExerciseLogSQL)).
		WithArgs(int64(1), int64(2), "2025-08-01", 3, 10, 60.0, 0, "", 30, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(11, 1))

	id, err := repo.Create(context.Background(), models.ExerciseLog{
		UserID: 1, ExerciseID: 2, LogDate: "2025-08-01", Sets: 3, Reps: 10, WeightKg: 60, Points: 30,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 11 {
		t.Fatalf("id = %d; want 11", id)
	}
}

func TestExerciseLogRepository_List_BuildsFilters(t *testing.T) {
	tests := []struct {
		name      string
		q         LogQuery
		wantWhere string
		args      []any
	}{
		{
			name:      "no filters",
			q:         LogQuery{},
			wantWhere: "",
		},
		{
			name:      "user and range",
			q:         LogQuery{UserID: 5, From: "2025-08-01", To: "2025-08-31"},
			wantWhere: " WHERE user_id = ? AND log_date >= ? AND log_date <= ?",
			args:      []any{int64(5), "2025-08-01", "2025-08-31"},
		},
		{
			name:      "exercise only",
			q:         LogQuery{ExerciseID: 9},
			wantWhere: " WHERE exercise_id = ?",
			args:      []any{int64(9)},
		},
	}

	created := time.Date(2025, 8, 1, 7, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewExerciseLogRepository(db)

			query := selectExerciseLogsSQL + tt.wantWhere + " ORDER BY log_date ASC, id ASC"
			exp := mock.ExpectQuery("^" + regexp.QuoteMeta(query) + "$")
			if len(tt.args) > 0 {
				drv := make([]driver.Value, 0, len(tt.args))
				for _, a := range tt.args {
					drv = append(drv, a)
				}
				exp = exp.WithArgs(drv...)
			}
			exp.WillReturnRows(sqlmock.NewRows(exerciseLogCols).
				AddRow(1, 5, 9, "2025-08-01", 3, 10, 60.0, 0, "", 30, created))

			out, err := repo.List(context.Background(), tt.q)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(out) != 1 || out[0].LogDate != "2025-08-01" || out[0].Points != 30 {
				t.Fatalf("unexpected logs: %+v", out)
			}
		})
	}
}

func TestExerciseLogRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewExerciseLogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(selectExerciseLogByIDSQL)).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(exerciseLogCols))
	mock.ExpectQuery(regexp.QuoteMeta(selectExerciseLogByIDSQL)).
		WithArgs(int64(500)).
		WillReturnError(errors.New("boom"))

	l, err := repo.GetByID(context.Background(), 404)
	if err != nil || l != nil {
		t.Fatalf("want (nil, nil) for missing log, got (%+v, %v)", l, err)
	}
	_, err = repo.GetByID(context.Background(), 500)
	if err == nil || !strings.Contains(err.Error(), "select exercise log 500") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExerciseLogRepository_DeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(deleteExerciseLogSQL)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := NewExerciseLogRepository(db).Delete(context.Background(), 1); !errors.Is(err, ErrNoRows) {
		t.Fatalf("expected ErrNoRows, got %v", err)
	}
}
