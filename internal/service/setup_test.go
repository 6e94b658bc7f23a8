package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"fitness_tracker/internal/config"
	"fitness_tracker/internal/logger"
	"fitness_tracker/internal/models"
	"fitness_tracker/internal/repository"
	"fitness_tracker/internal/repository/db"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	admin  = Identity{UserID: 1, Role: models.RoleAdmin}
	member = Identity{UserID: 2, Role: models.RoleUser}
)

// testStack is a Service wired to a temp SQLite file and an in-memory Redis.
type testStack struct {
	svc   *Service
	repos *repository.Repository
	redis *miniredis.Miniredis
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()
	conn, err := db.InitDB(filepath.Join(t.TempDir(), "svc.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &config.Config{
		Auth:    config.AuthConfig{SigningKey: testSigningKey, TokenTTL: time.Hour, AdminEmails: []string{testAdminEmail}},
		Ranking: config.RankingConfig{Key: "test:ranking", DefaultLimit: 10},
		Rooms:   config.RoomsConfig{IdleTTL: time.Hour, ReapInterval: time.Minute, MaxMembers: 4},
	}
	repos := repository.NewRepository(conn, rdb, cfg.Ranking.Key)
	return &testStack{
		svc:   NewService(repos, cfg, logger.Nop()),
		repos: repos,
		redis: mr,
	}
}

// seedUsers creates the admin (id 1) and a regular user (id 2).
func (s *testStack) seedUsers(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	for _, in := range []SignUpInput{
		{Email: "admin@fit.io", Nickname: "admin", Password: "adminpass"},
		{Email: "user@fit.io", Nickname: "user", Password: "userpass1"},
	} {
		if _, err := s.svc.SignUp(ctx, in); err != nil {
			t.Fatalf("SignUp %s: %v", in.Email, err)
		}
	}
}

// seedExercise creates a category and one exercise worth points per set.
func (s *testStack) seedExercise(t *testing.T, name string, points int) *models.Exercise {
	t.Helper()
	ctx := context.Background()
	cat, err := s.svc.CreateCategory(ctx, admin, CategoryInput{Name: name + " category"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	ex, err := s.svc.CreateExercise(ctx, admin, ExerciseInput{CategoryID: cat.ID, Name: name, Points: points})
	if err != nil {
		t.Fatalf("CreateExercise: %v", err)
	}
	return ex
}

func nopLogger() *logger.Logger {
	return logger.Nop()
}
