package service

import (
	"context"

	"fitness_tracker/internal/apperr"
	"fitness_tracker/internal/models"
	"fitness_tracker/internal/repository"
)

// MaxRankingLimit caps how many leaderboard entries one request may read.
const MaxRankingLimit = 100

type RankingService struct {
	store        repository.Ranking
	defaultLimit int
}

func NewRankingService(store repository.Ranking, defaultLimit int) *RankingService {
	if defaultLimit <= 0 || defaultLimit > MaxRankingLimit {
		defaultLimit = 10
	}
	return &RankingService{store: store, defaultLimit: defaultLimit}
}

// AddScore increments the user's score and returns the new total. A negative
// delta takes points back.
func (s *RankingService) AddScore(ctx context.Context, userID int64, delta int) (float64, error) {
	if userID <= 0 {
		return 0, apperr.Validation("invalid user id")
	}
	if delta == 0 {
		e, err := s.store.Rank(ctx, userID)
		if err != nil || e == nil {
			return 0, err
		}
		return e.Score, nil
	}
	return s.store.IncrBy(ctx, userID, float64(delta))
}

// Top returns the highest scores. limit 0 means the configured default.
func (s *RankingService) Top(ctx context.Context, limit int) ([]models.RankEntry, error) {
	if limit == 0 {
		limit = s.defaultLimit
	}
	if limit < 1 || limit > MaxRankingLimit {
		return nil, apperr.Validation("limit must be between 1 and %d", MaxRankingLimit)
	}
	return s.store.Top(ctx, limit)
}

func (s *RankingService) RankOf(ctx context.Context, userID int64) (*models.RankEntry, error) {
	e, err := s.store.Rank(ctx, userID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound("user %d has no ranking score", userID)
	}
	return e, nil
}

func (s *RankingService) RemoveUser(ctx context.Context, userID int64) error {
	return s.store.Remove(ctx, userID)
}
