package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"fitness_tracker/internal/models"

	"github.com/redis/go-redis/v9"
)

// RankingRedis keeps scores in one sorted set; members are decimal user IDs.
type RankingRedis struct {
	rdb redis.UniversalClient
	key string
}

func NewRankingRedis(rdb redis.UniversalClient, key string) *RankingRedis {
	return &RankingRedis{rdb: rdb, key: key}
}

var _ Ranking = (*RankingRedis)(nil)

func member(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// IncrBy adds delta (may be negative) to the user's score and returns the new score.
func (r *RankingRedis) IncrBy(ctx context.Context, userID int64, delta float64) (float64, error) {
	score, err := r.rdb.ZIncrBy(ctx, r.key, delta, member(userID)).Result()
	if err != nil {
		return 0, fmt.Errorf("zincrby %s user %d: %w", r.key, userID, err)
	}
	return score, nil
}

// Top returns the n highest scores, best first.
func (r *RankingRedis) Top(ctx context.Context, n int) ([]models.RankEntry, error) {
	if n <= 0 {
		return []models.RankEntry{}, nil
	}
	zs, err := r.rdb.ZRevRangeWithScores(ctx, r.key, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("zrevrange %s: %w", r.key, err)
	}
	out := make([]models.RankEntry, 0, len(zs))
	for i, z := range zs {
		m, ok := z.Member.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected member type %T in %s", z.Member, r.key)
		}
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse member %q in %s: %w", m, r.key, err)
		}
		out = append(out, models.RankEntry{Rank: int64(i + 1), UserID: id, Score: z.Score})
	}
	return out, nil
}

func (r *RankingRedis) Rank(ctx context.Context, userID int64) (*models.RankEntry, error) {
	m := member(userID)
	rank, err := r.rdb.ZRevRank(ctx, r.key, m).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("zrevrank %s user %d: %w", r.key, userID, err)
	}
	score, err := r.rdb.ZScore(ctx, r.key, m).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("zscore %s user %d: %w", r.key, userID, err)
	}
	return &models.RankEntry{Rank: rank + 1, UserID: userID, Score: score}, nil
}

func (r *RankingRedis) Remove(ctx context.Context, userID int64) error {
	if err := r.rdb.ZRem(ctx, r.key, member(userID)).Err(); err != nil {
		return fmt.Errorf("zrem %s user %d: %w", r.key, userID, err)
	}
	return nil
}
