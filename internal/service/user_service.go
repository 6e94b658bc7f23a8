package service

import (
	"context"
	"strings"
	"time"

	"fitness_tracker/internal/apperr"
	"fitness_tracker/internal/logger"
	"fitness_tracker/internal/models"
	"fitness_tracker/internal/repository"
)

const dateLayout = "2006-01-02"

var genders = map[string]bool{"": true, "MALE": true, "FEMALE": true, "OTHER": true}

type UserService struct {
	users   repository.Users
	infos   repository.UserInfos
	ranking Ranking
	log     *logger.Logger
}

func NewUserService(users repository.Users, infos repository.UserInfos, ranking Ranking, log *logger.Logger) *UserService {
	return &UserService{users: users, infos: infos, ranking: ranking, log: log}
}

func (s *UserService) GetMe(ctx context.Context, userID int64) (*models.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, notFound("user", userID)
	}
	return u, nil
}

func (s *UserService) UpdateNickname(ctx context.Context, userID int64, nickname string) (*models.User, error) {
	n, err := validateNickname(nickname)
	if err != nil {
		return nil, err
	}
	u, err := s.GetMe(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.Nickname == n {
		return u, nil
	}
	if other, err := s.users.GetByNickname(ctx, n); err != nil {
		return nil, err
	} else if other != nil {
		return nil, apperr.Conflict("nickname %q is already taken", n)
	}
	if err := s.users.UpdateNickname(ctx, userID, n); err != nil {
		return nil, translate(err, "user")
	}
	u.Nickname = n
	return u, nil
}

// DeleteMe removes the account (cascading to its logs, character and info)
// and drops the user from the leaderboard. The account row is gone once
// Delete succeeds, so a leaderboard failure is logged, not returned.
func (s *UserService) DeleteMe(ctx context.Context, userID int64) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return translate(err, "user")
	}
	if err := s.ranking.RemoveUser(ctx, userID); err != nil {
		s.log.Warnw("ranking cleanup failed", "user_id", userID, "err", err)
	}
	return nil
}

func (s *UserService) GetInfo(ctx context.Context, userID int64) (*models.UserInfo, error) {
	info, err := s.infos.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, apperr.NotFound("user info not found")
	}
	return info, nil
}

// SaveInfo creates or replaces the user's body info.
func (s *UserService) SaveInfo(ctx context.Context, userID int64, in UserInfoInput) (*models.UserInfo, error) {
	if in.HeightCm < 0 || in.WeightKg < 0 {
		return nil, apperr.Validation("height and weight must be >= 0")
	}
	birth := strings.TrimSpace(in.BirthDate)
	if birth != "" {
		d, err := time.Parse(dateLayout, birth)
		if err != nil {
			return nil, apperr.Validation("birth_date must be YYYY-MM-DD")
		}
		if d.After(time.Now().UTC()) {
			return nil, apperr.Validation("birth_date is in the future")
		}
	}
	gender := strings.ToUpper(strings.TrimSpace(in.Gender))
	if !genders[gender] {
		return nil, apperr.Validation("gender must be MALE, FEMALE or OTHER")
	}

	info := models.UserInfo{
		UserID:    userID,
		HeightCm:  in.HeightCm,
		WeightKg:  in.WeightKg,
		BirthDate: birth,
		Gender:    gender,
		Goal:      strings.TrimSpace(in.Goal),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.infos.Upsert(ctx, info); err != nil {
		return nil, translate(err, "user")
	}
	return &info, nil
}
