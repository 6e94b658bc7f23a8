package repository

import (
	"context"
	"database/sql"
	"time"

	"fitness_tracker/internal/models"

	"github.com/redis/go-redis/v9"
)

type Users interface {
	Create(ctx context.Context, u models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByNickname(ctx context.Context, nickname string) (*models.User, error)
	GetByProvider(ctx context.Context, provider, providerID string) (*models.User, error)
	UpdateNickname(ctx context.Context, id int64, nickname string) error
	SetRole(ctx context.Context, id int64, role string) error
	Delete(ctx context.Context, id int64) error
}

type UserInfos interface {
	Get(ctx context.Context, userID int64) (*models.UserInfo, error)
	Upsert(ctx context.Context, info models.UserInfo) error
}

type ExerciseCategories interface {
	Create(ctx context.Context, c models.ExerciseCategory) (int64, error)
	Update(ctx context.Context, c models.ExerciseCategory) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.ExerciseCategory, error)
	GetByName(ctx context.Context, name string) (*models.ExerciseCategory, error)
	List(ctx context.Context) ([]models.ExerciseCategory, error)
}

type Exercises interface {
	Create(ctx context.Context, e models.Exercise) (int64, error)
	Update(ctx context.Context, e models.Exercise) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Exercise, error)
	GetByName(ctx context.Context, name string) (*models.Exercise, error)
	// List returns all exercises, or only those of categoryID when it is non-zero.
	List(ctx context.Context, categoryID int64) ([]models.Exercise, error)
}

type ExerciseLogs interface {
	Create(ctx context.Context, l models.ExerciseLog) (int64, error)
	Update(ctx context.Context, l models.ExerciseLog) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.ExerciseLog, error)
	List(ctx context.Context, q LogQuery) ([]models.ExerciseLog, error)
}

type ItemCategories interface {
	Create(ctx context.Context, c models.ItemCategory) (int64, error)
	Update(ctx context.Context, c models.ItemCategory) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.ItemCategory, error)
	GetByName(ctx context.Context, name string) (*models.ItemCategory, error)
	List(ctx context.Context) ([]models.ItemCategory, error)
}

type Items interface {
	Create(ctx context.Context, it models.Item) (int64, error)
	Update(ctx context.Context, it models.Item) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	GetByName(ctx context.Context, name string) (*models.Item, error)
	List(ctx context.Context, categoryID int64) ([]models.Item, error)
}

type Characters interface {
	Create(ctx context.Context, c models.Character) (int64, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Character, error)
	GetByName(ctx context.Context, name string) (*models.Character, error)
	Rename(ctx context.Context, id int64, name string) error
	// AddExp returns ErrNoRows when the user has no character.
	AddExp(ctx context.Context, userID int64, delta int) error
	Equip(ctx context.Context, characterID, itemCategoryID, itemID int64) error
	Unequip(ctx context.Context, characterID, itemCategoryID int64) (bool, error)
	ListEquipped(ctx context.Context, characterID int64) ([]models.Item, error)
}

type Rooms interface {
	// Create inserts the room and its owner as the first member.
	Create(ctx context.Context, r models.Room) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Room, error)
	GetByCode(ctx context.Context, code string) (*models.Room, error)
	List(ctx context.Context, status string) ([]models.Room, error)
	AddMember(ctx context.Context, roomID, userID int64, at time.Time) error
	RemoveMember(ctx context.Context, roomID, userID int64, at time.Time) error
	SetStatus(ctx context.Context, roomID int64, status string, at time.Time) error
	// CloseIdle closes every open room whose last activity is before cutoff.
	CloseIdle(ctx context.Context, cutoff, at time.Time) (int64, error)
}

// Ranking is the leaderboard store.
type Ranking interface {
	IncrBy(ctx context.Context, userID int64, delta float64) (float64, error)
	Top(ctx context.Context, n int) ([]models.RankEntry, error)
	// Rank returns (nil, nil) when the user has no score.
	Rank(ctx context.Context, userID int64) (*models.RankEntry, error)
	Remove(ctx context.Context, userID int64) error
}

type Repository struct {
	Users              Users
	UserInfos          UserInfos
	ExerciseCategories ExerciseCategories
	Exercises          Exercises
	ExerciseLogs       ExerciseLogs
	ItemCategories     ItemCategories
	Items              Items
	Characters         Characters
	Rooms              Rooms
	Ranking            Ranking
}

func NewRepository(db *sql.DB, rdb redis.UniversalClient, rankingKey string) *Repository {
	return &Repository{
		Users:              NewUserRepository(db),
		UserInfos:          NewUserInfoRepository(db),
		ExerciseCategories: NewExerciseCategoryRepository(db),
		Exercises:          NewExerciseRepository(db),
		ExerciseLogs:       NewExerciseLogRepository(db),
		ItemCategories:     NewItemCategoryRepository(db),
		Items:              NewItemRepository(db),
		Characters:         NewCharacterRepository(db),
		Rooms:              NewRoomRepository(db),
		Ranking:            NewRankingRedis(rdb, rankingKey),
	}
}
