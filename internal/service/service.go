package service

import (
	"context"
	"time"

	"fitness_tracker/internal/config"
	"fitness_tracker/internal/logger"
	"fitness_tracker/internal/models"
	"fitness_tracker/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, in SignUpInput) (int64, error)
	GenerateToken(ctx context.Context, email, password string) (string, error)
	IssueToken(userID int64, role string) (string, error)
	ParseToken(accessToken string) (Identity, error)
}

// OAuth drives the authorization-code login against configured providers.
type OAuth interface {
	Providers() []string
	LoginURL(provider, state string) (string, error)
	Callback(ctx context.Context, provider, code string) (string, error)
}

type Users interface {
	GetMe(ctx context.Context, userID int64) (*models.User, error)
	UpdateNickname(ctx context.Context, userID int64, nickname string) (*models.User, error)
	DeleteMe(ctx context.Context, userID int64) error
	GetInfo(ctx context.Context, userID int64) (*models.UserInfo, error)
	SaveInfo(ctx context.Context, userID int64, in UserInfoInput) (*models.UserInfo, error)
}

// ExerciseCatalog manages exercise categories and exercises. Mutations need the ADMIN role.
type ExerciseCatalog interface {
	CreateCategory(ctx context.Context, actor Identity, in CategoryInput) (*models.ExerciseCategory, error)
	UpdateCategory(ctx context.Context, actor Identity, id int64, in CategoryInput) (*models.ExerciseCategory, error)
	DeleteCategory(ctx context.Context, actor Identity, id int64) error
	GetCategory(ctx context.Context, id int64) (*models.ExerciseCategory, error)
	ListCategories(ctx context.Context) ([]models.ExerciseCategory, error)

	CreateExercise(ctx context.Context, actor Identity, in ExerciseInput) (*models.Exercise, error)
	UpdateExercise(ctx context.Context, actor Identity, id int64, in ExerciseInput) (*models.Exercise, error)
	DeleteExercise(ctx context.Context, actor Identity, id int64) error
	GetExercise(ctx context.Context, id int64) (*models.Exercise, error)
	ListExercises(ctx context.Context, categoryID int64) ([]models.Exercise, error)
}

type ExerciseLogs interface {
	Create(ctx context.Context, userID int64, in LogInput) (*models.ExerciseLog, error)
	Update(ctx context.Context, userID, id int64, in LogInput) (*models.ExerciseLog, error)
	Delete(ctx context.Context, userID, id int64) error
	List(ctx context.Context, userID int64, f LogFilter) ([]models.ExerciseLog, error)
	Daily(ctx context.Context, userID int64, date string) (*models.DailySummary, error)
	Import(ctx context.Context, userID int64, text string) (*ImportResult, error)
}

// ItemCatalog manages item categories and items. Mutations need the ADMIN role.
type ItemCatalog interface {
	CreateItemCategory(ctx context.Context, actor Identity, in ItemCategoryInput) (*models.ItemCategory, error)
	UpdateItemCategory(ctx context.Context, actor Identity, id int64, in ItemCategoryInput) (*models.ItemCategory, error)
	DeleteItemCategory(ctx context.Context, actor Identity, id int64) error
	GetItemCategory(ctx context.Context, id int64) (*models.ItemCategory, error)
	ListItemCategories(ctx context.Context) ([]models.ItemCategory, error)

	CreateItem(ctx context.Context, actor Identity, in ItemInput) (*models.Item, error)
	UpdateItem(ctx context.Context, actor Identity, id int64, in ItemInput) (*models.Item, error)
	DeleteItem(ctx context.Context, actor Identity, id int64) error
	GetItem(ctx context.Context, id int64) (*models.Item, error)
	ListItems(ctx context.Context, categoryID int64) ([]models.Item, error)
}

type Characters interface {
	CreateCharacter(ctx context.Context, userID int64, name string) (*models.Character, error)
	GetCharacter(ctx context.Context, userID int64) (*models.Character, error)
	RenameCharacter(ctx context.Context, userID int64, name string) (*models.Character, error)
	Equip(ctx context.Context, userID, itemID int64) (*models.Character, error)
	Unequip(ctx context.Context, userID, itemCategoryID int64) (*models.Character, error)
	// AddExp is a no-op for users without a character.
	AddExp(ctx context.Context, userID int64, delta int) error
}

type Rooms interface {
	CreateRoom(ctx context.Context, ownerID int64, in RoomInput) (*models.Room, error)
	GetRoom(ctx context.Context, id int64) (*models.Room, error)
	GetRoomByCode(ctx context.Context, code string) (*models.Room, error)
	ListRooms(ctx context.Context, status string) ([]models.Room, error)
	JoinRoom(ctx context.Context, userID int64, code string) (*models.Room, error)
	LeaveRoom(ctx context.Context, userID, id int64) (*models.Room, error)
	StartRoom(ctx context.Context, userID, id int64) (*models.Room, error)
	CloseRoom(ctx context.Context, userID, id int64) (*models.Room, error)
}

// RoomReaper closes rooms that have been idle too long.
// Stop via context cancellation in main() for graceful shutdown.
type RoomReaper interface {
	Run(ctx context.Context, tick time.Duration)
	ReapOnce(ctx context.Context) (int64, error)
}

type Ranking interface {
	AddScore(ctx context.Context, userID int64, delta int) (float64, error)
	Top(ctx context.Context, limit int) ([]models.RankEntry, error)
	RankOf(ctx context.Context, userID int64) (*models.RankEntry, error)
	RemoveUser(ctx context.Context, userID int64) error
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	OAuth
	Users
	ExerciseCatalog
	ExerciseLogs
	ItemCatalog
	Characters
	Rooms
	RoomReaper
	Ranking
}

func NewService(repos *repository.Repository, cfg *config.Config, log *logger.Logger) *Service {
	auth := NewAuthService(repos.Users, cfg.Auth.SigningKey, cfg.Auth.TokenTTL, cfg.Auth.AdminEmails)
	ranking := NewRankingService(repos.Ranking, cfg.Ranking.DefaultLimit)
	characters := NewCharacterService(repos.Characters, repos.Items)
	return &Service{
		Authorization:   auth,
		OAuth:           NewOAuthService(cfg.OAuth, repos.Users, auth),
		Users:           NewUserService(repos.Users, repos.UserInfos, ranking, log.Named("users")),
		ExerciseCatalog: NewExerciseCatalogService(repos.ExerciseCategories, repos.Exercises),
		ExerciseLogs:    NewExerciseLogService(repos.ExerciseLogs, repos.Exercises, ranking, characters, log.Named("logs")),
		ItemCatalog:     NewItemCatalogService(repos.ItemCategories, repos.Items),
		Characters:      characters,
		Rooms:           NewRoomService(repos.Rooms, cfg.Rooms.MaxMembers),
		RoomReaper:      NewRoomReaperService(repos.Rooms, cfg.Rooms.IdleTTL, log.Named("reaper")),
		Ranking:         ranking,
	}
}
