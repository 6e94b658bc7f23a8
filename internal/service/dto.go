package service

import "time"

// Identity is the authenticated caller carried by a token.
type Identity struct {
	UserID int64
	Role   string
}

type SignUpInput struct {
	Email    string
	Nickname string
	Password string
}

type UserInfoInput struct {
	HeightCm  float64
	WeightKg  float64
	BirthDate string // YYYY-MM-DD, optional
	Gender    string
	Goal      string
}

type CategoryInput struct {
	Name        string
	Description string
}

type ExerciseInput struct {
	CategoryID  int64
	Name        string
	Description string
	Points      int
}

type ItemCategoryInput struct {
	Name string
}

type ItemInput struct {
	CategoryID  int64
	Name        string
	Description string
	Price       int
	ImageURL    string
}

type LogInput struct {
	ExerciseID  int64
	Date        string // YYYY-MM-DD; empty means today (UTC)
	Sets        int
	Reps        int
	WeightKg    float64
	DurationSec int
	Memo        string
}

// LogFilter supports history filtering by date range and exercise.
type LogFilter struct {
	From       time.Time // inclusive; zero means no lower bound
	To         time.Time // inclusive; zero means no upper bound
	ExerciseID int64
}

type RoomInput struct {
	Name       string
	MaxMembers int // zero means the configured maximum
}
