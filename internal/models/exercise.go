package models

import "time"

type ExerciseCategory struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Exercise struct {
	ID          int64  `json:"id"`
	CategoryID  int64  `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Points      int    `json:"points"` // leaderboard points per set
}

// ExerciseLog is one entry of a user's daily exercise record.
type ExerciseLog struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	ExerciseID  int64     `json:"exercise_id"`
	LogDate     string    `json:"log_date"` // YYYY-MM-DD
	Sets        int       `json:"sets"`
	Reps        int       `json:"reps"`
	WeightKg    float64   `json:"weight_kg,omitempty"`
	DurationSec int       `json:"duration_sec,omitempty"`
	Memo        string    `json:"memo,omitempty"`
	Points      int       `json:"points"` // score awarded when the log was written
	CreatedAt   time.Time `json:"created_at"`
}

// DailySummary aggregates a user's logs for a single day.
type DailySummary struct {
	Date        string        `json:"date"`
	Count       int           `json:"count"`
	TotalSets   int           `json:"total_sets"`
	TotalReps   int           `json:"total_reps"`
	DurationSec int           `json:"duration_sec"`
	Points      int           `json:"points"`
	Logs        []ExerciseLog `json:"logs"`
}
