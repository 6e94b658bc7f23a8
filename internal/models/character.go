package models

import "time"

// ExpPerLevel is the experience needed to advance one level.
const ExpPerLevel = 100

type Character struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	Exp       int       `json:"exp"`
	Equipped  []Item    `json:"equipped"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

