package models

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"

	ProviderLocal = "local"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Nickname     string    `json:"nickname"`
	Provider     string    `json:"provider"`
	ProviderID   string    `json:"-"`
	PasswordHash string    `json:"-"` // don’t expose hash
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserInfo holds the body measurements and goal a user fills in after sign-up.
type UserInfo struct {
	UserID    int64     `json:"user_id"`
	HeightCm  float64   `json:"height_cm"`
	WeightKg  float64   `json:"weight_kg"`
	BirthDate string    `json:"birth_date,omitempty"` // YYYY-MM-DD
	Gender    string    `json:"gender,omitempty"`
	Goal      string    `json:"goal,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
