package models

import "time"

const (
	RoomWaiting = "WAITING"
	RoomActive  = "ACTIVE"
	RoomClosed  = "CLOSED"
)

type Room struct {
	ID           int64      `json:"id"`
	Code         string     `json:"code"`
	Name         string     `json:"name"`
	OwnerID      int64      `json:"owner_id"`
	Status       string     `json:"status"` // WAITING | ACTIVE | CLOSED
	MaxMembers   int        `json:"max_members"`
	Members      []int64    `json:"members"`
	CreatedAt    time.Time  `json:"created_at"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	ClosedAt     *time.Time `json:"closed_at,omitempty"`
	LastActiveAt time.Time  `json:"last_active_at"`
}

// IsMember reports whether userID has joined the room.
func (r Room) IsMember(userID int64) bool {
	for _, id := range r.Members {
		if id == userID {
			return true
		}
	}
	return false
}
