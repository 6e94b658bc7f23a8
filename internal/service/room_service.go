package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"fitness_tracker/internal/apperr"
	"fitness_tracker/internal/models"
	"fitness_tracker/internal/repository"

	"github.com/google/uuid"
)

const (
	minRoomMembers  = 2
	roomCodeLen     = 8
	roomCodeRetries = 3
)

type RoomService struct {
	rooms      repository.Rooms
	maxMembers int
	now        func() time.Time
}

func NewRoomService(rooms repository.Rooms, maxMembers int) *RoomService {
	if maxMembers < minRoomMembers {
		maxMembers = minRoomMembers
	}
	return &RoomService{rooms: rooms, maxMembers: maxMembers, now: func() time.Time { return time.Now().UTC() }}
}

// newRoomCode returns a short invite code taken from a random UUID.
func newRoomCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:roomCodeLen])
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s *RoomService) CreateRoom(ctx context.Context, ownerID int64, in RoomInput) (*models.Room, error) {
	name, err := catalogName("room", in.Name)
	if err != nil {
		return nil, err
	}
	limit := in.MaxMembers
	if limit == 0 {
		limit = s.maxMembers
	}
	if limit < minRoomMembers || limit > s.maxMembers {
		return nil, apperr.Validation("max_members must be between %d and %d", minRoomMembers, s.maxMembers)
	}

	room := models.Room{
		Name:       name,
		OwnerID:    ownerID,
		Status:     models.RoomWaiting,
		MaxMembers: limit,
		CreatedAt:  s.now(),
	}
	for attempt := 0; ; attempt++ {
		room.Code = newRoomCode()
		room.ID, err = s.rooms.Create(ctx, room)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrDuplicate) || attempt+1 >= roomCodeRetries {
			return nil, translate(err, "room")
		}
	}
	return s.GetRoom(ctx, room.ID)
}

func (s *RoomService) GetRoom(ctx context.Context, id int64) (*models.Room, error) {
	r, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, notFound("room", id)
	}
	return r, nil
}

func (s *RoomService) GetRoomByCode(ctx context.Context, code string) (*models.Room, error) {
	code = normalizeCode(code)
	if code == "" {
		return nil, apperr.Validation("room code is empty")
	}
	r, err := s.rooms.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apperr.NotFound("room %q not found", code)
	}
	return r, nil
}

// ListRooms lists rooms, optionally filtered by status.
func (s *RoomService) ListRooms(ctx context.Context, status string) ([]models.Room, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	switch status {
	case "", models.RoomWaiting, models.RoomActive, models.RoomClosed:
	default:
		return nil, apperr.Validation("unknown room status %q", status)
	}
	return s.rooms.List(ctx, status)
}

// JoinRoom adds the user to a WAITING room by invite code. Joining a room
// the user is already in returns it unchanged.
func (s *RoomService) JoinRoom(ctx context.Context, userID int64, code string) (*models.Room, error) {
	r, err := s.GetRoomByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	code = r.Code
	if r.Status == models.RoomClosed {
		return nil, apperr.Conflict("room %q is closed", code)
	}
	if r.IsMember(userID) {
		return r, nil
	}
	if r.Status != models.RoomWaiting {
		return nil, apperr.Conflict("room %q has already started", code)
	}
	if len(r.Members) >= r.MaxMembers {
		return nil, apperr.Conflict("room %q is full", code)
	}

	if err := s.rooms.AddMember(ctx, r.ID, userID, s.now()); err != nil && !errors.Is(err, repository.ErrDuplicate) {
		return nil, translate(err, "room")
	}
	return s.GetRoom(ctx, r.ID)
}

// LeaveRoom removes the user from the room. The owner leaving closes it.
func (s *RoomService) LeaveRoom(ctx context.Context, userID, id int64) (*models.Room, error) {
	r, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status == models.RoomClosed {
		return nil, apperr.Conflict("room %d is closed", id)
	}
	if !r.IsMember(userID) {
		return nil, apperr.NotFound("user is not a member of room %d", id)
	}

	now := s.now()
	if err := s.rooms.RemoveMember(ctx, id, userID, now); err != nil {
		return nil, translate(err, "room member")
	}
	if userID == r.OwnerID {
		if err := s.rooms.SetStatus(ctx, id, models.RoomClosed, now); err != nil {
			return nil, translate(err, "room")
		}
	}
	return s.GetRoom(ctx, id)
}

// StartRoom moves a WAITING room to ACTIVE. Owner only.
func (s *RoomService) StartRoom(ctx context.Context, userID, id int64) (*models.Room, error) {
	r, err := s.ownedRoom(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if r.Status != models.RoomWaiting {
		return nil, apperr.Conflict("room %d is %s, expected %s", id, r.Status, models.RoomWaiting)
	}
	if err := s.rooms.SetStatus(ctx, id, models.RoomActive, s.now()); err != nil {
		return nil, translate(err, "room")
	}
	return s.GetRoom(ctx, id)
}

// CloseRoom closes a room that is not closed yet. Owner only.
func (s *RoomService) CloseRoom(ctx context.Context, userID, id int64) (*models.Room, error) {
	r, err := s.ownedRoom(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if r.Status == models.RoomClosed {
		return nil, apperr.Conflict("room %d is already closed", id)
	}
	if err := s.rooms.SetStatus(ctx, id, models.RoomClosed, s.now()); err != nil {
		return nil, translate(err, "room")
	}
	return s.GetRoom(ctx, id)
}

func (s *RoomService) ownedRoom(ctx context.Context, userID, id int64) (*models.Room, error) {
	r, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.OwnerID != userID {
		return nil, apperr.Forbidden("only the owner can change room %d", id)
	}
	return r, nil
}
