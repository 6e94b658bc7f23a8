package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fitness_tracker/internal/models"
)

type RoomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

var _ Rooms = (*RoomRepository)(nil)

const (
	roomColumns = `id, code, name, owner_id, status, max_members, created_at, started_at, closed_at, last_active_at`

	insertRoomSQL = `
		INSERT INTO rooms (code, name, owner_id, status, max_members, created_at, last_active_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	insertRoomMemberSQL  = `INSERT INTO room_members (room_id, user_id, joined_at) VALUES (?, ?, ?)`
	deleteRoomMemberSQL  = `DELETE FROM room_members WHERE room_id = ? AND user_id = ?`
	touchRoomSQL         = `UPDATE rooms SET last_active_at = ? WHERE id = ?`
	selectRoomByIDSQL    = `SELECT ` + roomColumns + ` FROM rooms WHERE id = ?`
	selectRoomByCodeSQL  = `SELECT ` + roomColumns + ` FROM rooms WHERE code = ?`
	selectRoomsSQL       = `SELECT ` + roomColumns + ` FROM rooms`
	selectRoomMembersSQL = `SELECT user_id FROM room_members WHERE room_id = ? ORDER BY joined_at ASC, user_id ASC`

	setRoomWaitingSQL = `UPDATE rooms SET status = ?, last_active_at = ? WHERE id = ?`
	setRoomActiveSQL  = `UPDATE rooms SET status = ?, started_at = ?, last_active_at = ? WHERE id = ?`
	setRoomClosedSQL  = `UPDATE rooms SET status = ?, closed_at = ?, last_active_at = ? WHERE id = ?`

	closeIdleRoomsSQL = `
		UPDATE rooms SET status = ?, closed_at = ?
		WHERE status IN (?, ?) AND last_active_at < ?
	`
)

// Create inserts the room and the owner membership in one transaction.
func (r *RoomRepository) Create(ctx context.Context, room models.Room) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin create room: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	created := room.CreatedAt.UTC()
	res, err := tx.ExecContext(ctx, insertRoomSQL,
		room.Code, room.Name, room.OwnerID, room.Status, room.MaxMembers, created, created)
	if err != nil {
		return 0, fmt.Errorf("insert room %q: %w", room.Name, classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for room %q: %w", room.Name, err)
	}
	if _, err := tx.ExecContext(ctx, insertRoomMemberSQL, id, room.OwnerID, created); err != nil {
		return 0, fmt.Errorf("insert owner of room %d: %w", id, classify(err))
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit create room: %w", err)
	}
	return id, nil
}

func scanRoom(s interface{ Scan(dest ...any) error }, room *models.Room) error {
	var started, closed sql.NullTime
	if err := s.Scan(
		&room.ID,
		&room.Code,
		&room.Name,
		&room.OwnerID,
		&room.Status,
		&room.MaxMembers,
		&room.CreatedAt,
		&started,
		&closed,
		&room.LastActiveAt,
	); err != nil {
		return err
	}
	room.CreatedAt = room.CreatedAt.UTC()
	room.LastActiveAt = room.LastActiveAt.UTC()
	if started.Valid {
		t := started.Time.UTC()
		room.StartedAt = &t
	}
	if closed.Valid {
		t := closed.Time.UTC()
		room.ClosedAt = &t
	}
	return nil
}

func (r *RoomRepository) members(ctx context.Context, roomID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, selectRoomMembersSQL, roomID)
	if err != nil {
		return nil, fmt.Errorf("list members of room %d: %w", roomID, err)
	}
	defer rows.Close()

	out := make([]int64, 0, 8)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *RoomRepository) get(ctx context.Context, query string, arg any) (*models.Room, error) {
	var room models.Room
	if err := scanRoom(r.db.QueryRowContext(ctx, query, arg), &room); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select room %v: %w", arg, err)
	}
	members, err := r.members(ctx, room.ID)
	if err != nil {
		return nil, err
	}
	room.Members = members
	return &room, nil
}

// GetByID returns the room with its members; (nil, nil) if not found.
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	return r.get(ctx, selectRoomByIDSQL, id)
}

func (r *RoomRepository) GetByCode(ctx context.Context, code string) (*models.Room, error) {
	return r.get(ctx, selectRoomByCodeSQL, code)
}

// List returns rooms newest first, optionally restricted to one status.
func (r *RoomRepository) List(ctx context.Context, status string) ([]models.Room, error) {
	q := selectRoomsSQL
	var args []any
	if status != "" {
		q += " WHERE status = ?"
		args = append(args, status)
	}
	q += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	var out []models.Room
	for rows.Next() {
		var room models.Room
		if err := scanRoom(rows, &room); err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, room)
	}
	// Close before loading members: the pool holds a single SQLite connection.
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		members, err := r.members(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Members = members
	}
	return out, nil
}

func (r *RoomRepository) AddMember(ctx context.Context, roomID, userID int64, at time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin join room: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, insertRoomMemberSQL, roomID, userID, at.UTC()); err != nil {
		return fmt.Errorf("add user %d to room %d: %w", userID, roomID, classify(err))
	}
	if _, err := tx.ExecContext(ctx, touchRoomSQL, at.UTC(), roomID); err != nil {
		return fmt.Errorf("touch room %d: %w", roomID, err)
	}
	return tx.Commit()
}

func (r *RoomRepository) RemoveMember(ctx context.Context, roomID, userID int64, at time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin leave room: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, deleteRoomMemberSQL, roomID, userID)
	if err != nil {
		return fmt.Errorf("remove user %d from room %d: %w", userID, roomID, err)
	}
	if err := expectAffected(res); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, touchRoomSQL, at.UTC(), roomID); err != nil {
		return fmt.Errorf("touch room %d: %w", roomID, err)
	}
	return tx.Commit()
}

// SetStatus moves a room to status, stamping started_at or closed_at accordingly.
func (r *RoomRepository) SetStatus(ctx context.Context, roomID int64, status string, at time.Time) error {
	ts := at.UTC()
	var (
		res sql.Result
		err error
	)
	switch status {
	case models.RoomActive:
		res, err = r.db.ExecContext(ctx, setRoomActiveSQL, status, ts, ts, roomID)
	case models.RoomClosed:
		res, err = r.db.ExecContext(ctx, setRoomClosedSQL, status, ts, ts, roomID)
	default:
		res, err = r.db.ExecContext(ctx, setRoomWaitingSQL, status, ts, roomID)
	}
	if err != nil {
		return fmt.Errorf("set room %d status %s: %w", roomID, status, err)
	}
	return expectAffected(res)
}

func (r *RoomRepository) CloseIdle(ctx context.Context, cutoff, at time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, closeIdleRoomsSQL,
		models.RoomClosed, at.UTC(), models.RoomWaiting, models.RoomActive, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("close idle rooms: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
