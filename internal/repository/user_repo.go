package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fitness_tracker/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ Users = (*UserRepository)(nil)

const (
	userColumns = `id, email, nickname, provider, provider_id, password_hash, role, created_at`

	insertUserSQL = `INSERT INTO users (email, nickname, provider, provider_id, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	selectUserByIDSQL       = `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	selectUserByEmailSQL    = `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	selectUserByNicknameSQL = `SELECT ` + userColumns + ` FROM users WHERE nickname = ?`
	selectUserByProviderSQL = `SELECT ` + userColumns + ` FROM users WHERE provider = ? AND provider_id = ?`
	updateUserNicknameSQL   = `UPDATE users SET nickname = ? WHERE id = ?`
	updateUserRoleSQL       = `UPDATE users SET role = ? WHERE id = ?`
	deleteUserSQL           = `DELETE FROM users WHERE id = ?`
)

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(ctx context.Context, u models.User) (int64, error) {
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, insertUserSQL,
		u.Email, u.Nickname, u.Provider, u.ProviderID, u.PasswordHash, u.Role, createdAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", u.Email, classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", u.Email, err)
	}
	return id, nil
}

func (r *UserRepository) scanOne(row *sql.Row, what string) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.Nickname, &u.Provider, &u.ProviderID, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %s: %w", what, err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}

// GetByID fetches a user. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectUserByIDSQL, id), fmt.Sprintf("id=%d", id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectUserByEmailSQL, email), fmt.Sprintf("email=%q", email))
}

func (r *UserRepository) GetByNickname(ctx context.Context, nickname string) (*models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectUserByNicknameSQL, nickname), fmt.Sprintf("nickname=%q", nickname))
}

func (r *UserRepository) GetByProvider(ctx context.Context, provider, providerID string) (*models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectUserByProviderSQL, provider, providerID),
		fmt.Sprintf("provider=%s/%s", provider, providerID))
}

func (r *UserRepository) UpdateNickname(ctx context.Context, id int64, nickname string) error {
	res, err := r.db.ExecContext(ctx, updateUserNicknameSQL, nickname, id)
	if err != nil {
		return fmt.Errorf("update nickname of user %d: %w", id, classify(err))
	}
	return expectAffected(res)
}

func (r *UserRepository) SetRole(ctx context.Context, id int64, role string) error {
	res, err := r.db.ExecContext(ctx, updateUserRoleSQL, role, id)
	if err != nil {
		return fmt.Errorf("set role of user %d: %w", id, err)
	}
	return expectAffected(res)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteUserSQL, id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, classify(err))
	}
	return expectAffected(res)
}
