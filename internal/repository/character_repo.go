package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fitness_tracker/internal/models"
)

type CharacterRepository struct {
	db *sql.DB
}

func NewCharacterRepository(db *sql.DB) *CharacterRepository {
	return &CharacterRepository{db: db}
}

var _ Characters = (*CharacterRepository)(nil)

const (
	characterColumns = `id, user_id, name, level, exp, created_at, updated_at`

	insertCharacterSQL       = `INSERT INTO characters (user_id, name, level, exp, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`
	selectCharacterByUserSQL = `SELECT ` + characterColumns + ` FROM characters WHERE user_id = ?`
	selectCharacterByNameSQL = `SELECT ` + characterColumns + ` FROM characters WHERE name = ?`
	renameCharacterSQL       = `UPDATE characters SET name = ?, updated_at = ? WHERE id = ?`
	addCharacterExpSQL       = `UPDATE characters SET exp = MAX(exp + ?, 0), level = 1 + MAX(exp + ?, 0) / ?, updated_at = ? WHERE user_id = ?`

	equipItemSQL = `
		INSERT INTO character_items (character_id, item_category_id, item_id)
		VALUES (?, ?, ?)
		ON CONFLICT(character_id, item_category_id) DO UPDATE SET item_id=excluded.item_id
	`
	unequipItemSQL      = `DELETE FROM character_items WHERE character_id = ? AND item_category_id = ?`
	selectEquippedItems = `
		SELECT i.id, i.category_id, i.name, i.description, i.price, i.image_url
		FROM character_items ci JOIN items i ON i.id = ci.item_id
		WHERE ci.character_id = ?
		ORDER BY ci.item_category_id ASC
	`
)

func (r *CharacterRepository) Create(ctx context.Context, c models.Character) (int64, error) {
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	res, err := r.db.ExecContext(ctx, insertCharacterSQL, c.UserID, c.Name, c.Level, c.Exp, c.CreatedAt.UTC(), c.UpdatedAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("insert character %q: %w", c.Name, classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for character %q: %w", c.Name, err)
	}
	return id, nil
}

func (r *CharacterRepository) get(ctx context.Context, query string, arg any) (*models.Character, error) {
	var c models.Character
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&c.ID, &c.UserID, &c.Name, &c.Level, &c.Exp, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select character %v: %w", arg, err)
	}
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return &c, nil
}

// GetByUserID returns the user's character without equipment; (nil, nil) if none.
func (r *CharacterRepository) GetByUserID(ctx context.Context, userID int64) (*models.Character, error) {
	return r.get(ctx, selectCharacterByUserSQL, userID)
}

func (r *CharacterRepository) GetByName(ctx context.Context, name string) (*models.Character, error) {
	return r.get(ctx, selectCharacterByNameSQL, name)
}

func (r *CharacterRepository) Rename(ctx context.Context, id int64, name string) error {
	res, err := r.db.ExecContext(ctx, renameCharacterSQL, name, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("rename character %d: %w", id, classify(err))
	}
	return expectAffected(res)
}

// AddExp shifts the experience of the user's character by delta, floored at
// zero, and recomputes the level in the same statement.
func (r *CharacterRepository) AddExp(ctx context.Context, userID int64, delta int) error {
	res, err := r.db.ExecContext(ctx, addCharacterExpSQL, delta, delta, models.ExpPerLevel, time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("add exp to character of user %d: %w", userID, err)
	}
	return expectAffected(res)
}

// Equip puts itemID into the item-category slot, replacing whatever was there.
func (r *CharacterRepository) Equip(ctx context.Context, characterID, itemCategoryID, itemID int64) error {
	if _, err := r.db.ExecContext(ctx, equipItemSQL, characterID, itemCategoryID, itemID); err != nil {
		return fmt.Errorf("equip item %d on character %d: %w", itemID, characterID, classify(err))
	}
	return nil
}

// Unequip empties a slot and reports whether anything was removed.
func (r *CharacterRepository) Unequip(ctx context.Context, characterID, itemCategoryID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, unequipItemSQL, characterID, itemCategoryID)
	if err != nil {
		return false, fmt.Errorf("unequip category %d on character %d: %w", itemCategoryID, characterID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *CharacterRepository) ListEquipped(ctx context.Context, characterID int64) ([]models.Item, error) {
	rows, err := r.db.QueryContext(ctx, selectEquippedItems, characterID)
	if err != nil {
		return nil, fmt.Errorf("list equipped items of character %d: %w", characterID, err)
	}
	defer rows.Close()

	out := make([]models.Item, 0, 8)
	for rows.Next() {
		var it models.Item
		if err := scanItem(rows, &it); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
