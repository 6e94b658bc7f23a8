package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fitness_tracker/internal/models"
)

type ItemCategoryRepository struct {
	db *sql.DB
}

func NewItemCategoryRepository(db *sql.DB) *ItemCategoryRepository {
	return &ItemCategoryRepository{db: db}
}

var _ ItemCategories = (*ItemCategoryRepository)(nil)

const (
	insertItemCategorySQL    = `INSERT INTO item_categories (name) VALUES (?)`
	updateItemCategorySQL    = `UPDATE item_categories SET name = ? WHERE id = ?`
	deleteItemCategorySQL    = `DELETE FROM item_categories WHERE id = ?`
	selectItemCategoryByID   = `SELECT id, name FROM item_categories WHERE id = ?`
	selectItemCategoryByName = `SELECT id, name FROM item_categories WHERE name = ?`
	selectItemCategoriesSQL  = `SELECT id, name FROM item_categories ORDER BY name ASC`
)

func (r *ItemCategoryRepository) Create(ctx context.Context, c models.ItemCategory) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertItemCategorySQL, c.Name)
	if err != nil {
		return 0, fmt.Errorf("insert item category %q: %w", c.Name, classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for item category %q: %w", c.Name, err)
	}
	return id, nil
}

func (r *ItemCategoryRepository) Update(ctx context.Context, c models.ItemCategory) error {
	res, err := r.db.ExecContext(ctx, updateItemCategorySQL, c.Name, c.ID)
	if err != nil {
		return fmt.Errorf("update item category %d: %w", c.ID, classify(err))
	}
	return expectAffected(res)
}

func (r *ItemCategoryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteItemCategorySQL, id)
	if err != nil {
		return fmt.Errorf("delete item category %d: %w", id, classify(err))
	}
	return expectAffected(res)
}

func (r *ItemCategoryRepository) get(ctx context.Context, query string, arg any) (*models.ItemCategory, error) {
	var c models.ItemCategory
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select item category %v: %w", arg, err)
	}
	return &c, nil
}

func (r *ItemCategoryRepository) GetByID(ctx context.Context, id int64) (*models.ItemCategory, error) {
	return r.get(ctx, selectItemCategoryByID, id)
}

func (r *ItemCategoryRepository) GetByName(ctx context.Context, name string) (*models.ItemCategory, error) {
	return r.get(ctx, selectItemCategoryByName, name)
}

func (r *ItemCategoryRepository) List(ctx context.Context) ([]models.ItemCategory, error) {
	rows, err := r.db.QueryContext(ctx, selectItemCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("list item categories: %w", err)
	}
	defer rows.Close()

	var out []models.ItemCategory
	for rows.Next() {
		var c models.ItemCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type ItemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

var _ Items = (*ItemRepository)(nil)

const (
	itemColumns = `id, category_id, name, description, price, image_url`

	insertItemSQL    = `INSERT INTO items (category_id, name, description, price, image_url) VALUES (?, ?, ?, ?, ?)`
	updateItemSQL    = `UPDATE items SET category_id = ?, name = ?, description = ?, price = ?, image_url = ? WHERE id = ?`
	deleteItemSQL    = `DELETE FROM items WHERE id = ?`
	unequipMovedSQL  = `DELETE FROM character_items WHERE item_id = ? AND item_category_id <> ?`
	selectItemByID   = `SELECT ` + itemColumns + ` FROM items WHERE id = ?`
	selectItemByName = `SELECT ` + itemColumns + ` FROM items WHERE name = ?`
	selectItemsSQL   = `SELECT ` + itemColumns + ` FROM items`
)

func (r *ItemRepository) Create(ctx context.Context, it models.Item) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertItemSQL, it.CategoryID, it.Name, it.Description, it.Price, it.ImageURL)
	if err != nil {
		return 0, fmt.Errorf("insert item %q: %w", it.Name, classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for item %q: %w", it.Name, err)
	}
	return id, nil
}

// Update rewrites an item. When the item moves to another category it is
// unequipped from every slot of its old category in the same transaction.
func (r *ItemRepository) Update(ctx context.Context, it models.Item) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update item: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, updateItemSQL, it.CategoryID, it.Name, it.Description, it.Price, it.ImageURL, it.ID)
	if err != nil {
		return fmt.Errorf("update item %d: %w", it.ID, classify(err))
	}
	if err := expectAffected(res); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, unequipMovedSQL, it.ID, it.CategoryID); err != nil {
		return fmt.Errorf("unequip moved item %d: %w", it.ID, err)
	}
	return tx.Commit()
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteItemSQL, id)
	if err != nil {
		return fmt.Errorf("delete item %d: %w", id, classify(err))
	}
	return expectAffected(res)
}

func scanItem(s interface{ Scan(dest ...any) error }, it *models.Item) error {
	return s.Scan(&it.ID, &it.CategoryID, &it.Name, &it.Description, &it.Price, &it.ImageURL)
}

func (r *ItemRepository) get(ctx context.Context, query string, arg any) (*models.Item, error) {
	var it models.Item
	if err := scanItem(r.db.QueryRowContext(ctx, query, arg), &it); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select item %v: %w", arg, err)
	}
	return &it, nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	return r.get(ctx, selectItemByID, id)
}

func (r *ItemRepository) GetByName(ctx context.Context, name string) (*models.Item, error) {
	return r.get(ctx, selectItemByName, name)
}

func (r *ItemRepository) List(ctx context.Context, categoryID int64) ([]models.Item, error) {
	q := selectItemsSQL
	var args []any
	if categoryID != 0 {
		q += " WHERE category_id = ?"
		args = append(args, categoryID)
	}
	q += " ORDER BY name ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var out []models.Item
	for rows.Next() {
		var it models.Item
		if err := scanItem(rows, &it); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
