package service

import (
	"context"
	"net/url"
	"strings"

	"fitness_tracker/internal/apperr"
	"fitness_tracker/internal/models"
	"fitness_tracker/internal/repository"
)

// ItemCatalogService manages the customization shop: item categories (slots) and items.
type ItemCatalogService struct {
	categories repository.ItemCategories
	items      repository.Items
}

func NewItemCatalogService(categories repository.ItemCategories, items repository.Items) *ItemCatalogService {
	return &ItemCatalogService{categories: categories, items: items}
}

func (s *ItemCatalogService) CreateItemCategory(ctx context.Context, actor Identity, in ItemCategoryInput) (*models.ItemCategory, error) {
	return s.saveCategory(ctx, actor, 0, in)
}

func (s *ItemCatalogService) UpdateItemCategory(ctx context.Context, actor Identity, id int64, in ItemCategoryInput) (*models.ItemCategory, error) {
	return s.saveCategory(ctx, actor, id, in)
}

func (s *ItemCatalogService) saveCategory(ctx context.Context, actor Identity, id int64, in ItemCategoryInput) (*models.ItemCategory, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	name, err := catalogName("item category", in.Name)
	if err != nil {
		return nil, err
	}
	if id != 0 {
		if err := s.categoryExists(ctx, id); err != nil {
			return nil, err
		}
	}
	if existing, err := s.categories.GetByName(ctx, name); err != nil {
		return nil, err
	} else if existing != nil {
		if err := nameTaken("item category", name, existing.ID, id); err != nil {
			return nil, err
		}
	}

	c := models.ItemCategory{ID: id, Name: name}
	if id == 0 {
		c.ID, err = s.categories.Create(ctx, c)
	} else {
		err = s.categories.Update(ctx, c)
	}
	if err != nil {
		return nil, translate(err, "item category")
	}
	return &c, nil
}

func (s *ItemCatalogService) GetItemCategory(ctx context.Context, id int64) (*models.ItemCategory, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound("item category", id)
	}
	return c, nil
}

func (s *ItemCatalogService) categoryExists(ctx context.Context, id int64) error {
	_, err := s.GetItemCategory(ctx, id)
	return err
}

func (s *ItemCatalogService) DeleteItemCategory(ctx context.Context, actor Identity, id int64) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return translate(s.categories.Delete(ctx, id), "item category")
}

func (s *ItemCatalogService) ListItemCategories(ctx context.Context) ([]models.ItemCategory, error) {
	return s.categories.List(ctx)
}

func (s *ItemCatalogService) CreateItem(ctx context.Context, actor Identity, in ItemInput) (*models.Item, error) {
	return s.saveItem(ctx, actor, 0, in)
}

func (s *ItemCatalogService) UpdateItem(ctx context.Context, actor Identity, id int64, in ItemInput) (*models.Item, error) {
	return s.saveItem(ctx, actor, id, in)
}

func (s *ItemCatalogService) saveItem(ctx context.Context, actor Identity, id int64, in ItemInput) (*models.Item, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	name, err := catalogName("item", in.Name)
	if err != nil {
		return nil, err
	}
	if in.Price < 0 {
		return nil, apperr.Validation("price must be >= 0")
	}
	imageURL := strings.TrimSpace(in.ImageURL)
	if imageURL != "" {
		if u, err := url.Parse(imageURL); err != nil || u.Scheme == "" || u.Host == "" {
			return nil, apperr.Validation("invalid image url %q", in.ImageURL)
		}
	}
	if id != 0 {
		if _, err := s.GetItem(ctx, id); err != nil {
			return nil, err
		}
	}
	if err := s.categoryExists(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	if existing, err := s.items.GetByName(ctx, name); err != nil {
		return nil, err
	} else if existing != nil {
		if err := nameTaken("item", name, existing.ID, id); err != nil {
			return nil, err
		}
	}

	it := models.Item{
		ID:          id,
		CategoryID:  in.CategoryID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		ImageURL:    imageURL,
	}
	if id == 0 {
		it.ID, err = s.items.Create(ctx, it)
	} else {
		err = s.items.Update(ctx, it)
	}
	if err != nil {
		return nil, translate(err, "item")
	}
	return &it, nil
}

func (s *ItemCatalogService) DeleteItem(ctx context.Context, actor Identity, id int64) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return translate(s.items.Delete(ctx, id), "item")
}

func (s *ItemCatalogService) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, notFound("item", id)
	}
	return it, nil
}

func (s *ItemCatalogService) ListItems(ctx context.Context, categoryID int64) ([]models.Item, error) {
	return s.items.List(ctx, categoryID)
}
