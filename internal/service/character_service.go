package service

import (
	"context"
	"errors"
	"strings"

	"fitness_tracker/internal/apperr"
	"fitness_tracker/internal/models"
	"fitness_tracker/internal/repository"
)

const maxCharacterNameLen = 20

type CharacterService struct {
	characters repository.Characters
	items      repository.Items
}

func NewCharacterService(characters repository.Characters, items repository.Items) *CharacterService {
	return &CharacterService{characters: characters, items: items}
}

func validCharacterName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", apperr.Validation("character name is empty")
	}
	if len([]rune(n)) > maxCharacterNameLen {
		return "", apperr.Validation("character name must be at most %d characters", maxCharacterNameLen)
	}
	return n, nil
}

// CreateCharacter creates the user's only character at level 1.
func (s *CharacterService) CreateCharacter(ctx context.Context, userID int64, name string) (*models.Character, error) {
	n, err := validCharacterName(name)
	if err != nil {
		return nil, err
	}
	if c, err := s.characters.GetByUserID(ctx, userID); err != nil {
		return nil, err
	} else if c != nil {
		return nil, apperr.Conflict("user already has a character")
	}
	if c, err := s.characters.GetByName(ctx, n); err != nil {
		return nil, err
	} else if c != nil {
		return nil, apperr.Conflict("character name %q is taken", n)
	}

	if _, err := s.characters.Create(ctx, models.Character{UserID: userID, Name: n, Level: 1}); err != nil {
		return nil, translate(err, "character")
	}
	return s.GetCharacter(ctx, userID)
}

// GetCharacter returns the user's character with its equipped items.
func (s *CharacterService) GetCharacter(ctx context.Context, userID int64) (*models.Character, error) {
	c, err := s.mine(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.Equipped, err = s.characters.ListEquipped(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CharacterService) mine(ctx context.Context, userID int64) (*models.Character, error) {
	c, err := s.characters.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("character not found")
	}
	return c, nil
}

func (s *CharacterService) RenameCharacter(ctx context.Context, userID int64, name string) (*models.Character, error) {
	n, err := validCharacterName(name)
	if err != nil {
		return nil, err
	}
	c, err := s.mine(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c.Name == n {
		return s.GetCharacter(ctx, userID)
	}
	if other, err := s.characters.GetByName(ctx, n); err != nil {
		return nil, err
	} else if other != nil {
		return nil, apperr.Conflict("character name %q is taken", n)
	}
	if err := s.characters.Rename(ctx, c.ID, n); err != nil {
		return nil, translate(err, "character")
	}
	return s.GetCharacter(ctx, userID)
}

// Equip puts the item into its category's slot, replacing the previous one.
func (s *CharacterService) Equip(ctx context.Context, userID, itemID int64) (*models.Character, error) {
	c, err := s.mine(ctx, userID)
	if err != nil {
		return nil, err
	}
	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, notFound("item", itemID)
	}
	if err := s.characters.Equip(ctx, c.ID, it.CategoryID, it.ID); err != nil {
		return nil, translate(err, "item")
	}
	return s.GetCharacter(ctx, userID)
}

func (s *CharacterService) Unequip(ctx context.Context, userID, itemCategoryID int64) (*models.Character, error) {
	c, err := s.mine(ctx, userID)
	if err != nil {
		return nil, err
	}
	removed, err := s.characters.Unequip(ctx, c.ID, itemCategoryID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, apperr.NotFound("nothing equipped in category %d", itemCategoryID)
	}
	return s.GetCharacter(ctx, userID)
}

// AddExp adds delta (possibly negative) experience and recomputes the level.
func (s *CharacterService) AddExp(ctx context.Context, userID int64, delta int) error {
	if delta == 0 {
		return nil
	}
	err := s.characters.AddExp(ctx, userID, delta)
	if errors.Is(err, repository.ErrNoRows) {
		return nil
	}
	return err
}
