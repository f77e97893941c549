package service

import (
	"context"
	"fmt"

	"github.com/tasknest/tasknest/internal/domain"
)

// ItemService handles item CRUD with ownership enforcement.
type ItemService struct {
	items domain.ItemRepository
}

// NewItemService creates a new ItemService.
func NewItemService(items domain.ItemRepository) *ItemService {
	return &ItemService{items: items}
}

// List returns the user's items ordered favourites first, unchecked before
// checked, insertion order last.
func (s *ItemService) List(ctx context.Context, user *domain.User) ([]domain.Item, error) {
	return s.items.ListByUser(ctx, user.ID)
}

// Add persists a new item for the user. The owner is always taken from the
// authenticated user, never from the incoming item.
func (s *ItemService) Add(ctx context.Context, user *domain.User, item *domain.Item) error {
	if item.Title == "" {
		return fmt.Errorf("%w: item title is required", domain.ErrInvalidInput)
	}

	item.UserID = user.ID
	if err := s.items.Create(ctx, item); err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// Update applies title, checked, and favourite from patch to the stored item
// after verifying ownership. The owner field is never overwritten.
func (s *ItemService) Update(ctx context.Context, user *domain.User, id int64, patch *domain.Item) (*domain.Item, error) {
	existing, err := s.ownedItem(ctx, user, id)
	if err != nil {
		return nil, err
	}

	existing.Title = patch.Title
	existing.Checked = patch.Checked
	existing.Favourite = patch.Favourite

	if err := s.items.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return existing, nil
}

// Reorder returns the user's items freshly sorted by priority. Ordering is
// derived, not stored, so this is the same read as List.
func (s *ItemService) Reorder(ctx context.Context, user *domain.User) ([]domain.Item, error) {
	return s.items.ListByUser(ctx, user.ID)
}

// Delete removes the item after verifying ownership.
func (s *ItemService) Delete(ctx context.Context, user *domain.User, id int64) error {
	if _, err := s.ownedItem(ctx, user, id); err != nil {
		return err
	}
	return s.items.Delete(ctx, id)
}

func (s *ItemService) ownedItem(ctx context.Context, user *domain.User, id int64) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.UserID != user.ID {
		return nil, domain.ErrForbidden
	}
	return item, nil
}
