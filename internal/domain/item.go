package domain

import (
	"context"
	"time"
)

// Item is a single entry on a user's list. Every item has exactly one owner,
// set when the item is created and never reassigned.
type Item struct {
	ID        int64
	UserID    int64
	Title     string
	Checked   bool
	Favourite bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemRepository defines persistence operations for items.
// ListByUser returns items ordered by favourite (descending), then checked
// (ascending), then id (ascending), so favourites come first, unchecked
// before checked, and insertion order breaks ties.
type ItemRepository interface {
	Create(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, id int64) (*Item, error)
	ListByUser(ctx context.Context, userID int64) ([]Item, error)
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id int64) error
}
