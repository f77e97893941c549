package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tasknest/tasknest/internal/domain"
)

// ItemRepository implements domain.ItemRepository using SQLite.
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new SQLite-backed ItemRepository.
func NewItemRepository(db *DB) *ItemRepository {
	return &ItemRepository{db: db.SqlDB}
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO items (user_id, title, checked, favourite, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		item.UserID, item.Title, item.Checked, item.Favourite, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	item.ID = id
	item.CreatedAt = now
	item.UpdatedAt = now
	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	item := &domain.Item{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, checked, favourite, created_at, updated_at
		 FROM items WHERE id = ?`, id,
	).Scan(&item.ID, &item.UserID, &item.Title, &item.Checked, &item.Favourite, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query item by id: %w", err)
	}
	return item, nil
}

// ListByUser returns the user's items ordered favourites first, then
// unchecked before checked, then by insertion order.
func (r *ItemRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, checked, favourite, created_at, updated_at
		 FROM items WHERE user_id = ?
		 ORDER BY favourite DESC, checked ASC, id ASC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query items by user: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.UserID, &item.Title, &item.Checked, &item.Favourite, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Update writes title, checked, and favourite. The owner column is never
// touched here.
func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE items SET title = ?, checked = ?, favourite = ?, updated_at = ?
		 WHERE id = ?`,
		item.Title, item.Checked, item.Favourite, time.Now().UTC(), item.ID,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
