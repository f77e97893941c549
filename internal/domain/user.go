package domain

import (
	"context"
	"time"
)

// Role identifies a user's authority level. Only RoleUser is granted at
// registration; RoleAdmin is reserved.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents a registered user of the application. Identity fields are
// immutable after creation; only ListTitle changes over a user's lifetime.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	Enabled      bool
	ListTitle    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateListTitle(ctx context.Context, id int64, title string) error
}
