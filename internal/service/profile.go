package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tasknest/tasknest/internal/domain"
)

// Profile is the user-facing view of an account.
type Profile struct {
	Username  string
	Email     string
	ListTitle string
}

// ProfileService exposes profile reads and list-title updates.
type ProfileService struct {
	users domain.UserRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(users domain.UserRepository) *ProfileService {
	return &ProfileService{users: users}
}

// Get returns the user's profile.
func (s *ProfileService) Get(ctx context.Context, user *domain.User) Profile {
	return Profile{
		Username:  user.Username,
		Email:     user.Email,
		ListTitle: user.ListTitle,
	}
}

// UpdateListTitle stores a trimmed list title for the user and returns the
// stored value. A title that is empty after trimming is rejected.
func (s *ProfileService) UpdateListTitle(ctx context.Context, user *domain.User, title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", fmt.Errorf("%w: list title cannot be empty", domain.ErrInvalidInput)
	}

	if err := s.users.UpdateListTitle(ctx, user.ID, trimmed); err != nil {
		return "", fmt.Errorf("update list title: %w", err)
	}

	user.ListTitle = trimmed
	return trimmed, nil
}
