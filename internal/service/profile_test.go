package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tasknest/tasknest/internal/domain"
	"github.com/tasknest/tasknest/internal/service"
)

func TestProfileService_Get(t *testing.T) {
	db := newTestDB(t)
	profiles := service.NewProfileService(db.Users())
	alice := createUser(t, db, "alice")

	profile := profiles.Get(context.Background(), alice)
	if profile.Username != "alice" {
		t.Fatalf("expected username alice, got %s", profile.Username)
	}
	if profile.Email != "alice@example.com" {
		t.Fatalf("expected email alice@example.com, got %s", profile.Email)
	}
}

func TestProfileService_UpdateListTitle_Trims(t *testing.T) {
	db := newTestDB(t)
	profiles := service.NewProfileService(db.Users())
	alice := createUser(t, db, "alice")
	ctx := context.Background()

	stored, err := profiles.UpdateListTitle(ctx, alice, "  My List  ")
	if err != nil {
		t.Fatalf("UpdateListTitle: %v", err)
	}
	if stored != "My List" {
		t.Fatalf("expected stored title %q, got %q", "My List", stored)
	}

	found, err := db.Users().GetByID(ctx, alice.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.ListTitle != "My List" {
		t.Fatalf("expected persisted title %q, got %q", "My List", found.ListTitle)
	}
}

func TestProfileService_UpdateListTitle_WhitespaceOnly(t *testing.T) {
	db := newTestDB(t)
	profiles := service.NewProfileService(db.Users())
	alice := createUser(t, db, "alice")

	_, err := profiles.UpdateListTitle(context.Background(), alice, " ")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
