package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tasknest/tasknest/internal/domain"
	"github.com/tasknest/tasknest/internal/repository/sqlite"
	"github.com/tasknest/tasknest/internal/service"
)

func newTestItemService(t *testing.T) (*service.ItemService, *sqlite.DB) {
	t.Helper()
	db := newTestDB(t)
	return service.NewItemService(db.Items()), db
}

func createUser(t *testing.T, db *sqlite.DB, username string) *domain.User {
	t.Helper()
	user := &domain.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		Role:         domain.RoleUser,
		Enabled:      true,
	}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func TestItemService_Add_ForcesOwner(t *testing.T) {
	items, db := newTestItemService(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	ctx := context.Background()

	// The incoming item claims to belong to bob; the service must overwrite
	// the owner with the authenticated user.
	item := &domain.Item{UserID: bob.ID, Title: "spoofed"}
	if err := items.Add(ctx, alice, item); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if item.UserID != alice.ID {
		t.Fatalf("expected owner %d, got %d", alice.ID, item.UserID)
	}

	bobItems, err := items.List(ctx, bob)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(bobItems) != 0 {
		t.Fatalf("expected no items for bob, got %d", len(bobItems))
	}
}

func TestItemService_Add_EmptyTitle(t *testing.T) {
	items, db := newTestItemService(t)
	alice := createUser(t, db, "alice")

	err := items.Add(context.Background(), alice, &domain.Item{})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestItemService_List_Ordering(t *testing.T) {
	items, db := newTestItemService(t)
	alice := createUser(t, db, "alice")
	ctx := context.Background()

	// Inserted as (favourite, checked): (false,true), (true,false), (false,false).
	inserts := []struct {
		favourite bool
		checked   bool
	}{
		{false, true},
		{true, false},
		{false, false},
	}
	for i, in := range inserts {
		item := &domain.Item{Title: string(rune('a' + i)), Favourite: in.favourite, Checked: in.checked}
		if err := items.Add(ctx, alice, item); err != nil {
			t.Fatalf("Add %d: %v", i, err)
		}
	}

	got, err := items.List(ctx, alice)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	// Expected order: (true,false), (false,false), (false,true).
	want := []struct {
		favourite bool
		checked   bool
	}{
		{true, false},
		{false, false},
		{false, true},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Favourite != w.favourite || got[i].Checked != w.checked {
			t.Fatalf("position %d: expected (favourite=%v, checked=%v), got (favourite=%v, checked=%v)",
				i, w.favourite, w.checked, got[i].Favourite, got[i].Checked)
		}
	}
}

func TestItemService_Reorder_MatchesList(t *testing.T) {
	items, db := newTestItemService(t)
	alice := createUser(t, db, "alice")
	ctx := context.Background()

	for _, in := range []domain.Item{
		{Title: "checked", Checked: true},
		{Title: "favourite", Favourite: true},
		{Title: "plain"},
	} {
		item := in
		if err := items.Add(ctx, alice, &item); err != nil {
			t.Fatalf("Add %s: %v", in.Title, err)
		}
	}

	listed, err := items.List(ctx, alice)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	reordered, err := items.Reorder(ctx, alice)
	if err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	if len(reordered) != len(listed) {
		t.Fatalf("expected %d items, got %d", len(listed), len(reordered))
	}
	for i := range listed {
		if reordered[i].ID != listed[i].ID {
			t.Fatalf("position %d: reorder gave id %d, list gave id %d", i, reordered[i].ID, listed[i].ID)
		}
	}
	if reordered[0].Title != "favourite" || reordered[2].Title != "checked" {
		t.Fatalf("unexpected priority order: %+v", reordered)
	}
}

func TestItemService_Update_PreservesOwner(t *testing.T) {
	items, db := newTestItemService(t)
	alice := createUser(t, db, "alice")
	ctx := context.Background()

	item := &domain.Item{Title: "old"}
	if err := items.Add(ctx, alice, item); err != nil {
		t.Fatalf("Add: %v", err)
	}

	updated, err := items.Update(ctx, alice, item.ID, &domain.Item{Title: "new", Checked: true, Favourite: true})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Title != "new" || !updated.Checked || !updated.Favourite {
		t.Fatalf("unexpected item after update: %+v", updated)
	}
	if updated.UserID != alice.ID {
		t.Fatalf("owner changed: expected %d, got %d", alice.ID, updated.UserID)
	}
}

func TestItemService_Update_NotFound(t *testing.T) {
	items, db := newTestItemService(t)
	alice := createUser(t, db, "alice")

	_, err := items.Update(context.Background(), alice, 99999, &domain.Item{Title: "x"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestItemService_Update_Forbidden(t *testing.T) {
	items, db := newTestItemService(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	ctx := context.Background()

	item := &domain.Item{Title: "alice's"}
	if err := items.Add(ctx, alice, item); err != nil {
		t.Fatalf("Add: %v", err)
	}

	_, err := items.Update(ctx, bob, item.ID, &domain.Item{Title: "stolen"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Unchanged for the owner.
	got, err := items.List(ctx, alice)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Title != "alice's" {
		t.Fatalf("item was modified by a non-owner: %+v", got)
	}
}

func TestItemService_Delete_Forbidden(t *testing.T) {
	items, db := newTestItemService(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	ctx := context.Background()

	item := &domain.Item{Title: "alice's"}
	if err := items.Add(ctx, alice, item); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := items.Delete(ctx, bob, item.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	got, err := items.List(ctx, alice)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatal("item was deleted by a non-owner")
	}
}

func TestItemService_Delete(t *testing.T) {
	items, db := newTestItemService(t)
	alice := createUser(t, db, "alice")
	ctx := context.Background()

	item := &domain.Item{Title: "gone"}
	if err := items.Add(ctx, alice, item); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := items.Delete(ctx, alice, item.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, err := items.List(ctx, alice)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list after delete, got %d items", len(got))
	}
}
