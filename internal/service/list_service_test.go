package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/satno7/superlists/internal/storage"
	"github.com/satno7/superlists/internal/storage/sqlite"
	"github.com/satno7/superlists/internal/validation"
)

func newTestStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateListAndAddItem(t *testing.T) {
	svc := NewListService(newTestStore(t), discardLogger())
	ctx := context.Background()

	list, err := svc.CreateList(ctx, "Buy milk", "")
	if err != nil {
		t.Fatalf("CreateList failed: %v", err)
	}
	if list.Name() != "Buy milk" {
		t.Errorf("Name = %q, want Buy milk", list.Name())
	}
	if list.OwnerEmail != "" {
		t.Errorf("anonymous list has owner %q", list.OwnerEmail)
	}

	if _, err := svc.AddItem(ctx, list.ID, "Buy eggs"); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	retrieved, err := svc.GetList(ctx, list.ID)
	if err != nil {
		t.Fatalf("GetList failed: %v", err)
	}
	if got := retrieved.ItemTexts(); len(got) != 2 || got[0] != "Buy milk" || got[1] != "Buy eggs" {
		t.Errorf("ItemTexts = %v, want [Buy milk, Buy eggs]", got)
	}
}

func TestCreateListEmptyTextPersistsNothing(t *testing.T) {
	store := newTestStore(t)
	svc := NewListService(store, discardLogger())
	ctx := context.Background()

	if _, err := store.EnsureUser(ctx, "edith@example.com"); err != nil {
		t.Fatalf("EnsureUser failed: %v", err)
	}

	_, err := svc.CreateList(ctx, "", "edith@example.com")
	if !errors.Is(err, validation.ErrEmptyItem) {
		t.Fatalf("err = %v, want ErrEmptyItem", err)
	}

	// No orphan list may survive the failed creation.
	lists, err := svc.MyLists(ctx, "edith@example.com")
	if err != nil {
		t.Fatalf("MyLists failed: %v", err)
	}
	if len(lists) != 0 {
		t.Errorf("found %d lists after failed creation, want 0", len(lists))
	}
}

func TestAddItemEmptyLeavesListUnchanged(t *testing.T) {
	svc := NewListService(newTestStore(t), discardLogger())
	ctx := context.Background()

	list, err := svc.CreateList(ctx, "Buy milk", "")
	if err != nil {
		t.Fatalf("CreateList failed: %v", err)
	}

	_, err = svc.AddItem(ctx, list.ID, "")
	if !errors.Is(err, validation.ErrEmptyItem) {
		t.Fatalf("err = %v, want ErrEmptyItem", err)
	}

	retrieved, err := svc.GetList(ctx, list.ID)
	if err != nil {
		t.Fatalf("GetList failed: %v", err)
	}
	if len(retrieved.Items) != 1 {
		t.Errorf("item count = %d, want 1", len(retrieved.Items))
	}
}

func TestAddItemDuplicate(t *testing.T) {
	svc := NewListService(newTestStore(t), discardLogger())
	ctx := context.Background()

	list, err := svc.CreateList(ctx, "Buy milk", "")
	if err != nil {
		t.Fatalf("CreateList failed: %v", err)
	}

	_, err = svc.AddItem(ctx, list.ID, "Buy milk")
	if !errors.Is(err, validation.ErrDuplicateItem) {
		t.Fatalf("err = %v, want ErrDuplicateItem", err)
	}

	retrieved, err := svc.GetList(ctx, list.ID)
	if err != nil {
		t.Fatalf("GetList failed: %v", err)
	}
	if len(retrieved.Items) != 1 {
		t.Errorf("item count = %d, want 1", len(retrieved.Items))
	}

	// The same text is fine on another list.
	other, err := svc.CreateList(ctx, "Something else", "")
	if err != nil {
		t.Fatalf("CreateList failed: %v", err)
	}
	if _, err := svc.AddItem(ctx, other.ID, "Buy milk"); err != nil {
		t.Errorf("AddItem on other list failed: %v", err)
	}
}

func TestAddItemScenario(t *testing.T) {
	svc := NewListService(newTestStore(t), discardLogger())
	ctx := context.Background()

	list, err := svc.CreateList(ctx, "Buy milk", "")
	if err != nil {
		t.Fatalf("CreateList failed: %v", err)
	}

	if _, err := svc.AddItem(ctx, list.ID, "Buy milk"); !errors.Is(err, validation.ErrDuplicateItem) {
		t.Fatalf("duplicate add: err = %v, want ErrDuplicateItem", err)
	}
	if _, err := svc.AddItem(ctx, list.ID, "Buy eggs"); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	retrieved, err := svc.GetList(ctx, list.ID)
	if err != nil {
		t.Fatalf("GetList failed: %v", err)
	}
	if got := retrieved.ItemTexts(); len(got) != 2 || got[0] != "Buy milk" || got[1] != "Buy eggs" {
		t.Errorf("ItemTexts = %v, want [Buy milk, Buy eggs]", got)
	}
}

func TestOwnedListCreation(t *testing.T) {
	store := newTestStore(t)
	svc := NewListService(store, discardLogger())
	ctx := context.Background()

	if _, err := store.EnsureUser(ctx, "edith@example.com"); err != nil {
		t.Fatalf("EnsureUser failed: %v", err)
	}

	list, err := svc.CreateList(ctx, "my own list", "edith@example.com")
	if err != nil {
		t.Fatalf("CreateList failed: %v", err)
	}
	if list.OwnerEmail != "edith@example.com" {
		t.Errorf("OwnerEmail = %q, want edith@example.com", list.OwnerEmail)
	}

	lists, err := svc.MyLists(ctx, "edith@example.com")
	if err != nil {
		t.Fatalf("MyLists failed: %v", err)
	}
	if len(lists) != 1 || lists[0].ID != list.ID {
		t.Errorf("MyLists = %v, want the new list", lists)
	}
}

func TestShare(t *testing.T) {
	store := newTestStore(t)
	svc := NewListService(store, discardLogger())
	ctx := context.Background()

	if _, err := store.EnsureUser(ctx, "juan@example.com"); err != nil {
		t.Fatalf("EnsureUser failed: %v", err)
	}
	if _, err := store.EnsureUser(ctx, "matt@matt.com"); err != nil {
		t.Fatalf("EnsureUser failed: %v", err)
	}

	list, err := svc.CreateList(ctx, "shared groceries", "juan@example.com")
	if err != nil {
		t.Fatalf("CreateList failed: %v", err)
	}

	t.Run("sharee appears in my lists", func(t *testing.T) {
		if err := svc.Share(ctx, list.ID, "matt@matt.com"); err != nil {
			t.Fatalf("Share failed: %v", err)
		}

		lists, err := svc.MyLists(ctx, "matt@matt.com")
		if err != nil {
			t.Fatalf("MyLists failed: %v", err)
		}
		if len(lists) != 1 || lists[0].ID != list.ID {
			t.Fatalf("MyLists = %v, want the shared list", lists)
		}
	})

	t.Run("sharing is idempotent", func(t *testing.T) {
		if err := svc.Share(ctx, list.ID, "matt@matt.com"); err != nil {
			t.Fatalf("re-Share failed: %v", err)
		}
		retrieved, err := svc.GetList(ctx, list.ID)
		if err != nil {
			t.Fatalf("GetList failed: %v", err)
		}
		if len(retrieved.Sharees) != 1 {
			t.Errorf("Sharees = %v, want one entry", retrieved.Sharees)
		}
	})

	t.Run("sharing with unregistered email fails", func(t *testing.T) {
		err := svc.Share(ctx, list.ID, "stranger@example.com")
		if !errors.Is(err, storage.ErrUserNotFound) {
			t.Errorf("err = %v, want ErrUserNotFound", err)
		}
	})

	t.Run("uninvolved user sees nothing", func(t *testing.T) {
		if _, err := store.EnsureUser(ctx, "loner@example.com"); err != nil {
			t.Fatalf("EnsureUser failed: %v", err)
		}
		lists, err := svc.MyLists(ctx, "loner@example.com")
		if err != nil {
			t.Fatalf("MyLists failed: %v", err)
		}
		if len(lists) != 0 {
			t.Errorf("MyLists = %v, want empty", lists)
		}
	})
}

func TestDeleteList(t *testing.T) {
	svc := NewListService(newTestStore(t), discardLogger())
	ctx := context.Background()

	list, err := svc.CreateList(ctx, "temporary", "")
	if err != nil {
		t.Fatalf("CreateList failed: %v", err)
	}

	if err := svc.DeleteList(ctx, list.ID); err != nil {
		t.Fatalf("DeleteList failed: %v", err)
	}
	if _, err := svc.GetList(ctx, list.ID); !errors.Is(err, storage.ErrListNotFound) {
		t.Errorf("GetList after delete err = %v, want ErrListNotFound", err)
	}
}
