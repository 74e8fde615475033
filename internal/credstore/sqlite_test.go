package credstore

import (
	"context"
	"testing"
)

func TestSQLiteSetGetDelete(t *testing.T) {
	store, err := NewInMemorySQLiteStore()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	if _, err := store.Get(ctx, TokenKey); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.Set(ctx, TokenKey, "tok-1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, UserKey, `{"id":"u1"}`); err != nil {
		t.Fatalf("set user: %v", err)
	}

	token, err := store.Get(ctx, TokenKey)
	if err != nil || token != "tok-1" {
		t.Fatalf("get token: %q %v", token, err)
	}

	if err := store.Set(ctx, TokenKey, "tok-2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	token, err = store.Get(ctx, TokenKey)
	if err != nil || token != "tok-2" {
		t.Fatalf("get after overwrite: %q %v", token, err)
	}

	if err := store.Delete(ctx, TokenKey); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, TokenKey); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	user, err := store.Get(ctx, UserKey)
	if err != nil || user != `{"id":"u1"}` {
		t.Fatalf("user key must be independent: %q %v", user, err)
	}
}

func TestSQLiteDeleteMissingKeyIsNoop(t *testing.T) {
	store, err := NewInMemorySQLiteStore()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	if err := store.Delete(context.Background(), "absent"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}
