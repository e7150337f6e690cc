package credstore

import (
	"context"
	"testing"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	if _, err := store.Get(ctx, "missing"); err != ErrNotFound {
		t.Errorf("Get missing: err = %v, want ErrNotFound", err)
	}

	if err := store.Set(ctx, "token", "abc"); err != nil {
		t.Fatal(err)
	}
	got, err := store.Get(ctx, "token")
	if err != nil || got != "abc" {
		t.Errorf("Get = %q, %v", got, err)
	}

	if err := store.Delete(ctx, "token"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Get(ctx, "token"); err != ErrNotFound {
		t.Errorf("after delete: err = %v, want ErrNotFound", err)
	}

	// Deleting a missing key is not an error.
	if err := store.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete missing: %v", err)
	}
}

func TestPrefixedIsolation(t *testing.T) {
	ctx := context.Background()
	base := NewMemory()
	chat1 := Prefixed(base, "chat:1:")
	chat2 := Prefixed(base, "chat:2:")

	if err := chat1.Set(ctx, "token", "one"); err != nil {
		t.Fatal(err)
	}
	if err := chat2.Set(ctx, "token", "two"); err != nil {
		t.Fatal(err)
	}

	got1, _ := chat1.Get(ctx, "token")
	got2, _ := chat2.Get(ctx, "token")
	if got1 != "one" || got2 != "two" {
		t.Errorf("chat1 = %q, chat2 = %q", got1, got2)
	}

	if err := chat1.Delete(ctx, "token"); err != nil {
		t.Fatal(err)
	}
	if _, err := chat1.Get(ctx, "token"); err != ErrNotFound {
		t.Errorf("chat1 after delete: %v", err)
	}
	if got, err := chat2.Get(ctx, "token"); err != nil || got != "two" {
		t.Errorf("chat2 affected by chat1 delete: %q, %v", got, err)
	}
}
