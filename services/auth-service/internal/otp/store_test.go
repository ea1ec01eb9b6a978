package otp

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreVerifyConsumesCode(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, "+905551112233", "123456", time.Minute); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Verify(ctx, "+905551112233", "123456"); err != nil {
		t.Fatalf("Verify should succeed: %v", err)
	}
	if err := store.Verify(ctx, "+905551112233", "123456"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after consumption, got %v", err)
	}
}

func TestMemoryStoreWrongCode(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, "+905551112233", "123456", time.Minute); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Verify(ctx, "+905551112233", "654321"); err != ErrMismatch {
		t.Fatalf("expected ErrMismatch, got %v", err)
	}
	// A wrong attempt must not consume the code.
	if err := store.Verify(ctx, "+905551112233", "123456"); err != nil {
		t.Fatalf("Verify with right code should still succeed: %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	now := time.Now()
	store.now = func() time.Time { return now }

	if err := store.Save(ctx, "+905551112233", "123456", 5*time.Minute); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	store.now = func() time.Time { return now.Add(6 * time.Minute) }
	if err := store.Verify(ctx, "+905551112233", "123456"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for expired code, got %v", err)
	}
}

func TestNewCodeShape(t *testing.T) {
	code, err := NewCode()
	if err != nil {
		t.Fatalf("NewCode failed: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("expected 6-digit code, got %q", code)
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			t.Fatalf("expected numeric code, got %q", code)
		}
	}
}
