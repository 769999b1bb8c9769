package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/josptrra/be-rasadhana/domain"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) domain.PendingRegistrationStore {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewPendingStore(client, ttl)
}

func testDraft(email, otp string) *domain.PendingRegistration {
	return &domain.PendingRegistration{
		Name:         "Ana",
		Email:        email,
		PasswordHash: "hashed_pw1",
		OTP:          otp,
		ExpiresAt:    time.Now().Add(10 * time.Minute).Truncate(time.Second),
	}
}

func TestPendingStoreImpl_PutGetDelete(t *testing.T) {
	store := newTestRedisStore(t, 10*time.Minute)
	ctx := context.Background()

	draft := testDraft("ana@x.com", "12345")
	if err := store.Put(ctx, draft); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := store.Get(ctx, "ana@x.com")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Email != draft.Email || got.OTP != draft.OTP || got.PasswordHash != draft.PasswordHash {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, draft)
	}
	if !got.ExpiresAt.Equal(draft.ExpiresAt) {
		t.Errorf("expiry mismatch: got %v, want %v", got.ExpiresAt, draft.ExpiresAt)
	}

	if err := store.Delete(ctx, "ana@x.com"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "ana@x.com"); !errors.Is(err, domain.ErrPendingNotFound) {
		t.Fatalf("expected ErrPendingNotFound after delete, got %v", err)
	}
}

func TestPendingStoreImpl_Get_Missing(t *testing.T) {
	store := newTestRedisStore(t, 10*time.Minute)

	if _, err := store.Get(context.Background(), "nobody@x.com"); !errors.Is(err, domain.ErrPendingNotFound) {
		t.Fatalf("expected ErrPendingNotFound, got %v", err)
	}
}

func TestPendingStoreImpl_Put_Overwrites(t *testing.T) {
	store := newTestRedisStore(t, 10*time.Minute)
	ctx := context.Background()

	if err := store.Put(ctx, testDraft("ana@x.com", "11111")); err != nil {
		t.Fatalf("first put failed: %v", err)
	}
	if err := store.Put(ctx, testDraft("ana@x.com", "22222")); err != nil {
		t.Fatalf("second put failed: %v", err)
	}

	got, err := store.Get(ctx, "ana@x.com")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.OTP != "22222" {
		t.Errorf("expected the newest draft to win, got otp %s", got.OTP)
	}
}

func TestPendingStoreImpl_KeysAreScopedByEmail(t *testing.T) {
	store := newTestRedisStore(t, 10*time.Minute)
	ctx := context.Background()

	if err := store.Put(ctx, testDraft("ana@x.com", "11111")); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := store.Put(ctx, testDraft("bob@x.com", "22222")); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	ana, err := store.Get(ctx, "ana@x.com")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ana.OTP != "11111" {
		t.Errorf("drafts leaked across emails, got otp %s", ana.OTP)
	}
}

func TestMemoryPendingStore(t *testing.T) {
	store := NewMemoryPendingStore()
	ctx := context.Background()

	if err := store.Put(ctx, testDraft("ana@x.com", "12345")); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := store.Get(ctx, "ana@x.com")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.OTP != "12345" {
		t.Errorf("unexpected otp %s", got.OTP)
	}

	// The store hands out copies; mutating one must not touch the draft.
	got.OTP = "mutated"
	again, err := store.Get(ctx, "ana@x.com")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if again.OTP != "12345" {
		t.Error("store leaked a mutable reference to its draft")
	}

	if err := store.Delete(ctx, "ana@x.com"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "ana@x.com"); !errors.Is(err, domain.ErrPendingNotFound) {
		t.Fatalf("expected ErrPendingNotFound after delete, got %v", err)
	}
}

func TestMemoryPendingStore_Concurrent(t *testing.T) {
	store := NewMemoryPendingStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("user%d@x.com", i)
			if err := store.Put(ctx, testDraft(email, "12345")); err != nil {
				t.Errorf("put failed: %v", err)
				return
			}
			if _, err := store.Get(ctx, email); err != nil {
				t.Errorf("get failed: %v", err)
				return
			}
			if err := store.Delete(ctx, email); err != nil {
				t.Errorf("delete failed: %v", err)
			}
		}(i)
	}
	wg.Wait()
}
