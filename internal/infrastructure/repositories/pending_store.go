package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/josptrra/be-rasadhana/domain"
)

// PendingStoreImpl implements domain.PendingRegistrationStore using
// Redis, so multiple instances can share drafts. The key TTL is a
// backstop: the auth service still checks the draft's own expiry so
// the one-shot "expired draft is consumed" semantics stay explicit.
type PendingStoreImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewPendingStore creates a new Redis-backed pending registration store
func NewPendingStore(client *redis.Client, ttl time.Duration) domain.PendingRegistrationStore {
	return &PendingStoreImpl{
		client: client,
		prefix: "pending:",
		ttl:    ttl,
	}
}

// Put implements domain.PendingRegistrationStore. Last write wins: a
// user who re-registers before confirming gets a fresh draft and the
// old OTP becomes permanently invalid.
func (s *PendingStoreImpl) Put(ctx context.Context, draft *domain.PendingRegistration) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal pending registration: %w", err)
	}

	// Keep the key alive slightly past the OTP window so an expired
	// draft is still observable and can be consumed with ErrOTPExpired.
	return s.client.Set(ctx, s.prefix+draft.Email, data, s.ttl*2).Err()
}

// Get implements domain.PendingRegistrationStore
func (s *PendingStoreImpl) Get(ctx context.Context, email string) (*domain.PendingRegistration, error) {
	data, err := s.client.Get(ctx, s.prefix+email).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrPendingNotFound
		}
		return nil, err
	}

	var draft domain.PendingRegistration
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pending registration: %w", err)
	}
	return &draft, nil
}

// Delete implements domain.PendingRegistrationStore
func (s *PendingStoreImpl) Delete(ctx context.Context, email string) error {
	return s.client.Del(ctx, s.prefix+email).Err()
}
