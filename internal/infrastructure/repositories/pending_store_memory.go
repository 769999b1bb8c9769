package repositories

import (
	"context"
	"sync"

	"github.com/josptrra/be-rasadhana/domain"
)

// MemoryPendingStore implements domain.PendingRegistrationStore with a
// process-local map. Drafts are lost on restart, which forces affected
// users to re-register; suitable for single-instance deployments and
// tests. Safe for concurrent use.
type MemoryPendingStore struct {
	mu     sync.RWMutex
	drafts map[string]domain.PendingRegistration
}

// NewMemoryPendingStore creates a new in-memory pending registration store
func NewMemoryPendingStore() *MemoryPendingStore {
	return &MemoryPendingStore{drafts: make(map[string]domain.PendingRegistration)}
}

// Put implements domain.PendingRegistrationStore, overwriting any
// existing draft for the same email.
func (s *MemoryPendingStore) Put(_ context.Context, draft *domain.PendingRegistration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.Email] = *draft
	return nil
}

// Get implements domain.PendingRegistrationStore
func (s *MemoryPendingStore) Get(_ context.Context, email string) (*domain.PendingRegistration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[email]
	if !ok {
		return nil, domain.ErrPendingNotFound
	}
	return &draft, nil
}

// Delete implements domain.PendingRegistrationStore
func (s *MemoryPendingStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, email)
	return nil
}

var _ domain.PendingRegistrationStore = (*MemoryPendingStore)(nil)
