package mocks

import (
	"context"

	"github.com/josptrra/be-rasadhana/domain"
)

// MockPendingStore implements domain.PendingRegistrationStore for testing
type MockPendingStore struct {
	PutFunc    func(ctx context.Context, draft *domain.PendingRegistration) error
	GetFunc    func(ctx context.Context, email string) (*domain.PendingRegistration, error)
	DeleteFunc func(ctx context.Context, email string) error
}

// NewMockPendingStore creates a new MockPendingStore with default behaviors
func NewMockPendingStore() *MockPendingStore {
	return &MockPendingStore{}
}

// Put stores a registration draft
func (m *MockPendingStore) Put(ctx context.Context, draft *domain.PendingRegistration) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, draft)
	}
	// Default behavior: success
	return nil
}

// Get loads the draft for an email
func (m *MockPendingStore) Get(ctx context.Context, email string) (*domain.PendingRegistration, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrPendingNotFound
}

// Delete removes the draft for an email
func (m *MockPendingStore) Delete(ctx context.Context, email string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.PendingRegistrationStore = (*MockPendingStore)(nil)
