package mocks

import (
	"context"

	"github.com/josptrra/be-rasadhana/domain"
)

// MockUserRepository implements domain.UserRepository for testing
type MockUserRepository struct {
	CreateFunc            func(ctx context.Context, user *domain.User) error
	FindByEmailFunc       func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc          func(ctx context.Context, id string) (*domain.User, error)
	UpdateNameFunc        func(ctx context.Context, id, name string) (*domain.User, error)
	UpdatePhotoURLFunc    func(ctx context.Context, id, photoURL string) (*domain.User, error)
	SetResetTokenFunc     func(ctx context.Context, id, token string) error
	ConsumeResetTokenFunc func(ctx context.Context, token, newPasswordHash string) (*domain.User, error)
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// UpdateName updates the user's display name
func (m *MockUserRepository) UpdateName(ctx context.Context, id, name string) (*domain.User, error) {
	if m.UpdateNameFunc != nil {
		return m.UpdateNameFunc(ctx, id, name)
	}
	return &domain.User{ID: id, Name: name}, nil
}

// UpdatePhotoURL updates the user's profile photo URL
func (m *MockUserRepository) UpdatePhotoURL(ctx context.Context, id, photoURL string) (*domain.User, error) {
	if m.UpdatePhotoURLFunc != nil {
		return m.UpdatePhotoURLFunc(ctx, id, photoURL)
	}
	return &domain.User{ID: id, PhotoURL: photoURL}, nil
}

// SetResetToken stores a reset token on the user
func (m *MockUserRepository) SetResetToken(ctx context.Context, id, token string) error {
	if m.SetResetTokenFunc != nil {
		return m.SetResetTokenFunc(ctx, id, token)
	}
	return nil
}

// ConsumeResetToken atomically matches and clears a reset token
func (m *MockUserRepository) ConsumeResetToken(ctx context.Context, token, newPasswordHash string) (*domain.User, error) {
	if m.ConsumeResetTokenFunc != nil {
		return m.ConsumeResetTokenFunc(ctx, token, newPasswordHash)
	}
	// Default behavior: no matching token
	return nil, domain.ErrResetTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
