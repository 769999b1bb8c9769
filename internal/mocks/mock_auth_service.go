package mocks

import (
	"context"

	"github.com/josptrra/be-rasadhana/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc           func(ctx context.Context, name, email, password string) error
	VerifyRegistrationFunc func(ctx context.Context, email, otp string) (*domain.User, error)
	LoginFunc              func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	CurrentUserFunc        func(ctx context.Context, userID string) (*domain.User, error)
	ForgotPasswordFunc     func(ctx context.Context, email string) error
	ResetPasswordFunc      func(ctx context.Context, token, newPassword string) error
	UpdateNameFunc         func(ctx context.Context, userID, name string) (*domain.User, error)
	UpdateProfilePhotoFunc func(ctx context.Context, userID string, upload domain.Upload) (string, error)
	ResetProfilePhotoFunc  func(ctx context.Context, userID string) (string, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password)
	}
	return nil
}

func (m *MockAuthService) VerifyRegistration(ctx context.Context, email, otp string) (*domain.User, error) {
	if m.VerifyRegistrationFunc != nil {
		return m.VerifyRegistrationFunc(ctx, email, otp)
	}
	return nil, domain.ErrPendingNotFound
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *MockAuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	return nil
}

func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, token, newPassword)
	}
	return domain.ErrResetTokenInvalid
}

func (m *MockAuthService) UpdateName(ctx context.Context, userID, name string) (*domain.User, error) {
	if m.UpdateNameFunc != nil {
		return m.UpdateNameFunc(ctx, userID, name)
	}
	return &domain.User{ID: userID, Name: name}, nil
}

func (m *MockAuthService) UpdateProfilePhoto(ctx context.Context, userID string, upload domain.Upload) (string, error) {
	if m.UpdateProfilePhotoFunc != nil {
		return m.UpdateProfilePhotoFunc(ctx, userID, upload)
	}
	return "https://blobs.test/bucket/profiles/photo.jpg", nil
}

func (m *MockAuthService) ResetProfilePhoto(ctx context.Context, userID string) (string, error) {
	if m.ResetProfilePhotoFunc != nil {
		return m.ResetProfilePhotoFunc(ctx, userID)
	}
	return "https://blobs.test/bucket/default-profile.jpg", nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
