package mocks

import (
	"time"

	"github.com/josptrra/be-rasadhana/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	IssueFunc  func(userID, email string) (string, time.Time, error)
	VerifyFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Issue issues a session token
func (m *MockTokenService) Issue(userID, email string) (string, time.Time, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, email)
	}
	// Default behavior: deterministic token, one week out
	return "token_" + userID, time.Now().Add(7 * 24 * time.Hour), nil
}

// Verify verifies a session token
func (m *MockTokenService) Verify(token string) (*domain.TokenClaims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
