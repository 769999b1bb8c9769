package mocks

import (
	"time"

	"github.com/josptrra/be-rasadhana/domain"
)

// MockOTPGenerator implements domain.OTPGenerator for testing
type MockOTPGenerator struct {
	GenerateFunc func() (string, time.Time, error)
}

// NewMockOTPGenerator creates a new MockOTPGenerator with default behaviors
func NewMockOTPGenerator() *MockOTPGenerator {
	return &MockOTPGenerator{}
}

// Generate produces a one-time code and its expiry
func (m *MockOTPGenerator) Generate() (string, time.Time, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	// Default behavior: fixed code, ten minutes out
	return "12345", time.Now().Add(10 * time.Minute), nil
}

// Compile-time interface compliance verification
var _ domain.OTPGenerator = (*MockOTPGenerator)(nil)
