package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/josptrra/be-rasadhana/domain"
)

const (
	otpMin = 10000
	otpMax = 99999
)

// OTPGeneratorImpl implements domain.OTPGenerator. Codes are 5-digit
// numeric strings drawn uniformly from [10000, 99999] with crypto/rand;
// a predictable code is a security failure, not a quality issue.
type OTPGeneratorImpl struct {
	ttl time.Duration
}

// NewOTPGenerator creates a new OTP generator with the given validity window
func NewOTPGenerator(ttl time.Duration) domain.OTPGenerator {
	return &OTPGeneratorImpl{ttl: ttl}
}

// Generate implements domain.OTPGenerator
func (g *OTPGeneratorImpl) Generate() (string, time.Time, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate otp: %w", err)
	}

	code := fmt.Sprintf("%d", n.Int64()+otpMin)
	return code, time.Now().Add(g.ttl), nil
}
