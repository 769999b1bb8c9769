package services

import (
	"strconv"
	"testing"
	"time"
)

func TestOTPGeneratorImpl_Generate(t *testing.T) {
	gen := NewOTPGenerator(10 * time.Minute)

	code, expiresAt, err := gen.Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(code) != 5 {
		t.Errorf("expected a 5-digit code, got %q", code)
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		t.Fatalf("code is not numeric: %q", code)
	}
	if n < otpMin || n > otpMax {
		t.Errorf("code %d outside [%d, %d]", n, otpMin, otpMax)
	}

	window := time.Until(expiresAt)
	if window < 9*time.Minute || window > 11*time.Minute {
		t.Errorf("expected roughly a ten minute window, got %v", window)
	}
}

func TestOTPGeneratorImpl_Generate_Varies(t *testing.T) {
	gen := NewOTPGenerator(time.Minute)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		code, _, err := gen.Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen[code] = true
	}

	// Twenty identical draws from a 90k space means the source is broken.
	if len(seen) < 2 {
		t.Errorf("expected varying codes, got only %v", seen)
	}
}
