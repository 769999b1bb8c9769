package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("MONGO_URL", "mongodb://mongo:27017")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("TOKEN_TTL", "24h")
	t.Setenv("OTP_TTL", "5m")
	t.Setenv("STORAGE_PUBLIC_BASE_URL", "https://storage.googleapis.com/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "mongodb://mongo:27017", cfg.MongoURI)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.OTPTTL)
	// Trailing slashes are stripped so URL building stays predictable.
	assert.Equal(t, "https://storage.googleapis.com", cfg.PublicBaseURL)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	for _, k := range []string{"PORT", "TOKEN_TTL", "OTP_TTL", "MONGO_DB", "SMTP_PORT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10*time.Minute, cfg.OTPTTL)
	assert.Equal(t, "rasadhana", cfg.MongoDatabase)
	assert.Equal(t, 587, cfg.SMTPPort)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt secret")
}

func TestLoad_RejectsBadDurations(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL", "one-week")

	_, err := Load()
	require.Error(t, err)
}
