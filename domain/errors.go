package domain

import "errors"

// Account errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Registration / OTP errors
var (
	ErrPendingNotFound = errors.New("no pending registration")
	ErrOTPInvalid      = errors.New("invalid otp code")
	ErrOTPExpired      = errors.New("otp has expired")
)

// Password reset errors
var (
	ErrResetTokenInvalid = errors.New("invalid reset token")
)

// Token errors
var (
	ErrTokenMissing   = errors.New("missing token")
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Upload errors
var (
	ErrNoFile  = errors.New("no file uploaded")
	ErrStorage = errors.New("blob storage operation failed")
	ErrPersist = errors.New("failed to persist uploaded object reference")
)

// Notification errors
var (
	ErrNotifyFailed = errors.New("failed to send notification")
)

// Media errors
var (
	ErrPhotoNotFound  = errors.New("photo not found")
	ErrRecipeNotFound = errors.New("recipe not found")
)
