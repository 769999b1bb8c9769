package domain

import "time"

// User represents an identity record in the UserInfo collection
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // empty until registration is verified
	PhotoURL     string
	ResetToken   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword reports whether the account completed verification and
// owns a stored password hash.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// PendingRegistration is a registration draft held between the register
// request and OTP confirmation. It is never persisted durably.
type PendingRegistration struct {
	Name         string
	Email        string
	PasswordHash string
	OTP          string
	ExpiresAt    time.Time
}

// Expired reports whether the draft's OTP window has elapsed.
func (p *PendingRegistration) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}

// UserPhoto is a stored ingredient photo owned by a user
type UserPhoto struct {
	ID         string
	UserID     string
	PhotoURL   string
	UploadedAt time.Time
}

// Recipe represents a recipe document
type Recipe struct {
	ID          string
	Title       string
	Ingredients string
	Steps       string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Prediction records classifier output for an uploaded photo
type Prediction struct {
	ID         string
	UserID     string
	PhotoURL   string
	Ingredient string
	Recipes    []string
	CreatedAt  time.Time
}

// Upload is a byte buffer headed for the blob store
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// AuthResult represents a successful login outcome
type AuthResult struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}

// TokenClaims represents the identity claims carried by a session token
type TokenClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
