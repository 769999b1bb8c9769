package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	UpdateName(ctx context.Context, id, name string) (*User, error)
	UpdatePhotoURL(ctx context.Context, id, photoURL string) (*User, error)
	SetResetToken(ctx context.Context, id, token string) error
	// ConsumeResetToken atomically matches the token and clears it while
	// installing the new password hash. A token can be consumed at most once.
	ConsumeResetToken(ctx context.Context, token, newPasswordHash string) (*User, error)
}

// PendingRegistrationStore holds registration drafts awaiting OTP
// confirmation. Put overwrites any existing draft for the same email.
type PendingRegistrationStore interface {
	Put(ctx context.Context, draft *PendingRegistration) error
	Get(ctx context.Context, email string) (*PendingRegistration, error)
	Delete(ctx context.Context, email string) error
}

// PhotoRepository defines ingredient photo data access operations
type PhotoRepository interface {
	Create(ctx context.Context, photo *UserPhoto) error
	FindByUserID(ctx context.Context, userID string) ([]UserPhoto, error)
	FindLatestByUserID(ctx context.Context, userID string) (*UserPhoto, error)
}

// RecipeRepository defines recipe data access operations
type RecipeRepository interface {
	Create(ctx context.Context, recipe *Recipe) error
	FindAll(ctx context.Context) ([]Recipe, error)
	FindByID(ctx context.Context, id string) (*Recipe, error)
	Update(ctx context.Context, recipe *Recipe) error
	Delete(ctx context.Context, id string) error
}

// PredictionRepository defines prediction data access operations
type PredictionRepository interface {
	Create(ctx context.Context, prediction *Prediction) error
	FindByUserID(ctx context.Context, userID string) ([]Prediction, error)
}

// AuthService defines the registration and session business logic
type AuthService interface {
	Register(ctx context.Context, name, email, password string) error
	VerifyRegistration(ctx context.Context, email, otp string) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	CurrentUser(ctx context.Context, userID string) (*User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	UpdateName(ctx context.Context, userID, name string) (*User, error)
	UpdateProfilePhoto(ctx context.Context, userID string, upload Upload) (string, error)
	ResetProfilePhoto(ctx context.Context, userID string) (string, error)
}

// PhotoService defines ingredient photo operations
type PhotoService interface {
	UploadPhoto(ctx context.Context, userID string, upload Upload) (*UserPhoto, error)
	ListPhotos(ctx context.Context, userID string) ([]UserPhoto, error)
	LatestPhoto(ctx context.Context, userID string) (*UserPhoto, error)
}

// RecipeService defines recipe catalog operations
type RecipeService interface {
	Create(ctx context.Context, title, ingredients, steps string, image Upload) (*Recipe, error)
	List(ctx context.Context) ([]Recipe, error)
	Update(ctx context.Context, id, title, ingredients, steps string, image *Upload) (*Recipe, error)
	Delete(ctx context.Context, id string) error
}

// OTPGenerator produces time-bounded one-time codes
type OTPGenerator interface {
	Generate() (code string, expiresAt time.Time, err error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Issue(userID, email string) (token string, expiresAt time.Time, err error)
	Verify(token string) (*TokenClaims, error)
}

// NotificationService delivers one-time codes out of band
type NotificationService interface {
	SendEmail(to, subject, body string) error
}

// BlobStore abstracts remote object storage
type BlobStore interface {
	// Put stores the object and returns its public URL.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	// KeyForURL derives the object key from a public URL previously
	// returned by Put. ok is false for URLs this store did not issue.
	KeyForURL(url string) (key string, ok bool)
}

// UploadCoordinator orchestrates "upload bytes, then persist the URL"
// as a single operation with defined partial-failure behavior.
type UploadCoordinator interface {
	// Attach uploads the blob and then invokes persist with the public
	// URL. The persist callback runs only after the object write was
	// confirmed.
	Attach(ctx context.Context, upload Upload, keyPrefix string, persist func(ctx context.Context, url string) error) (string, error)
	// Remove deletes the blob referenced by url and then invokes
	// deleteRecord. Storage failures abort before the record is touched.
	Remove(ctx context.Context, url string, deleteRecord func(ctx context.Context) error) error
}

// Classifier is the opaque ingredient-recognition model
type Classifier interface {
	Predict(ctx context.Context, image []byte) (string, error)
}
