package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/josptrra/be-rasadhana/domain"
)

// AuthServiceImpl implements domain.AuthService. Registration runs a
// two-phase flow: a draft lives in the pending store until the OTP is
// verified, and only verification creates a durable account.
type AuthServiceImpl struct {
	userRepo        domain.UserRepository
	pendingStore    domain.PendingRegistrationStore
	passwordSvc     domain.PasswordService
	tokenSvc        domain.TokenService
	otpGen          domain.OTPGenerator
	notificationSvc domain.NotificationService
	uploads         domain.UploadCoordinator
	defaultPhotoURL string
	logger          *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	pendingStore domain.PendingRegistrationStore,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpGen domain.OTPGenerator,
	notificationSvc domain.NotificationService,
	uploads domain.UploadCoordinator,
	defaultPhotoURL string,
	logger *zap.Logger,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:        userRepo,
		pendingStore:    pendingStore,
		passwordSvc:     passwordSvc,
		tokenSvc:        tokenSvc,
		otpGen:          otpGen,
		notificationSvc: notificationSvc,
		uploads:         uploads,
		defaultPhotoURL: defaultPhotoURL,
		logger:          logger,
	}
}

// Register implements domain.AuthService. The draft is stored before
// the notification goes out: a failed email leaves the draft in place
// so verification can still succeed once the user obtains the code
// through another channel.
func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password string) error {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return domain.ErrEmailTaken
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	code, expiresAt, err := s.otpGen.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	draft := &domain.PendingRegistration{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		OTP:          code,
		ExpiresAt:    expiresAt,
	}

	if err := s.pendingStore.Put(ctx, draft); err != nil {
		return fmt.Errorf("failed to store pending registration: %w", err)
	}

	body := fmt.Sprintf("Your registration code is: %s. Valid for %d minutes.", code, int(time.Until(expiresAt).Minutes())+1)
	if err := s.notificationSvc.SendEmail(email, "Registration verification code", body); err != nil {
		s.logger.Warn("registration otp email failed, draft kept for retry",
			zap.String("email", email),
			zap.Error(err))
		return domain.ErrNotifyFailed
	}

	return nil
}

// VerifyRegistration implements domain.AuthService. An expired draft is
// consumed on the spot, so a resubmitted register is required; a draft
// can never produce two accounts.
func (s *AuthServiceImpl) VerifyRegistration(ctx context.Context, email, otp string) (*domain.User, error) {
	draft, err := s.pendingStore.Get(ctx, email)
	if err != nil {
		return nil, domain.ErrPendingNotFound
	}

	if draft.OTP != otp {
		return nil, domain.ErrOTPInvalid
	}

	if draft.Expired(time.Now()) {
		_ = s.pendingStore.Delete(ctx, email)
		return nil, domain.ErrOTPExpired
	}

	user := &domain.User{
		Name:         draft.Name,
		Email:        draft.Email,
		PasswordHash: draft.PasswordHash,
		PhotoURL:     s.defaultPhotoURL,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.pendingStore.Delete(ctx, email); err != nil {
		s.logger.Warn("failed to delete consumed registration draft",
			zap.String("email", email),
			zap.Error(err))
	}

	return user, nil
}

// Login implements domain.AuthService
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	// An account without a hash never completed verification and must
	// not be able to log in.
	if !user.HasPassword() {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenSvc.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &domain.AuthResult{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// CurrentUser implements domain.AuthService
func (s *AuthServiceImpl) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// ForgotPassword implements domain.AuthService. A fresh code overwrites
// any previous reset token; only the newest is valid. Notification
// failure is reported but the token stays stored so delivery can be
// retried through a side channel.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	code, _, err := s.otpGen.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate reset code: %w", err)
	}

	if err := s.userRepo.SetResetToken(ctx, user.ID, code); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	body := fmt.Sprintf("Your password reset code is: %s", code)
	if err := s.notificationSvc.SendEmail(email, "Password reset", body); err != nil {
		s.logger.Warn("password reset email failed, token kept for retry",
			zap.String("email", email),
			zap.Error(err))
		return domain.ErrNotifyFailed
	}

	return nil
}

// ResetPassword implements domain.AuthService. Token consumption is a
// single compare-and-clear in the repository, so one of two concurrent
// resets with the same token always observes ErrResetTokenInvalid.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.userRepo.ConsumeResetToken(ctx, token, hashedPassword); err != nil {
		return err
	}
	return nil
}

// UpdateName implements domain.AuthService
func (s *AuthServiceImpl) UpdateName(ctx context.Context, userID, name string) (*domain.User, error) {
	return s.userRepo.UpdateName(ctx, userID, name)
}

// UpdateProfilePhoto implements domain.AuthService. The coordinator
// uploads first and persists the URL only after the write is confirmed.
func (s *AuthServiceImpl) UpdateProfilePhoto(ctx context.Context, userID string, upload domain.Upload) (string, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return "", err
	}

	return s.uploads.Attach(ctx, upload, "profiles", func(ctx context.Context, url string) error {
		_, err := s.userRepo.UpdatePhotoURL(ctx, userID, url)
		return err
	})
}

// ResetProfilePhoto implements domain.AuthService. The stored blob is
// left alone; only the pointer goes back to the default photo.
func (s *AuthServiceImpl) ResetProfilePhoto(ctx context.Context, userID string) (string, error) {
	if _, err := s.userRepo.UpdatePhotoURL(ctx, userID, s.defaultPhotoURL); err != nil {
		return "", err
	}
	return s.defaultPhotoURL, nil
}
