package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/josptrra/be-rasadhana/domain"
)

// AuthHandlers handles identity and profile HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// VerifyOTPRequest represents an OTP verification request
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest represents a forgot-password request
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest represents a reset-password request
type ResetPasswordRequest struct {
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// UpdateNameRequest represents a profile name update
type UpdateNameRequest struct {
	Name string `json:"name" binding:"required"`
}

// Register handles POST /auth/register. The OTP travels only through
// the notification channel, never in the response body.
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.authSvc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			fail(c, http.StatusConflict, "Email already registered")
		case errors.Is(err, domain.ErrNotifyFailed):
			fail(c, http.StatusInternalServerError, "Failed to send verification email")
		default:
			fail(c, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	ok(c, http.StatusOK, "Verification code sent to your email", nil)
}

// VerifyOTP handles POST /auth/verify-otp
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authSvc.VerifyRegistration(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPendingNotFound):
			fail(c, http.StatusNotFound, "No pending registration for this email")
		case errors.Is(err, domain.ErrOTPInvalid):
			fail(c, http.StatusBadRequest, "Invalid verification code")
		case errors.Is(err, domain.ErrOTPExpired):
			fail(c, http.StatusBadRequest, "Verification code has expired")
		default:
			fail(c, http.StatusInternalServerError, "Verification failed")
		}
		return
	}

	ok(c, http.StatusOK, "Registration complete, account created", gin.H{
		"userId": user.ID,
		"email":  user.Email,
	})
}

// Login handles POST /auth/login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			fail(c, http.StatusNotFound, "Email not registered")
		case errors.Is(err, domain.ErrInvalidCredentials):
			fail(c, http.StatusUnauthorized, "Wrong email or password")
		default:
			fail(c, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	ok(c, http.StatusOK, "Login successful", gin.H{
		"token":     result.Token,
		"expiresAt": result.ExpiresAt,
		"user": gin.H{
			"id":       result.User.ID,
			"name":     result.User.Name,
			"email":    result.User.Email,
			"photoUrl": result.User.PhotoURL,
		},
	})
}

// Me handles GET /auth/me (requires authentication)
func (h *AuthHandlers) Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		fail(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	user, err := h.authSvc.CurrentUser(c.Request.Context(), userID.(string))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			fail(c, http.StatusNotFound, "User not found")
			return
		}
		fail(c, http.StatusInternalServerError, "Failed to load user")
		return
	}

	tokenExp, _ := c.Get("token_expires_at")

	ok(c, http.StatusOK, "", gin.H{
		"id":             user.ID,
		"name":           user.Name,
		"email":          user.Email,
		"photoUrl":       user.PhotoURL,
		"createdAt":      user.CreatedAt,
		"updatedAt":      user.UpdatedAt,
		"tokenExpiresAt": tokenExp,
	})
}

// UpdateName handles PATCH /auth/update/:userId
func (h *AuthHandlers) UpdateName(c *gin.Context) {
	var req UpdateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Field name is required")
		return
	}

	user, err := h.authSvc.UpdateName(c.Request.Context(), c.Param("userId"), req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			fail(c, http.StatusNotFound, "User not found")
			return
		}
		fail(c, http.StatusInternalServerError, "Failed to update name")
		return
	}

	ok(c, http.StatusOK, "Name updated", gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// ForgotPassword handles POST /auth/forgot-password
func (h *AuthHandlers) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.authSvc.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			fail(c, http.StatusNotFound, "Email not registered")
		case errors.Is(err, domain.ErrNotifyFailed):
			fail(c, http.StatusInternalServerError, "Failed to send reset email")
		default:
			fail(c, http.StatusInternalServerError, "Request failed")
		}
		return
	}

	ok(c, http.StatusOK, "Reset code sent to your email", nil)
}

// ResetPassword handles POST /auth/reset-password
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.authSvc.ResetPassword(c.Request.Context(), req.OTP, req.NewPassword)
	if err != nil {
		if errors.Is(err, domain.ErrResetTokenInvalid) {
			fail(c, http.StatusBadRequest, "Invalid reset code")
			return
		}
		fail(c, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	ok(c, http.StatusOK, "Password has been reset", nil)
}

// UpdateProfilePhoto handles PATCH /auth/update-profile-photo
func (h *AuthHandlers) UpdateProfilePhoto(c *gin.Context) {
	userID := c.PostForm("userId")
	if userID == "" {
		fail(c, http.StatusBadRequest, "Field userId is required")
		return
	}

	upload, err := readUpload(c, "photo")
	if err != nil {
		fail(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	photoURL, err := h.authSvc.UpdateProfilePhoto(c.Request.Context(), userID, *upload)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			fail(c, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrStorage):
			fail(c, http.StatusInternalServerError, "Failed to upload photo to storage")
		case errors.Is(err, domain.ErrPersist):
			fail(c, http.StatusInternalServerError, "Photo stored but could not be saved to the profile")
		default:
			fail(c, http.StatusInternalServerError, "Failed to update profile photo")
		}
		return
	}

	ok(c, http.StatusOK, "Profile photo updated", gin.H{"photoUrl": photoURL})
}

// DeleteProfilePhoto handles DELETE /auth/delete-profile-photo
func (h *AuthHandlers) DeleteProfilePhoto(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Field userId is required")
		return
	}

	photoURL, err := h.authSvc.ResetProfilePhoto(c.Request.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			fail(c, http.StatusNotFound, "User not found")
			return
		}
		fail(c, http.StatusInternalServerError, "Failed to delete profile photo")
		return
	}

	ok(c, http.StatusOK, "Profile photo removed", gin.H{"photoUrl": photoURL})
}

// readUpload loads a multipart file into memory as a domain.Upload.
func readUpload(c *gin.Context, field string) (*domain.Upload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, domain.ErrNoFile
	}
	return uploadFromHeader(fileHeader)
}

func uploadFromHeader(fileHeader *multipart.FileHeader) (*domain.Upload, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &domain.Upload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func ok(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}
