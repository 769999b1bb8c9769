package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/josptrra/be-rasadhana/domain"
	"github.com/josptrra/be-rasadhana/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(tokenSvc domain.TokenService) *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokenSvc), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		email, _ := c.Get("user_email")
		c.JSON(http.StatusOK, gin.H{"userId": userID, "email": email})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	validClaims := &domain.TokenClaims{
		UserID:    "u1",
		Email:     "ana@x.com",
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}

	tests := []struct {
		name           string
		header         string
		verifyErr      error
		expectedStatus int
	}{
		{
			name:           "valid bearer token",
			header:         "Bearer good-token",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing header",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			header:         "Basic abc123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			header:         "Bearer stale-token",
			verifyErr:      domain.ErrTokenExpired,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			header:         "Bearer bad-token",
			verifyErr:      domain.ErrTokenInvalid,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed token",
			header:         "Bearer garbage",
			verifyErr:      domain.ErrTokenMalformed,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocks.NewMockTokenService()
			tokenSvc.VerifyFunc = func(token string) (*domain.TokenClaims, error) {
				if tt.verifyErr != nil {
					return nil, tt.verifyErr
				}
				return validClaims, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			protectedRouter(tokenSvc).ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_SetsClaims(t *testing.T) {
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.VerifyFunc = func(token string) (*domain.TokenClaims, error) {
		return &domain.TokenClaims{
			UserID:    "u1",
			Email:     "ana@x.com",
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		}, nil
	}

	var gotUserID, gotEmail interface{}
	var gotExpiry interface{}
	r := gin.New()
	r.GET("/claims", AuthMiddleware(tokenSvc), func(c *gin.Context) {
		gotUserID, _ = c.Get("user_id")
		gotEmail, _ = c.Get("user_email")
		gotExpiry, _ = c.Get("token_expires_at")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/claims", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if gotUserID != "u1" || gotEmail != "ana@x.com" {
		t.Errorf("claims not propagated: userId=%v email=%v", gotUserID, gotEmail)
	}
	if _, ok := gotExpiry.(time.Time); !ok {
		t.Errorf("expected token_expires_at as time.Time, got %T", gotExpiry)
	}
}
