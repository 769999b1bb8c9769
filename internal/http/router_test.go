package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/josptrra/be-rasadhana/domain"
	"github.com/josptrra/be-rasadhana/internal/http/handlers"
	"github.com/josptrra/be-rasadhana/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter(authSvc domain.AuthService, tokenSvc domain.TokenService) *gin.Engine {
	return BuildRouter(
		handlers.NewAuthHandlers(authSvc),
		handlers.NewPhotoHandlers(mocks.NewMockPhotoService()),
		handlers.NewRecipeHandlers(mocks.NewMockRecipeService()),
		tokenSvc,
	)
}

func TestBuildRouter_Health(t *testing.T) {
	r := testRouter(mocks.NewMockAuthService(), mocks.NewMockTokenService())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestBuildRouter_Root(t *testing.T) {
	r := testRouter(mocks.NewMockAuthService(), mocks.NewMockTokenService())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["success"] != true {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestBuildRouter_MeRequiresAuth(t *testing.T) {
	r := testRouter(mocks.NewMockAuthService(), mocks.NewMockTokenService())

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", w.Code)
	}
}

func TestBuildRouter_MeWithToken(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	authSvc.CurrentUserFunc = func(ctx context.Context, userID string) (*domain.User, error) {
		return &domain.User{ID: userID, Name: "Ana", Email: "ana@x.com"}, nil
	}

	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.VerifyFunc = func(token string) (*domain.TokenClaims, error) {
		return &domain.TokenClaims{
			UserID:    "u1",
			Email:     "ana@x.com",
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		}, nil
	}

	r := testRouter(authSvc, tokenSvc)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Data["id"] != "u1" || body.Data["email"] != "ana@x.com" {
		t.Errorf("unexpected identity payload: %v", body.Data)
	}
}

func TestBuildRouter_PublicRoutesExist(t *testing.T) {
	r := testRouter(mocks.NewMockAuthService(), mocks.NewMockTokenService())

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/auth/register"},
		{http.MethodPost, "/auth/verify-otp"},
		{http.MethodPost, "/auth/login"},
		{http.MethodPost, "/auth/forgot-password"},
		{http.MethodPost, "/auth/reset-password"},
		{http.MethodPatch, "/auth/update/u1"},
		{http.MethodPatch, "/auth/update-profile-photo"},
		{http.MethodDelete, "/auth/delete-profile-photo"},
		{http.MethodPost, "/photos/upload-photo"},
		{http.MethodGet, "/photos/latest/u1"},
		{http.MethodGet, "/photos/u1"},
		{http.MethodPost, "/recipes"},
		{http.MethodGet, "/recipes"},
		{http.MethodPatch, "/recipes/r1"},
		{http.MethodDelete, "/recipes/r1"},
	}

	for _, route := range routes {
		req := httptest.NewRequest(route.method, route.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code == http.StatusNotFound && route.method == http.MethodGet {
			// GET endpoints may legitimately 404 on empty data, but the
			// route itself must exist; gin's no-route handler returns a
			// plain 404 with an empty body.
			if w.Body.Len() == 0 {
				t.Errorf("%s %s is not routed", route.method, route.path)
			}
			continue
		}
		if w.Code == http.StatusNotFound && w.Body.Len() == 0 {
			t.Errorf("%s %s is not routed", route.method, route.path)
		}
	}
}
