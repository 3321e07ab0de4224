package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"taskboard-be/internal/apperrors"
	"taskboard-be/internal/entities"
	"taskboard-be/internal/models"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockAuthService implements service.AuthService for middleware tests
type mockAuthService struct {
	resolveFunc func(token string) (*entities.User, error)
}

func (m *mockAuthService) Register(req *models.SignupRequest) (*models.AuthResponse, error) {
	return nil, nil
}

func (m *mockAuthService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	return nil, nil
}

func (m *mockAuthService) ResolveToken(token string) (*entities.User, error) {
	return m.resolveFunc(token)
}

func newAuthTestRouter(auth *mockAuthService) *gin.Engine {
	router := gin.New()
	router.GET("/protected", AuthMiddleware(auth), func(c *gin.Context) {
		userID := c.MustGet(ContextUserIDKey).(int)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	router := newAuthTestRouter(&mockAuthService{
		resolveFunc: func(token string) (*entities.User, error) {
			t.Fatal("ResolveToken should not be called without a header")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	router := newAuthTestRouter(&mockAuthService{
		resolveFunc: func(token string) (*entities.User, error) {
			t.Fatal("ResolveToken should not be called for malformed headers")
			return nil, nil
		},
	})

	for _, header := range []string{"abc", "Basic abc", "Bearer", "Bearer a b"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: got %d, want 401", header, w.Code)
		}
	}
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	router := newAuthTestRouter(&mockAuthService{
		resolveFunc: func(token string) (*entities.User, error) {
			return nil, apperrors.NewUnauthorized("Invalid or expired token")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", w.Code)
	}
}

func TestAuthMiddlewarePassesResolvedUser(t *testing.T) {
	router := newAuthTestRouter(&mockAuthService{
		resolveFunc: func(token string) (*entities.User, error) {
			if token != "good-token" {
				t.Errorf("got token %q, want good-token", token)
			}
			return &entities.User{ID: 7, Email: "ann@x.com"}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", w.Code)
	}
}
