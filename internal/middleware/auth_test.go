package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/1conorsteward/Appointment-Now/internal/config"
	"github.com/1conorsteward/Appointment-Now/internal/session"
)

type fakeSessions struct {
	live map[string]uint
}

func (f *fakeSessions) Validate(ctx context.Context, jti string) (uint, error) {
	if id, ok := f.live[jti]; ok {
		return id, nil
	}
	return 0, session.ErrNotFound
}

func signToken(t *testing.T, secret string, sub uint, jti string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"jti": jti,
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func authRouter(cfg *config.Config, sessions SessionValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(cfg, sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.MustGet(ContextUserID)})
	})
	return r
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}
	sessions := &fakeSessions{live: map[string]uint{"jti-1": 7}}
	r := authRouter(cfg, sessions)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "testsecret", 7, "jti-1"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddleware_RevokedSession(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}
	r := authRouter(cfg, &fakeSessions{live: map[string]uint{}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "testsecret", 7, "jti-1"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("valid signature with dead session must be rejected, got %d", w.Code)
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}
	sessions := &fakeSessions{live: map[string]uint{"jti-1": 7}}
	r := authRouter(cfg, sessions)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "othersecret", 7, "jti-1"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", w.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}
	r := authRouter(cfg, &fakeSessions{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", w.Code)
	}
}

func TestAuthMiddleware_SessionUserMismatch(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}
	sessions := &fakeSessions{live: map[string]uint{"jti-1": 8}}
	r := authRouter(cfg, sessions)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "testsecret", 7, "jti-1"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("session bound to another user must be rejected, got %d", w.Code)
	}
}
