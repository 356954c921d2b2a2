package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"prosports-server/internal/auth"
	"prosports-server/internal/models"
)

// stubSessions rejects everything; route tests only care about wiring.
type stubSessions struct{}

func (stubSessions) Login(context.Context, string, string) (*models.AuthResponse, error) {
	return nil, models.ErrInvalidCredentials
}

func (stubSessions) Register(context.Context, auth.RegisterInput) (*models.AuthResponse, error) {
	return nil, models.ErrEmailAlreadyRegistered
}

func (stubSessions) Refresh(context.Context, uuid.UUID) (*models.TokenResponse, error) {
	return nil, models.ErrInvalidSession
}

func (stubSessions) VerifyToken(context.Context, string) (*auth.Claims, error) {
	return nil, models.ErrInvalidSession
}

func (stubSessions) Logout(context.Context, *auth.Claims) error {
	return nil
}

func TestAuthRoutes_CredentialEndpointsAreThrottled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	limiterHits := 0
	limiter := func(c *gin.Context) {
		limiterHits++
		c.Next()
	}

	h := NewAuthHandler(stubSessions{}, nil)
	h.RegisterRoutes(router.Group("/api/v1"), limiter)

	post := func(path, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)
		return rec
	}

	// All three endpoints that accept unauthenticated credential material
	// go through the rate limiter.
	rec := post("/api/v1/auth/verify", `{"token":"junk"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 1, limiterHits)

	post("/api/v1/auth/login", `{"email":"a@b.c","password":"password1"}`)
	assert.Equal(t, 2, limiterHits)

	post("/api/v1/auth/register", `{"email":"a@b.c","password":"password1"}`)
	assert.Equal(t, 3, limiterHits)

	// Session-guarded endpoints are not throttled by it.
	rec = post("/api/v1/auth/refresh", `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 3, limiterHits)
}
