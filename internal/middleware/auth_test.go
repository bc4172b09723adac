package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Charwekey/TechWrapSaga/internal/auth"
	"github.com/Charwekey/TechWrapSaga/internal/middleware"
)

var testSecret = []byte("test-secret")

// echoUserHandler writes 200 and records the user ID RequireAuth stored in
// the request context.
func echoUserHandler(gotID *uuid.UUID, gotOK *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotID, *gotOK = middleware.UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_ValidToken(t *testing.T) {
	userID := uuid.New()
	token, err := auth.GenerateToken(userID, testSecret, time.Hour)
	require.NoError(t, err)

	var gotID uuid.UUID
	var gotOK bool
	h := middleware.RequireAuth(testSecret)(echoUserHandler(&gotID, &gotOK))

	req := httptest.NewRequest(http.MethodPost, "/api/wraps", nil)
	req.Header.Set(middleware.TokenHeader, token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotOK)
	assert.Equal(t, userID, gotID)
}

func TestRequireAuth_MissingToken(t *testing.T) {
	called := false
	h := middleware.RequireAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/wraps", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called, "handler must not run without a token")
	assert.Contains(t, rec.Body.String(), "unauthorized")
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	h := middleware.RequireAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a bad token")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/wraps", nil)
	req.Header.Set(middleware.TokenHeader, "not-a-jwt")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestRequireAuth_WrongSecret: a token signed with a different secret is
// rejected like any other invalid token.
func TestRequireAuth_WrongSecret(t *testing.T) {
	token, err := auth.GenerateToken(uuid.New(), []byte("other-secret"), time.Hour)
	require.NoError(t, err)

	h := middleware.RequireAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a foreign token")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/wraps", nil)
	req.Header.Set(middleware.TokenHeader, token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserID_AbsentWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := middleware.UserID(req.Context())
	assert.False(t, ok)
}
