package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Charwekey/TechWrapSaga/internal/domain"
	"github.com/Charwekey/TechWrapSaga/internal/service"
)

func userFixture() domain.User {
	return domain.User{
		ID:    uuid.New(),
		Name:  "Ada",
		Email: "ada@example.com",
		Title: "Engineer",
		Theme: "neutral",
	}
}

// ---- POST /api/auth/signup -------------------------------------------------

func TestSignup_201(t *testing.T) {
	fixture := userFixture()
	authSvc := &mockAuthServicer{
		signup: func(_ context.Context, in service.SignupInput) (domain.User, string, error) {
			assert.Equal(t, "Ada", in.Name)
			assert.Equal(t, "ada@example.com", in.Email)
			return fixture, "tok-123", nil
		},
	}

	body := jsonBody(t, map[string]any{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "hunter2",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", body)
	rec := httptest.NewRecorder()

	newHTTPHandler(authSvc, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "tok-123", rec.Header().Get("auth-token"))

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "tok-123", resp.Token)
	assert.Equal(t, fixture.ID.String(), resp.User.ID)
	assert.Equal(t, "Ada", resp.User.Name)
	assert.NotContains(t, rec.Body.String(), "password", "hash must never serialize")
}

func TestSignup_400_Validation(t *testing.T) {
	authSvc := &mockAuthServicer{
		signup: func(_ context.Context, _ service.SignupInput) (domain.User, string, error) {
			return domain.User{}, "", fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		jsonBody(t, map[string]any{"name": "Ada", "email": "ada@example.com", "password": "123"}))
	rec := httptest.NewRecorder()

	newHTTPHandler(authSvc, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	code, msg := decodeError(t, rec.Body)
	assert.Equal(t, "validation_error", code)
	assert.Equal(t, "password must be at least 6 characters", msg, "wrapping prefixes must be stripped")
}

func TestSignup_400_EmailTaken(t *testing.T) {
	authSvc := &mockAuthServicer{
		signup: func(_ context.Context, _ service.SignupInput) (domain.User, string, error) {
			return domain.User{}, "", fmt.Errorf("service.AuthService.Signup: %w", domain.ErrEmailTaken)
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		jsonBody(t, map[string]any{"name": "Ada", "email": "ada@example.com", "password": "hunter2"}))
	rec := httptest.NewRecorder()

	newHTTPHandler(authSvc, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	code, _ := decodeError(t, rec.Body)
	assert.Equal(t, "email_taken", code)
}

func TestSignup_400_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	newHTTPHandler(&mockAuthServicer{}, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- POST /api/auth/login --------------------------------------------------

func TestLogin_200(t *testing.T) {
	fixture := userFixture()
	authSvc := &mockAuthServicer{
		login: func(_ context.Context, email, password string) (domain.User, string, error) {
			assert.Equal(t, "ada@example.com", email)
			assert.Equal(t, "hunter2", password)
			return fixture, "tok-456", nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		jsonBody(t, map[string]any{"email": "ada@example.com", "password": "hunter2"}))
	rec := httptest.NewRecorder()

	newHTTPHandler(authSvc, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok-456", rec.Header().Get("auth-token"))
}

func TestLogin_400_InvalidCredentials(t *testing.T) {
	authSvc := &mockAuthServicer{
		login: func(_ context.Context, _, _ string) (domain.User, string, error) {
			return domain.User{}, "", domain.ErrInvalidCredentials
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		jsonBody(t, map[string]any{"email": "ada@example.com", "password": "wrong"}))
	rec := httptest.NewRecorder()

	newHTTPHandler(authSvc, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	code, _ := decodeError(t, rec.Body)
	assert.Equal(t, "invalid_credentials", code)
}
