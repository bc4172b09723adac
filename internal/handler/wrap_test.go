package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Charwekey/TechWrapSaga/internal/domain"
	"github.com/Charwekey/TechWrapSaga/internal/middleware"
	"github.com/Charwekey/TechWrapSaga/internal/service"
)

func wrapFixture() domain.Wrap {
	return domain.Wrap{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Year:         domain.WrapYear,
		Name:         "Ada",
		Title:        "Engineer",
		Theme:        "hybrid",
		Projects:     []string{"API", "CLI"},
		ToolsLearned: []string{"Go", "Rust"},
	}
}

// ---- GET /api/wraps/{id} ---------------------------------------------------

func TestGetWrap_200(t *testing.T) {
	fixture := wrapFixture()
	wraps := &mockWrapServicer{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Wrap, error) {
			assert.Equal(t, fixture.ID, id)
			return fixture, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/wraps/"+fixture.ID.String(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, wraps, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Wrap
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.ID)
	assert.Equal(t, "Ada", resp.Name)
	assert.Equal(t, []string{"Go", "Rust"}, resp.ToolsLearned)
}

func TestGetWrap_404_NotFound(t *testing.T) {
	wraps := &mockWrapServicer{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Wrap, error) {
			return domain.Wrap{}, fmt.Errorf("service.WrapService.GetByID: %w", domain.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/wraps/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, wraps, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	code, _ := decodeError(t, rec.Body)
	assert.Equal(t, "not_found", code)
}

// TestGetWrap_404_MalformedID: a non-UUID id looks identical to a missing
// wrap from the outside; the service is never consulted.
func TestGetWrap_404_MalformedID(t *testing.T) {
	wraps := &mockWrapServicer{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Wrap, error) {
			t.Fatal("service must not be called for a malformed id")
			return domain.Wrap{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/wraps/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, wraps, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- POST /api/wraps -------------------------------------------------------

func TestSaveWrap_200(t *testing.T) {
	userID := uuid.New()
	wraps := &mockWrapServicer{
		save: func(_ context.Context, gotUser uuid.UUID, in service.SaveInput) (domain.Wrap, error) {
			assert.Equal(t, userID, gotUser, "user id must come from the token, not the body")
			assert.Equal(t, "girly", in.Theme)
			assert.Equal(t, []string{"Go"}, in.ToolsLearned)
			return domain.Wrap{ID: uuid.New(), UserID: gotUser, Theme: in.Theme}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/wraps",
		jsonBody(t, map[string]any{"theme": "girly", "tools_learned": []string{"Go"}}))
	req.Header.Set(middleware.TokenHeader, authToken(t, userID))
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, wraps, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSaveWrap_401_NoToken(t *testing.T) {
	wraps := &mockWrapServicer{
		save: func(_ context.Context, _ uuid.UUID, _ service.SaveInput) (domain.Wrap, error) {
			t.Fatal("handler must not run without a token")
			return domain.Wrap{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/wraps", jsonBody(t, map[string]any{}))
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, wraps, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSaveWrap_401_BadToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/wraps", jsonBody(t, map[string]any{}))
	req.Header.Set(middleware.TokenHeader, "not-a-token")
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, &mockWrapServicer{}, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSaveWrap_400_UnknownTheme(t *testing.T) {
	wraps := &mockWrapServicer{
		save: func(_ context.Context, _ uuid.UUID, _ service.SaveInput) (domain.Wrap, error) {
			return domain.Wrap{}, fmt.Errorf("%w: theme must be one of girly, neutral, hybrid", domain.ErrValidation)
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/wraps",
		jsonBody(t, map[string]any{"theme": "sparkly"}))
	req.Header.Set(middleware.TokenHeader, authToken(t, uuid.New()))
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, wraps, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	code, msg := decodeError(t, rec.Body)
	assert.Equal(t, "validation_error", code)
	assert.Equal(t, "theme must be one of girly, neutral, hybrid", msg)
}
