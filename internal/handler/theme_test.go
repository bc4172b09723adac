package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestListThemes_200: the catalog is static and public — three themes in
// fixed order, each with its color keywords.
func TestListThemes_200(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/themes", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []struct {
		ID     string   `json:"id"`
		Name   string   `json:"name"`
		Colors []string `json:"colors"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 3)
	assert.Equal(t, "girly", resp[0].ID)
	assert.Equal(t, "neutral", resp[1].ID)
	assert.Equal(t, "hybrid", resp[2].ID)
	for _, entry := range resp {
		assert.NotEmpty(t, entry.Name)
		assert.NotEmpty(t, entry.Colors)
	}
}
