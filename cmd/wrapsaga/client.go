package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Charwekey/TechWrapSaga/internal/domain"
)

// fetchWrap retrieves a wrap from the API by id.
// A 404 comes back as domain.ErrNotFound so callers can message it cleanly.
func fetchWrap(ctx context.Context, base string, id uuid.UUID) (domain.Wrap, error) {
	url := fmt.Sprintf("%s/api/wraps/%s", base, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Wrap{}, err
	}

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return domain.Wrap{}, fmt.Errorf("fetch wrap: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.Wrap{}, fmt.Errorf("wrap %s: %w", id, domain.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return domain.Wrap{}, fmt.Errorf("fetch wrap: unexpected status %s", resp.Status)
	}

	var wrap domain.Wrap
	if err := json.NewDecoder(resp.Body).Decode(&wrap); err != nil {
		return domain.Wrap{}, fmt.Errorf("decode wrap: %w", err)
	}
	return wrap, nil
}
