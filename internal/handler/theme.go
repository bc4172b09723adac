package handler

import (
	"net/http"

	"github.com/Charwekey/TechWrapSaga/internal/recap"
)

// themeEntry is the public shape of one theme catalog item.
type themeEntry struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

// ListThemes handles GET /api/themes. The catalog is static: the three
// variants and their color keywords, in fixed order.
func (s *Server) ListThemes(w http.ResponseWriter, r *http.Request) {
	out := make([]themeEntry, 0, len(recap.Catalog))
	for _, t := range recap.Catalog {
		out = append(out, themeEntry{
			ID:     string(t.ID),
			Name:   t.Name,
			Colors: t.Keywords,
		})
	}
	respondJSON(w, http.StatusOK, out)
}
