package handler

import (
	"net/http"

	"github.com/Charwekey/TechWrapSaga/internal/middleware"
)

// Export handles POST /api/export. It returns the export descriptor for the
// caller's wrap — canonical share URL plus deterministic PNG file name.
// Image capture itself is the client's job; the server never renders pixels.
func (s *Server) Export(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "access denied")
		return
	}

	desc, err := s.export.Descriptor(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err, "no wrap to export")
		return
	}

	respondJSON(w, http.StatusOK, desc)
}
