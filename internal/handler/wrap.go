package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Charwekey/TechWrapSaga/internal/middleware"
	"github.com/Charwekey/TechWrapSaga/internal/service"
)

// GetWrap handles GET /api/wraps/{id}. The endpoint is public: recaps are
// shared by id, no token required. A malformed id is indistinguishable from
// a missing wrap.
func (s *Server) GetWrap(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "not_found", "wrap not found")
		return
	}

	wrap, err := s.wraps.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "wrap not found")
		return
	}

	respondJSON(w, http.StatusOK, wrap)
}

// SaveWrap handles POST /api/wraps (authenticated upsert).
func (s *Server) SaveWrap(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "access denied")
		return
	}

	var body struct {
		Title              string   `json:"title"`
		Theme              string   `json:"theme"`
		EventsAttended     []string `json:"events_attended"`
		EventsSpokenAt     []string `json:"events_spoken_at"`
		Projects           []string `json:"projects"`
		ToolsLearned       []string `json:"tools_learned"`
		Challenges         []string `json:"challenges"`
		OvercomeChallenges []string `json:"overcome_challenges"`
		Goals2026          []string `json:"goals_2026"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	wrap, err := s.wraps.Save(r.Context(), userID, service.SaveInput{
		Title:              body.Title,
		Theme:              body.Theme,
		EventsAttended:     body.EventsAttended,
		EventsSpokenAt:     body.EventsSpokenAt,
		Projects:           body.Projects,
		ToolsLearned:       body.ToolsLearned,
		Challenges:         body.Challenges,
		OvercomeChallenges: body.OvercomeChallenges,
		Goals2026:          body.Goals2026,
	})
	if err != nil {
		respondServiceError(w, err, "user not found")
		return
	}

	respondJSON(w, http.StatusOK, wrap)
}
