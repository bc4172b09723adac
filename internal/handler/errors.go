package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Charwekey/TechWrapSaga/internal/domain"
)

// errorBody is the uniform error envelope: {"error":{"code":..., "message":...}}.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck — nothing to do if the client went away
	json.NewEncoder(w).Encode(v)
}

// respondError writes the uniform error envelope.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// respondServiceError maps a service error to its HTTP representation.
// notFoundMsg names what was being looked up — the handler is the layer that
// knows. Unmapped errors become an opaque 500; the detail stays in the logs.
func respondServiceError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, "not_found", notFoundMsg)
	case errors.Is(err, domain.ErrValidation):
		respondError(w, http.StatusBadRequest, "validation_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrEmailTaken):
		respondError(w, http.StatusBadRequest, "email_taken", domain.ErrEmailTaken.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondError(w, http.StatusBadRequest, "invalid_credentials", domain.ErrInvalidCredentials.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "service.WrapService.Save: validation error: theme must be one
// of girly, neutral, hybrid" → "theme must be one of girly, neutral, hybrid".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
