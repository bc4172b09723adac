package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Charwekey/TechWrapSaga/internal/auth"
)

// TokenHeader is the request header carrying the auth token.
// The name is part of the public API contract with the web client.
const TokenHeader = "auth-token"

type contextKey struct{ name string }

var userIDKey = contextKey{"user_id"}

// RequireAuth returns a middleware that verifies the auth-token header and
// stores the authenticated user ID in the request context. Requests with a
// missing or invalid token get a 401 and never reach the next handler.
func RequireAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(TokenHeader)
			if token == "" {
				unauthorized(w, "access denied")
				return
			}

			userID, err := auth.VerifyToken(token, secret)
			if err != nil {
				unauthorized(w, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user ID stored by RequireAuth.
// ok is false when the request did not pass through the middleware.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	//nolint:errcheck — nothing to do if the client went away
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": "unauthorized", "message": msg},
	})
}
