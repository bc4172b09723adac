package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Charwekey/TechWrapSaga/internal/domain"
	"github.com/Charwekey/TechWrapSaga/internal/service"
)

// authResponse is returned by both signup and login: the token plus the
// public view of the account, mirroring what the web client persists.
type authResponse struct {
	Token string     `json:"token"`
	User  authedUser `json:"user"`
}

type authedUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Title string `json:"title"`
	Theme string `json:"theme"`
}

// Signup handles POST /api/auth/signup.
func (s *Server) Signup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Title    string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	user, token, err := s.auth.Signup(r.Context(), service.SignupInput{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
		Title:    body.Title,
	})
	if err != nil {
		respondServiceError(w, err, "user not found")
		return
	}

	w.Header().Set("auth-token", token)
	respondJSON(w, http.StatusCreated, newAuthResponse(user, token))
}

// Login handles POST /api/auth/login.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	user, token, err := s.auth.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		respondServiceError(w, err, "user not found")
		return
	}

	w.Header().Set("auth-token", token)
	respondJSON(w, http.StatusOK, newAuthResponse(user, token))
}

func newAuthResponse(user domain.User, token string) authResponse {
	return authResponse{
		Token: token,
		User: authedUser{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
			Title: user.Title,
			Theme: user.Theme,
		},
	}
}
