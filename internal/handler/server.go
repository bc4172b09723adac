// Package handler implements the HTTP handlers for the TechWrapSaga API.
// All handlers are methods on Server. Methods are split into area-specific
// files (auth.go, wrap.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Charwekey/TechWrapSaga/internal/domain"
	"github.com/Charwekey/TechWrapSaga/internal/service"
)

// AuthServicer defines the auth operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type AuthServicer interface {
	Signup(ctx context.Context, in service.SignupInput) (domain.User, string, error)
	Login(ctx context.Context, email, password string) (domain.User, string, error)
}

// WrapServicer defines the wrap operations the handlers depend on.
type WrapServicer interface {
	Save(ctx context.Context, userID uuid.UUID, in service.SaveInput) (domain.Wrap, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Wrap, error)
}

// ExportServicer defines the export operations the handlers depend on.
type ExportServicer interface {
	Descriptor(ctx context.Context, userID uuid.UUID) (domain.ExportDescriptor, error)
}

// Server holds the dependencies for all API endpoints.
type Server struct {
	auth   AuthServicer
	wraps  WrapServicer
	export ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(auth AuthServicer, wraps WrapServicer, export ExportServicer) *Server {
	return &Server{auth: auth, wraps: wraps, export: export}
}

// Routes registers every public endpoint on r. Authenticated routes must be
// mounted behind middleware.RequireAuth by the caller, which is why Routes
// takes the auth middleware as an argument instead of importing it.
func (s *Server) Routes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Get("/healthz", s.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", s.Signup)
		r.Post("/auth/login", s.Login)

		r.Get("/themes", s.ListThemes)
		r.Get("/wraps/{id}", s.GetWrap)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/wraps", s.SaveWrap)
			r.Post("/export", s.Export)
		})
	})
}
