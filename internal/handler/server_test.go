package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Charwekey/TechWrapSaga/internal/auth"
	"github.com/Charwekey/TechWrapSaga/internal/domain"
	"github.com/Charwekey/TechWrapSaga/internal/handler"
	"github.com/Charwekey/TechWrapSaga/internal/middleware"
	"github.com/Charwekey/TechWrapSaga/internal/service"
)

var testSecret = []byte("test-secret")

// mockAuthServicer is a test double for handler.AuthServicer.
// Set only the method fields your test needs.
type mockAuthServicer struct {
	signup func(ctx context.Context, in service.SignupInput) (domain.User, string, error)
	login  func(ctx context.Context, email, password string) (domain.User, string, error)
}

func (m *mockAuthServicer) Signup(ctx context.Context, in service.SignupInput) (domain.User, string, error) {
	return m.signup(ctx, in)
}
func (m *mockAuthServicer) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	return m.login(ctx, email, password)
}

// mockWrapServicer is a test double for handler.WrapServicer.
type mockWrapServicer struct {
	save    func(ctx context.Context, userID uuid.UUID, in service.SaveInput) (domain.Wrap, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Wrap, error)
}

func (m *mockWrapServicer) Save(ctx context.Context, userID uuid.UUID, in service.SaveInput) (domain.Wrap, error) {
	return m.save(ctx, userID, in)
}
func (m *mockWrapServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Wrap, error) {
	return m.getByID(ctx, id)
}

// mockExportServicer is a test double for handler.ExportServicer.
type mockExportServicer struct {
	descriptor func(ctx context.Context, userID uuid.UUID) (domain.ExportDescriptor, error)
}

func (m *mockExportServicer) Descriptor(ctx context.Context, userID uuid.UUID) (domain.ExportDescriptor, error) {
	return m.descriptor(ctx, userID)
}

// compile-time checks against the handler's consumer interfaces.
var (
	_ handler.AuthServicer   = (*mockAuthServicer)(nil)
	_ handler.WrapServicer   = (*mockWrapServicer)(nil)
	_ handler.ExportServicer = (*mockExportServicer)(nil)
)

// newHTTPHandler wires a Server with the given mocks into a chi router behind
// the real auth middleware, mirroring how main.go wires it in production.
func newHTTPHandler(authSvc handler.AuthServicer, wraps handler.WrapServicer, export handler.ExportServicer) http.Handler {
	r := chi.NewRouter()
	handler.NewServer(authSvc, wraps, export).Routes(r, middleware.RequireAuth(testSecret))
	return r
}

// authToken issues a real token for userID, signed with the test secret.
func authToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// decodeError unpacks the uniform error envelope.
func decodeError(t *testing.T, body *bytes.Buffer) (code, message string) {
	t.Helper()
	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp.Error.Code, resp.Error.Message
}
