package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, unknown theme value).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrEmailTaken is returned on signup when the email is already registered.
// Handlers should map this to HTTP 400.
var ErrEmailTaken = errors.New("user already exists")

// ErrInvalidCredentials is returned on login when the email or password is
// wrong. The two cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken is returned when an auth token is missing, malformed,
// expired, or signed with the wrong key. Handlers should map this to HTTP 401.
var ErrInvalidToken = errors.New("invalid token")
