// Package service contains the business logic for the TechWrapSaga API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Charwekey/TechWrapSaga/internal/auth"
	"github.com/Charwekey/TechWrapSaga/internal/domain"
	"github.com/Charwekey/TechWrapSaga/internal/repo"
)

// AuthService implements signup and login.
type AuthService struct {
	users    repo.UserRepo
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService constructs an AuthService.
func NewAuthService(users repo.UserRepo, secret []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, tokenTTL: tokenTTL}
}

// SignupInput carries a registration request.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Title    string
}

// Signup validates input, hashes the password, creates the user, and issues
// a token. Returns domain.ErrValidation for bad input and
// domain.ErrEmailTaken when the email is already registered.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (domain.User, string, error) {
	if err := validateSignup(in); err != nil {
		return domain.User{}, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Signup: %w", err)
	}

	user, err := s.users.Create(ctx, domain.User{
		Name:         strings.TrimSpace(in.Name),
		Title:        strings.TrimSpace(in.Title),
		Email:        normalizeEmail(in.Email),
		PasswordHash: string(hash),
		Theme:        "neutral",
	})
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Signup: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, s.secret, s.tokenTTL)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Signup: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and issues a token. A wrong email and a wrong
// password both return domain.ErrInvalidCredentials — callers cannot probe
// which one failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, "", domain.ErrInvalidCredentials
		}
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.secret, s.tokenTTL)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w", err)
	}
	return user, token, nil
}

// validateSignup enforces the registration rules:
//   - name at least 2 characters after trimming
//   - plausible email at least 6 characters
//   - password at least 6 characters
func validateSignup(in SignupInput) error {
	if len(strings.TrimSpace(in.Name)) < 2 {
		return fmt.Errorf("%w: name must be at least 2 characters", domain.ErrValidation)
	}
	email := normalizeEmail(in.Email)
	if len(email) < 6 || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: email is invalid", domain.ErrValidation)
	}
	if len(in.Password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
