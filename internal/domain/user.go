package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Passwords are stored only as bcrypt hashes;
// PasswordHash never leaves the server (excluded from JSON).
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Title        string    `json:"title,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Theme        string    `json:"theme"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
