package entity

import (
	"time"
)

// User is the aggregate root for the parent account.
// Password holds a bcrypt hash and is never serialized.
type User struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Password        string     `json:"-"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// AuthenticatedUser is the caller resolved from a bearer token.
// It is passed explicitly to every handler that requires authentication.
type AuthenticatedUser struct {
	UserID  string
	TokenID string
	Name    string
	Email   string
}
