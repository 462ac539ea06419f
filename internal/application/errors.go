package application

import (
	"fmt"
	"strings"
)

// ValidationError carries every violated rule, in field order.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// ConflictError reports a uniqueness violation detected before any write.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// AuthError covers bad credentials and missing or revoked tokens.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// InternalError wraps an unexpected failure. Op names the step that failed.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *InternalError) Unwrap() error { return e.Err }

const msgEmailTaken = "The email has already been taken."

var (
	ErrEmailRegistered    = &ConflictError{Message: "Email address already registered"}
	ErrInvalidCredentials = &AuthError{Message: "Credentials do not match"}
	ErrUnauthenticated    = &AuthError{Message: "Unauthenticated."}
)
