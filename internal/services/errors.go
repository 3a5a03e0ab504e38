package services

import (
	"errors"

	"github.com/kartikay-28/lms-service/internal/validator"
)

// Sentinel errors surfaced by the auth and user services.
//
// ErrInvalidCredentials covers both "no such user" and "wrong
// password" so callers cannot enumerate accounts. Registration keeps
// the more specific ErrEmailTaken on purpose; the asymmetry matches
// the sign-in hardening without hiding duplicate emails at signup.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// IsValidationError reports whether err carries field validation
// failures that should map to a 4xx response.
func IsValidationError(err error) bool {
	var ve validator.ValidationErrors
	return errors.As(err, &ve)
}
