package repositories

import (
	"context"
	"errors"
)

// Sentinel errors shared by all repository implementations.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// IsNotFoundError reports whether err means the record does not exist.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err means the unique email index
// rejected a write. Registration's check-then-insert race resolves to
// this error on the losing side.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicateEmail)
}

// Repository aggregates all repository interfaces behind one handle.
type Repository interface {
	User() UserRepository

	// Transaction support
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager manages repository lifecycle.
type RepositoryManager interface {
	// Initialize repositories with database connections
	Initialize() error

	// Get repository instance
	GetRepository() Repository

	// Health check for all repositories
	HealthCheck(ctx context.Context) error

	// Graceful shutdown
	Shutdown(ctx context.Context) error
}
