package repositories

import (
	"context"

	"github.com/kartikay-28/lms-service/internal/models"
)

// UserFilters defines filters for user queries
type UserFilters struct {
	Query  string          // Search query for name or email
	Role   models.UserRole // Optional role filter
	Limit  int             // Page size
	Offset int             // Offset for pagination
}

// UserRepository is the credential store. Lookups by email expect the
// caller to pass the normalized form; implementations normalize again
// defensively before touching the index.
type UserRepository interface {
	// Write operations. Create and Update surface ErrDuplicateEmail when
	// the unique email index rejects the row.
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error

	// Read operations
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// List and search operations
	List(ctx context.Context, filters UserFilters) ([]*models.User, int64, error)
	Search(ctx context.Context, query string, filters UserFilters) ([]*models.User, int64, error)

	// Validation and checks
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
