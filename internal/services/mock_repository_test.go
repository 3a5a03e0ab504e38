package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/kartikay-28/lms-service/internal/models"
	"github.com/kartikay-28/lms-service/internal/repositories"
)

// memoryUserRepository is an in-memory UserRepository with the same
// uniqueness semantics as the real store: one row per normalized email.
type memoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*models.User // keyed by ID
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]*models.User)}
}

func (r *memoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := models.NormalizeEmail(user.Email)
	for _, existing := range r.users {
		if existing.Email == email {
			return repositories.ErrDuplicateEmail
		}
	}

	now := time.Now()
	stored := *user
	stored.Email = email
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.users[stored.ID] = &stored

	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

func (r *memoryUserRepository) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrNotFound
	}

	email := models.NormalizeEmail(user.Email)
	for id, existing := range r.users {
		if id != user.ID && existing.Email == email {
			return repositories.ErrDuplicateEmail
		}
	}

	stored := *user
	stored.Email = email
	stored.UpdatedAt = time.Now()
	r.users[stored.ID] = &stored
	return nil
}

func (r *memoryUserRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email = models.NormalizeEmail(email)
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *memoryUserRepository) List(_ context.Context, filters repositories.UserFilters) ([]*models.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var users []*models.User
	for _, user := range r.users {
		if filters.Role != "" && user.Role != filters.Role {
			continue
		}
		if filters.Query != "" {
			q := strings.ToLower(filters.Query)
			if !strings.Contains(strings.ToLower(user.Name), q) &&
				!strings.Contains(user.Email, q) {
				continue
			}
		}
		copied := *user
		users = append(users, &copied)
	}
	return users, int64(len(users)), nil
}

func (r *memoryUserRepository) Search(ctx context.Context, query string, filters repositories.UserFilters) ([]*models.User, int64, error) {
	filters.Query = query
	return r.List(ctx, filters)
}

func (r *memoryUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email = models.NormalizeEmail(email)
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryUserRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// memoryRepository bundles the in-memory repositories behind the
// aggregate interface.
type memoryRepository struct {
	user *memoryUserRepository
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{user: newMemoryUserRepository()}
}

func (r *memoryRepository) User() repositories.UserRepository {
	return r.user
}

func (r *memoryRepository) WithTransaction(_ context.Context, fn func(repositories.Repository) error) error {
	return fn(r)
}

func (r *memoryRepository) Ping(context.Context) error {
	return nil
}

func (r *memoryRepository) Close() error {
	return nil
}
