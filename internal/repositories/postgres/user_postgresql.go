package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kartikay-28/lms-service/internal/cache"
	"github.com/kartikay-28/lms-service/internal/models"
	"github.com/kartikay-28/lms-service/internal/repositories"
)

// UserPostgreSQL implements repositories.UserRepository on GORM with a
// cache-aside mirror for id lookups.
type UserPostgreSQL struct {
	db    *gorm.DB
	cache *cache.CacheHelper
}

func NewUserPostgreSQL(db *gorm.DB, redisClient *redis.Client) *UserPostgreSQL {
	return &UserPostgreSQL{
		db:    db,
		cache: cache.NewCacheHelper(redisClient, "user:"),
	}
}

func (r *UserPostgreSQL) Create(ctx context.Context, user *models.User) error {
	user.Email = models.NormalizeEmail(user.Email)

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *UserPostgreSQL) Update(ctx context.Context, user *models.User) error {
	user.Email = models.NormalizeEmail(user.Email)

	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return translateError(err)
	}

	// Drop the cached profile so the next read sees the update.
	_ = r.cache.Delete(ctx, "id:"+user.ID)

	return nil
}

func (r *UserPostgreSQL) GetByID(ctx context.Context, id string) (*models.User, error) {
	var cached models.User
	if err := r.cache.Get(ctx, "id:"+id, &cached); err == nil {
		return &cached, nil
	}

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}

	_ = r.cache.Set(ctx, "id:"+id, &user, cache.ProfileTTL)

	return &user, nil
}

func (r *UserPostgreSQL) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		First(&user, "email = ?", models.NormalizeEmail(email)).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *UserPostgreSQL) List(ctx context.Context, filters repositories.UserFilters) ([]*models.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.User{})

	if filters.Role != "" {
		query = query.Where("role = ?", filters.Role)
	}
	if filters.Query != "" {
		pattern := "%" + filters.Query + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var users []*models.User
	err := query.
		Order("created_at DESC").
		Limit(filters.Limit).
		Offset(filters.Offset).
		Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return users, total, nil
}

func (r *UserPostgreSQL) Search(ctx context.Context, query string, filters repositories.UserFilters) ([]*models.User, int64, error) {
	filters.Query = query
	return r.List(ctx, filters)
}

func (r *UserPostgreSQL) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", models.NormalizeEmail(email)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

// translateError maps GORM errors to repository sentinels. Duplicate
// key translation requires gorm.Config{TranslateError: true}.
func translateError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repositories.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repositories.ErrDuplicateEmail
	default:
		return err
	}
}
