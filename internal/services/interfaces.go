package services

import (
	"context"

	"github.com/kartikay-28/lms-service/internal/models"
	"github.com/kartikay-28/lms-service/internal/repositories"
	"github.com/kartikay-28/lms-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use business validator types
type RegisterRequest = validator.RegisterRequest
type SignInRequest = validator.SignInRequest
type ProfileUpdateRequest = validator.ProfileUpdateRequest

// SignInResponse carries the authenticated identity and its session
// token. The token is the sole carrier of role for later requests.
type SignInResponse struct {
	User  models.Identity `json:"user"`
	Token string          `json:"token"`
}

type UserListResponse struct {
	Users []*models.User `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
}

// ===== SERVICE INTERFACES =====

// AuthService owns the credential boundary: registration and
// authentication. Password material never crosses back out of it.
type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*models.Identity, error)
	Authenticate(ctx context.Context, req *SignInRequest) (*SignInResponse, error)
}

// UserService owns profile reads/updates and the admin user listing.
type UserService interface {
	GetProfile(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, req *ProfileUpdateRequest) (*models.User, error)

	List(ctx context.Context, filters repositories.UserFilters) (*UserListResponse, error)
	Search(ctx context.Context, query string, filters repositories.UserFilters) (*UserListResponse, error)

	// ExportUsers renders the full user list (non-sensitive columns
	// only) as an xlsx workbook.
	ExportUsers(ctx context.Context) ([]byte, error)
}

// ===== SERVICE MANAGER =====

type ServiceManager interface {
	Auth() AuthService
	User() UserService

	// Health and lifecycle
	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
