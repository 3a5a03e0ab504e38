package validator

import (
	"github.com/kartikay-28/lms-service/internal/models"
)

// RegisterRequest represents the request structure for account registration
type RegisterRequest struct {
	Name     string          `json:"name" validate:"required,max=100"`
	Email    string          `json:"email" validate:"required,email_shape"`
	Password string          `json:"password" validate:"required,min=6"`
	Role     models.UserRole `json:"role" validate:"required,user_role"`
}

// SignInRequest represents the request structure for credential sign-in
type SignInRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ProfileUpdateRequest represents the request structure for profile updates.
// Only name and email are editable; role is fixed at registration.
type ProfileUpdateRequest struct {
	ID    string  `json:"id" validate:"required"`
	Name  *string `json:"name" validate:"omitempty,max=100"`
	Email *string `json:"email" validate:"omitempty,email_shape"`
}
