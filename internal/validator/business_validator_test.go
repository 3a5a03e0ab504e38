package validator

import (
	"testing"

	"github.com/kartikay-28/lms-service/internal/models"
)

func TestBusinessValidator_ValidateRegister(t *testing.T) {
	bv := NewBusinessValidator()

	valid := RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "abcdef",
		Role:     models.RoleStudent,
	}

	tests := []struct {
		name    string
		mutate  func(r *RegisterRequest)
		message string
	}{
		{
			name:   "valid request",
			mutate: func(r *RegisterRequest) {},
		},
		{
			name:    "missing name",
			mutate:  func(r *RegisterRequest) { r.Name = "" },
			message: "All fields are required",
		},
		{
			name:    "missing email",
			mutate:  func(r *RegisterRequest) { r.Email = "  " },
			message: "All fields are required",
		},
		{
			name:    "missing password",
			mutate:  func(r *RegisterRequest) { r.Password = "" },
			message: "All fields are required",
		},
		{
			name:    "missing role",
			mutate:  func(r *RegisterRequest) { r.Role = "" },
			message: "All fields are required",
		},
		{
			name:    "malformed email",
			mutate:  func(r *RegisterRequest) { r.Email = "not-an-email" },
			message: "Please enter a valid email address",
		},
		{
			name:    "email without tld",
			mutate:  func(r *RegisterRequest) { r.Email = "a@x" },
			message: "Please enter a valid email address",
		},
		{
			name:    "short password",
			mutate:  func(r *RegisterRequest) { r.Password = "abcde" },
			message: "Password must be at least 6 characters long",
		},
		{
			name:    "invalid role",
			mutate:  func(r *RegisterRequest) { r.Role = "teacher" },
			message: "Role must be either student or admin",
		},
		{
			// Ordering: a bad email must be reported before a bad role.
			name: "email checked before role",
			mutate: func(r *RegisterRequest) {
				r.Email = "nope"
				r.Role = "teacher"
			},
			message: "Please enter a valid email address",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			errs := bv.ValidateRegister(&req)
			if tt.message == "" {
				if len(errs) != 0 {
					t.Fatalf("Expected no errors, got %v", errs)
				}
				return
			}
			if len(errs) == 0 {
				t.Fatal("Expected validation to fail")
			}
			if errs.Message() != tt.message {
				t.Errorf("Expected message %q, got %q", tt.message, errs.Message())
			}
		})
	}
}

func TestBusinessValidator_ValidateSignIn(t *testing.T) {
	bv := NewBusinessValidator()

	t.Run("valid", func(t *testing.T) {
		errs := bv.ValidateSignIn(&SignInRequest{Email: "a@x.com", Password: "abcdef"})
		if len(errs) != 0 {
			t.Fatalf("Expected no errors, got %v", errs)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		errs := bv.ValidateSignIn(&SignInRequest{})
		if len(errs) == 0 {
			t.Fatal("Expected validation to fail")
		}
		if errs.Message() != "Email and password are required" {
			t.Errorf("Unexpected message %q", errs.Message())
		}
	})
}

func TestBusinessValidator_ValidateProfileUpdate(t *testing.T) {
	bv := NewBusinessValidator()

	email := "new@x.com"
	bad := "nope"

	t.Run("valid", func(t *testing.T) {
		errs := bv.ValidateProfileUpdate(&ProfileUpdateRequest{ID: "user-1", Email: &email})
		if len(errs) != 0 {
			t.Fatalf("Expected no errors, got %v", errs)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		errs := bv.ValidateProfileUpdate(&ProfileUpdateRequest{})
		if len(errs) == 0 {
			t.Fatal("Expected validation to fail")
		}
	})

	t.Run("malformed email", func(t *testing.T) {
		errs := bv.ValidateProfileUpdate(&ProfileUpdateRequest{ID: "user-1", Email: &bad})
		if len(errs) == 0 {
			t.Fatal("Expected validation to fail")
		}
	})
}
