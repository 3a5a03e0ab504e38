package models

import (
	"strings"
	"time"
)

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleAdmin   UserRole = "admin"
)

// IsValid reports whether the role is one of the two roles the system
// persists. No other value is ever written to the store.
func (r UserRole) IsValid() bool {
	return r == RoleStudent || r == RoleAdmin
}

type User struct {
	ID           string   `json:"id" gorm:"primaryKey;size:36"`
	Name         string   `json:"name" gorm:"not null;size:100"`
	Email        string   `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string   `json:"-" gorm:"column:password_hash;not null;size:255"`
	Role         UserRole `json:"role" gorm:"not null;size:20"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Identity is the minimal view of a user that leaves the credential
// boundary. It never carries the password hash.
type Identity struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

func (u *User) Identity() Identity {
	return Identity{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// NormalizeEmail lowercases and trims an email address. Uniqueness and
// lookups are always performed on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
