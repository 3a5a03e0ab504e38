package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the fixed bcrypt cost factor used for every stored
// password. 12 rounds keeps hashing slow enough for offline attacks
// while staying affordable per request.
const HashCost = 12

// PasswordHasher wraps the one-way salted hash and its constant-time
// comparison. The hash never leaves the credential boundary.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: HashCost}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare reports whether password matches hash. bcrypt performs the
// comparison in constant time.
func (h *PasswordHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
