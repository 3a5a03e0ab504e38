package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kartikay-28/lms-service/internal/models"
)

// ErrUnauthenticated is returned for every token verification failure:
// missing, malformed, bad signature or expired. Callers must treat all
// of these identically to "no token present".
var ErrUnauthenticated = errors.New("unauthenticated")

// DefaultTokenLifetime is the fixed session length. There is no
// refresh or revocation; tokens simply age out.
const DefaultTokenLifetime = 30 * 24 * time.Hour

// Claims embeds the registered claims and the role the token carries.
// The token is the sole carrier of role for downstream authorization.
type Claims struct {
	jwt.RegisteredClaims
	Role models.UserRole `json:"role"`
}

// TokenManager mints and verifies signed session tokens. The signing
// secret is process-wide and read-only after construction.
type TokenManager struct {
	secret   []byte
	lifetime time.Duration
}

func NewTokenManager(secret []byte, lifetime time.Duration) *TokenManager {
	if lifetime <= 0 {
		lifetime = DefaultTokenLifetime
	}
	return &TokenManager{secret: secret, lifetime: lifetime}
}

// Issue mints a token embedding the identity's id and role with the
// fixed lifetime.
func (m *TokenManager) Issue(identity models.Identity) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
		},
		Role: identity.Role,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify reconstructs an identity from a token. Only the subject id
// and role are present; profile fields come from the store.
func (m *TokenManager) Verify(tokenString string) (models.Identity, error) {
	if tokenString == "" {
		return models.Identity{}, ErrUnauthenticated
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return models.Identity{}, ErrUnauthenticated
	}

	if claims.Subject == "" || !claims.Role.IsValid() {
		return models.Identity{}, ErrUnauthenticated
	}

	return models.Identity{
		ID:   claims.Subject,
		Role: claims.Role,
	}, nil
}
