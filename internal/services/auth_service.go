package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/kartikay-28/lms-service/internal/auth"
	"github.com/kartikay-28/lms-service/internal/events"
	"github.com/kartikay-28/lms-service/internal/models"
	"github.com/kartikay-28/lms-service/internal/repositories"
	"github.com/kartikay-28/lms-service/internal/validator"
)

type authService struct {
	repo      repositories.Repository
	hasher    *auth.PasswordHasher
	tokens    *auth.TokenManager
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAuthService(
	repo repositories.Repository,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenManager,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
) AuthService {
	return &authService{
		repo:      repo,
		hasher:    hasher,
		tokens:    tokens,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

// Register validates, hashes and persists a new user. The password and
// its hash are never logged or returned.
func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*models.Identity, error) {
	s.logger.Info("Registration attempt", "email", models.NormalizeEmail(req.Email), "role", req.Role)

	if errs := s.validator.GetBusinessValidator().ValidateRegister(req); len(errs) > 0 {
		s.logger.Info("Registration validation failed", "reason", errs.Message())
		return nil, errs
	}

	email := models.NormalizeEmail(req.Email)

	exists, err := s.repo.User().ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		s.logger.Info("Registration rejected: duplicate email", "email", email)
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         req.Role,
	}

	if err := s.repo.User().Create(ctx, user); err != nil {
		// Two concurrent registrations can pass the existence check;
		// the unique index decides and the loser lands here.
		if repositories.IsDuplicateError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	identity := user.Identity()
	s.logger.Info("User registered successfully",
		"user_id", identity.ID,
		"email", identity.Email,
		"role", identity.Role,
	)

	s.publish(ctx, events.NewUserRegisteredEvent(identity))

	return &identity, nil
}

// Authenticate checks an (email, password) pair and issues a session
// token. Unknown email and wrong password produce the same error.
func (s *authService) Authenticate(ctx context.Context, req *SignInRequest) (*SignInResponse, error) {
	email := models.NormalizeEmail(req.Email)
	s.logger.Info("Sign in attempt", "email", email)

	if errs := s.validator.GetBusinessValidator().ValidateSignIn(req); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.repo.User().GetByEmail(ctx, email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			s.logger.Info("Sign in failed", "email", email)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, req.Password) {
		s.logger.Info("Sign in failed", "email", email)
		return nil, ErrInvalidCredentials
	}

	identity := user.Identity()

	token, err := s.tokens.Issue(identity)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("User signed in successfully",
		"user_id", identity.ID,
		"email", identity.Email,
		"role", identity.Role,
	)

	s.publish(ctx, events.NewUserSignedInEvent(identity))

	return &SignInResponse{User: identity, Token: token}, nil
}

// publish sends an event without letting a broker failure surface to
// the caller.
func (s *authService) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("Failed to publish event", "type", event.Type, "error", err)
	}
}
