package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/kartikay-28/lms-service/internal/auth"
	"github.com/kartikay-28/lms-service/internal/events"
	"github.com/kartikay-28/lms-service/internal/repositories"
	"github.com/kartikay-28/lms-service/internal/validator"
)

// serviceManager implements ServiceManager interface
type serviceManager struct {
	// Dependencies
	repo      repositories.Repository
	hasher    *auth.PasswordHasher
	tokens    *auth.TokenManager
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator

	// Service instances
	authService AuthService
	userService UserService

	// Lifecycle management
	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a service manager with all dependencies.
// The signing secret and store handle live for the whole process and
// are injected here once, never read from ambient globals.
func NewServiceManager(
	repo repositories.Repository,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenManager,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
) ServiceManager {
	return &serviceManager{
		repo:      repo,
		hasher:    hasher,
		tokens:    tokens,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if sm.repo == nil {
		return fmt.Errorf("repository is required")
	}
	if sm.hasher == nil {
		return fmt.Errorf("password hasher is required")
	}
	if sm.tokens == nil {
		return fmt.Errorf("token manager is required")
	}
	if sm.validator == nil {
		return fmt.Errorf("validator is required")
	}

	sm.authService = NewAuthService(sm.repo, sm.hasher, sm.tokens, sm.publisher, sm.logger, sm.validator)
	sm.userService = NewUserService(sm.repo, sm.logger, sm.validator)

	sm.initialized = true
	sm.logger.Info("Services initialized")

	return nil
}

func (sm *serviceManager) Auth() AuthService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.authService
}

func (sm *serviceManager) User() UserService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.userService
}

func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("services not initialized")
	}

	return sm.repo.Ping(ctx)
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}
	sm.shutdown = true

	if sm.publisher != nil {
		if err := sm.publisher.Close(); err != nil {
			sm.logger.Error("Failed to close event publisher", "error", err)
		}
	}

	sm.logger.Info("Services shut down")

	return nil
}
