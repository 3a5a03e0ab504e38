package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kartikay-28/lms-service/internal/models"
	"github.com/kartikay-28/lms-service/internal/repositories"
	"github.com/kartikay-28/lms-service/internal/validator"
)

type userService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewUserService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) UserService {
	return &userService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *userService) GetProfile(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	s.logger.Info("Profile requested", "email", user.Email)

	return user, nil
}

// UpdateProfile applies name/email changes. An email change re-runs
// the same shape and uniqueness checks as registration.
func (s *userService) UpdateProfile(ctx context.Context, req *ProfileUpdateRequest) (*models.User, error) {
	if errs := s.validator.GetBusinessValidator().ValidateProfileUpdate(req); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.repo.User().GetByID(ctx, req.ID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}

	if req.Email != nil {
		email := models.NormalizeEmail(*req.Email)
		if email != user.Email {
			exists, err := s.repo.User().ExistsByEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("failed to check existing email: %w", err)
			}
			if exists {
				return nil, ErrEmailTaken
			}
			user.Email = email
		}
	}

	if err := s.repo.User().Update(ctx, user); err != nil {
		if repositories.IsDuplicateError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("Profile updated", "user_id", user.ID, "email", user.Email)

	return user, nil
}

func (s *userService) List(ctx context.Context, filters repositories.UserFilters) (*UserListResponse, error) {
	users, total, err := s.repo.User().List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return buildUserListResponse(users, total, filters), nil
}

func (s *userService) Search(ctx context.Context, query string, filters repositories.UserFilters) (*UserListResponse, error) {
	users, total, err := s.repo.User().Search(ctx, query, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	return buildUserListResponse(users, total, filters), nil
}

// exportColumns are the only columns written to the workbook. The
// password hash stays inside the store boundary.
var exportColumns = []string{"ID", "Name", "Email", "Role", "Created At", "Updated At"}

func (s *userService) ExportUsers(ctx context.Context) ([]byte, error) {
	users, _, err := s.repo.User().List(ctx, repositories.UserFilters{Limit: -1})
	if err != nil {
		return nil, fmt.Errorf("failed to load users for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Users"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("failed to name export sheet: %w", err)
	}

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, fmt.Errorf("failed to write export header: %w", err)
		}
	}

	for row, user := range users {
		values := []interface{}{
			user.ID,
			user.Name,
			user.Email,
			string(user.Role),
			user.CreatedAt.Format("2006-01-02 15:04:05"),
			user.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write export row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render export: %w", err)
	}

	s.logger.Info("Exported users", "count", len(users))

	return buf.Bytes(), nil
}

func buildUserListResponse(users []*models.User, total int64, filters repositories.UserFilters) *UserListResponse {
	size := filters.Limit
	if size <= 0 {
		size = len(users)
	}
	page := 1
	if size > 0 {
		page = (filters.Offset / size) + 1
	}

	return &UserListResponse{
		Users: users,
		Total: total,
		Page:  page,
		Size:  size,
	}
}
