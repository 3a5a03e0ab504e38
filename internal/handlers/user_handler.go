package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kartikay-28/lms-service/internal/models"
	"github.com/kartikay-28/lms-service/internal/repositories"
	"github.com/kartikay-28/lms-service/internal/services"
	"github.com/kartikay-28/lms-service/internal/utils"
)

type UserHandler struct {
	BaseHandler
	userService services.UserService
}

func NewUserHandler(userService services.UserService, logger utils.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		userService: userService,
	}
}

// ListUsers lists users with optional filtering
// @Summary List users
// @Description Get a paginated list of users (admin only)
// @Tags users
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param size query int false "Page size (default: 10, max: 100)"
// @Param q query string false "Search query (name or email)"
// @Param role query string false "Filter by role (student, admin)"
// @Success 200 {object} map[string]interface{} "User list response"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	h.LogRequest(c, "Listing users")

	filters := h.parseUserFilters(c)

	response, err := h.userService.List(c.Request.Context(), filters)
	if err != nil {
		h.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// SearchUsers searches for users by name or email
// @Summary Search users
// @Tags users
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} map[string]interface{} "User search results"
// @Failure 400 {object} ErrorResponse "Bad request"
// @Router /users/search [get]
func (h *UserHandler) SearchUsers(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Search query parameter 'q' is required",
		})
		return
	}

	h.LogRequest(c, "Searching users", "query", query)

	filters := h.parseUserFilters(c)

	response, err := h.userService.Search(c.Request.Context(), query, filters)
	if err != nil {
		h.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetUser retrieves a user by ID
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "User ID is required"})
		return
	}

	h.LogRequest(c, "Getting user", "user_id", userID)

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ExportUsers downloads the user list as an xlsx workbook
// @Summary Export users
// @Tags users
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "Workbook"
// @Router /users/export [get]
func (h *UserHandler) ExportUsers(c *gin.Context) {
	h.LogRequest(c, "Exporting users")

	data, err := h.userService.ExportUsers(c.Request.Context())
	if err != nil {
		h.RespondServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("users-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ===== HELPER METHODS =====

func (h *UserHandler) parseUserFilters(c *gin.Context) repositories.UserFilters {
	// Parse pagination using page and size
	page := 1
	size := 10

	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	if sizeStr := c.Query("size"); sizeStr != "" {
		if s, err := strconv.Atoi(sizeStr); err == nil && s > 0 && s <= 100 {
			size = s
		}
	}

	filters := repositories.UserFilters{
		Limit:  size,
		Offset: (page - 1) * size,
		Query:  c.Query("q"),
	}

	if role := models.UserRole(c.Query("role")); role.IsValid() {
		filters.Role = role
	}

	return filters
}
