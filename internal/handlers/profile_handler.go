package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kartikay-28/lms-service/internal/services"
	"github.com/kartikay-28/lms-service/internal/utils"
)

type ProfileHandler struct {
	BaseHandler
	userService services.UserService
}

func NewProfileHandler(userService services.UserService, logger utils.Logger) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler: NewBaseHandler(logger),
		userService: userService,
	}
}

// GetProfile returns the non-sensitive fields of a user.
// @Summary Get profile
// @Tags profile
// @Produce json
// @Param id query string true "User ID"
// @Success 200 {object} map[string]interface{} "Profile"
// @Failure 400 {object} ErrorResponse "Missing ID"
// @Failure 404 {object} ErrorResponse "Not found"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		userID = c.Query("id")
	}
	if userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "User ID is required"})
		return
	}

	h.LogRequest(c, "Getting profile", "user_id", userID)

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile updates name and/or email. Email changes re-validate
// uniqueness.
// @Summary Update profile
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Updated profile"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Duplicate email"
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req services.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	h.LogRequest(c, "Updating profile", "user_id", req.ID)

	user, err := h.userService.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		h.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    user,
	})
}
