package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kartikay-28/lms-service/internal/auth"
	"github.com/kartikay-28/lms-service/internal/services"
	"github.com/kartikay-28/lms-service/internal/utils"
)

type AuthHandler struct {
	BaseHandler
	authService services.AuthService
	userService services.UserService
}

func NewAuthHandler(authService services.AuthService, userService services.UserService, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		authService: authService,
		userService: userService,
	}
}

// Register creates a new account.
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{} "Created user"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 409 {object} ErrorResponse "Duplicate email"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	identity, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		h.RespondServiceError(c, err)
		return
	}

	dashboard := rolePrefixes[identity.Role]
	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("User registered successfully. Redirecting to %s", dashboard),
		"user":    identity,
	})
}

// SignIn authenticates credentials and issues a session token. The
// token is returned in the body for API clients and set as a cookie
// for page navigation.
// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Identity and token"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req services.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	resp, err := h.authService.Authenticate(c.Request.Context(), &req)
	if err != nil {
		h.RespondServiceError(c, err)
		return
	}

	h.setSessionCookie(c, resp.Token)

	c.JSON(http.StatusOK, gin.H{
		"message": "Sign in successful",
		"user":    resp.User,
		"token":   resp.Token,
	})
}

// SignOut clears the session cookie. The token itself stays valid
// until it expires; there is no server-side revocation.
func (h *AuthHandler) SignOut(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// Me returns the profile of the token's subject.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthenticated"})
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(
		SessionCookieName,
		token,
		int(auth.DefaultTokenLifetime.Seconds()),
		"/",
		"",
		false,
		true,
	)
}
