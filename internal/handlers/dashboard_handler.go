package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kartikay-28/lms-service/internal/utils"
)

// DashboardHandler serves the role-scoped landing pages. Rendering is
// a client concern; these endpoints return the minimal payload the
// pages are built from.
type DashboardHandler struct {
	BaseHandler
}

func NewDashboardHandler(logger utils.Logger) *DashboardHandler {
	return &DashboardHandler{BaseHandler: NewBaseHandler(logger)}
}

func (h *DashboardHandler) StudentDashboard(c *gin.Context) {
	userID, _ := GetUserIDFromContext(c)
	c.JSON(http.StatusOK, gin.H{
		"dashboard": "student",
		"user_id":   userID,
	})
}

func (h *DashboardHandler) AdminDashboard(c *gin.Context) {
	userID, _ := GetUserIDFromContext(c)
	c.JSON(http.StatusOK, gin.H{
		"dashboard": "admin",
		"user_id":   userID,
	})
}

// SignInPage is the sign-in entry point the page guard redirects to.
// The callbackUrl query parameter is echoed back so the client can
// resume the original navigation after authenticating.
func (h *DashboardHandler) SignInPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":        "signin",
		"callbackUrl": c.Query("callbackUrl"),
	})
}
