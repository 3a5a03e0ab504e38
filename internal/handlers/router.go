package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/kartikay-28/lms-service/internal/auth"
	"github.com/kartikay-28/lms-service/internal/models"
	"github.com/kartikay-28/lms-service/internal/services"
	"github.com/kartikay-28/lms-service/internal/utils"
)

type HandlerManager struct {
	authHandler      *AuthHandler
	profileHandler   *ProfileHandler
	userHandler      *UserHandler
	dashboardHandler *DashboardHandler
	authMiddleware   *JWTAuthMiddleware
	pageGuard        *PageGuard
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	tokens *auth.TokenManager,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		authHandler:      NewAuthHandler(serviceManager.Auth(), serviceManager.User(), logger),
		profileHandler:   NewProfileHandler(serviceManager.User(), logger),
		userHandler:      NewUserHandler(serviceManager.User(), logger),
		dashboardHandler: NewDashboardHandler(logger),
		authMiddleware:   NewJWTAuthMiddleware(tokens),
		pageGuard:        NewPageGuard(tokens, logger),
	}
}

// SetupRoutes sets up all API and page routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public except /me)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", hm.authHandler.Register)
			authRoutes.POST("/signin", hm.authHandler.SignIn)
			authRoutes.POST("/signout", hm.authHandler.SignOut)
			authRoutes.GET("/me", hm.authMiddleware.AuthMiddleware(), hm.authHandler.Me)
		}

		// Profile routes - any authenticated user
		profile := v1.Group("/profile")
		profile.Use(hm.authMiddleware.AuthMiddleware())
		{
			profile.GET("", hm.profileHandler.GetProfile)
			profile.GET("/:id", hm.profileHandler.GetProfile)
			profile.PUT("", hm.profileHandler.UpdateProfile)
		}

		// User routes - Admins only
		users := v1.Group("/users")
		users.Use(hm.authMiddleware.AuthMiddleware(), hm.authMiddleware.RequireRoleMiddleware(models.RoleAdmin))
		{
			users.GET("", hm.userHandler.ListUsers)
			users.GET("/search", hm.userHandler.SearchUsers)
			users.GET("/export", hm.userHandler.ExportUsers)
			users.GET("/:id", hm.userHandler.GetUser)
		}
	}

	// Sign-in entry point; the page guard redirects here with the
	// original path in callbackUrl.
	router.GET(SignInPath, hm.dashboardHandler.SignInPage)

	// Role-scoped page routes; the guard decides per request from the
	// token's role and the path prefix.
	admin := router.Group("/admin-dashboard")
	admin.Use(hm.pageGuard.Middleware())
	{
		admin.GET("", hm.dashboardHandler.AdminDashboard)
	}

	student := router.Group("/student-dashboard")
	student.Use(hm.pageGuard.Middleware())
	{
		student.GET("", hm.dashboardHandler.StudentDashboard)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "lms-service",
		})
	})
}
