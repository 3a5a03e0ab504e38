package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kartikay-28/lms-service/internal/auth"
	"github.com/kartikay-28/lms-service/internal/models"
)

func newAPIRouter(t *testing.T, tokens *auth.TokenManager) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	middleware := NewJWTAuthMiddleware(tokens)

	router := gin.New()
	authorized := router.Group("/api", middleware.AuthMiddleware())
	authorized.GET("/me", func(c *gin.Context) {
		id, _ := GetUserIDFromContext(c)
		role, _ := GetUserRoleFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})

	admin := authorized.Group("/users", middleware.RequireRoleMiddleware(models.RoleAdmin))
	admin.GET("", func(c *gin.Context) { c.Status(http.StatusOK) })

	return router
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager([]byte("test-secret"), auth.DefaultTokenLifetime)
	router := newAPIRouter(t, tokens)

	valid := issueToken(t, tokens, models.RoleStudent)

	tests := []struct {
		name       string
		header     string
		cookie     string
		wantStatus int
	}{
		{
			name:       "no token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			header:     "Token " + valid,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			header:     "Bearer not-a-jwt",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid bearer token",
			header:     "Bearer " + valid,
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid cookie token",
			cookie:     valid,
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tt.cookie})
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestRequireRoleMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager([]byte("test-secret"), auth.DefaultTokenLifetime)
	router := newAPIRouter(t, tokens)

	tests := []struct {
		name       string
		role       models.UserRole
		wantStatus int
	}{
		{
			name:       "admin allowed",
			role:       models.RoleAdmin,
			wantStatus: http.StatusOK,
		},
		{
			name:       "student forbidden",
			role:       models.RoleStudent,
			wantStatus: http.StatusForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := issueToken(t, tokens, tt.role)

			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			req.Header.Set("Authorization", "Bearer "+token)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestExtractToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{name: "absent", want: ""},
		{name: "bearer header", header: "Bearer abc", want: "abc"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "wrong scheme", header: "Basic abc", want: ""},
		{name: "cookie fallback", cookie: "xyz", want: "xyz"},
		{name: "header wins over cookie", header: "Bearer abc", cookie: "xyz", want: "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				c.Request.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				c.Request.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tt.cookie})
			}

			if got := ExtractToken(c); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
