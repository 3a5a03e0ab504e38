package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kartikay-28/lms-service/internal/auth"
	"github.com/kartikay-28/lms-service/internal/models"
	"github.com/kartikay-28/lms-service/internal/utils"
)

func newGuardedRouter(t *testing.T, tokens *auth.TokenManager) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger := utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	guard := NewPageGuard(tokens, logger)

	router := gin.New()
	router.Use(guard.Middleware())
	router.GET("/admin-dashboard", func(c *gin.Context) { c.String(http.StatusOK, "admin") })
	router.GET("/student-dashboard", func(c *gin.Context) { c.String(http.StatusOK, "student") })
	router.GET("/signin", func(c *gin.Context) { c.String(http.StatusOK, "signin") })
	return router
}

func issueToken(t *testing.T, tokens *auth.TokenManager, role models.UserRole) string {
	t.Helper()
	token, err := tokens.Issue(models.Identity{ID: "user-1", Role: role})
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return token
}

func TestPageGuard_RedirectMatrix(t *testing.T) {
	tokens := auth.NewTokenManager([]byte("test-secret"), auth.DefaultTokenLifetime)
	router := newGuardedRouter(t, tokens)

	studentToken := issueToken(t, tokens, models.RoleStudent)
	adminToken := issueToken(t, tokens, models.RoleAdmin)

	tests := []struct {
		name         string
		path         string
		token        string
		wantStatus   int
		wantLocation string
	}{
		{
			name:         "no token on admin dashboard",
			path:         "/admin-dashboard",
			wantStatus:   http.StatusFound,
			wantLocation: "/signin?callbackUrl=%2Fadmin-dashboard",
		},
		{
			name:         "no token on student dashboard",
			path:         "/student-dashboard",
			wantStatus:   http.StatusFound,
			wantLocation: "/signin?callbackUrl=%2Fstudent-dashboard",
		},
		{
			name:         "invalid token redirects to sign in",
			path:         "/admin-dashboard",
			token:        "not-a-jwt",
			wantStatus:   http.StatusFound,
			wantLocation: "/signin?callbackUrl=%2Fadmin-dashboard",
		},
		{
			name:         "student on admin dashboard",
			path:         "/admin-dashboard",
			token:        studentToken,
			wantStatus:   http.StatusFound,
			wantLocation: "/student-dashboard",
		},
		{
			name:         "admin on student dashboard",
			path:         "/student-dashboard",
			token:        adminToken,
			wantStatus:   http.StatusFound,
			wantLocation: "/admin-dashboard",
		},
		{
			name:       "student on student dashboard",
			path:       "/student-dashboard",
			token:      studentToken,
			wantStatus: http.StatusOK,
		},
		{
			name:       "admin on admin dashboard",
			path:       "/admin-dashboard",
			token:      adminToken,
			wantStatus: http.StatusOK,
		},
		{
			name:       "unguarded path ignores token",
			path:       "/signin",
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tt.token})
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantLocation != "" {
				if got := w.Header().Get("Location"); got != tt.wantLocation {
					t.Errorf("Expected redirect to %q, got %q", tt.wantLocation, got)
				}
			}
		})
	}
}

func TestPageGuard_ExpiredTokenRedirects(t *testing.T) {
	tokens := auth.NewTokenManager([]byte("test-secret"), auth.DefaultTokenLifetime)
	router := newGuardedRouter(t, tokens)

	foreign := auth.NewTokenManager([]byte("other-secret"), auth.DefaultTokenLifetime)
	token := issueToken(t, foreign, models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/admin-dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("Expected status 302, got %d", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/signin?callbackUrl=%2Fadmin-dashboard" {
		t.Errorf("Unexpected redirect %q", got)
	}
}
