package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kartikay-28/lms-service/internal/auth"
	"github.com/kartikay-28/lms-service/internal/models"
	"github.com/kartikay-28/lms-service/internal/utils"
)

// SignInPath is where unauthenticated page requests are sent. The
// original path rides along so the client can resume after sign-in.
const SignInPath = "/signin"

// rolePrefixes maps each role to its dashboard prefix. The guard's
// control flow never changes when a role/prefix pair is added here.
var rolePrefixes = map[models.UserRole]string{
	models.RoleAdmin:   "/admin-dashboard",
	models.RoleStudent: "/student-dashboard",
}

// requiredRoleFor returns the role a path prefix demands, and whether
// the path is role-scoped at all.
func requiredRoleFor(path string) (models.UserRole, bool) {
	for role, prefix := range rolePrefixes {
		if strings.HasPrefix(path, prefix) {
			return role, true
		}
	}
	return "", false
}

// PageGuard enforces role-gated access to the dashboard prefixes. The
// decision is a pure function of token validity, embedded role and
// path prefix; it runs only for the two role-scoped prefixes.
type PageGuard struct {
	tokens *auth.TokenManager
	logger utils.Logger
}

func NewPageGuard(tokens *auth.TokenManager, logger utils.Logger) *PageGuard {
	return &PageGuard{tokens: tokens, logger: logger}
}

func (g *PageGuard) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		requiredRole, guarded := requiredRoleFor(path)
		if !guarded {
			c.Next()
			return
		}

		identity, err := g.tokens.Verify(ExtractToken(c))
		if err != nil {
			g.logger.Info("Unauthorized page access, redirecting to sign in", "path", path)
			c.Redirect(http.StatusFound, signInRedirectURL(path))
			c.Abort()
			return
		}

		if identity.Role != requiredRole {
			home := rolePrefixes[identity.Role]
			g.logger.Info("Access denied, redirecting to own dashboard",
				"path", path,
				"role", identity.Role,
			)
			c.Redirect(http.StatusFound, home)
			c.Abort()
			return
		}

		c.Set("user_id", identity.ID)
		c.Set("user_role", identity.Role)

		c.Next()
	}
}

func signInRedirectURL(callbackPath string) string {
	query := url.Values{}
	query.Set("callbackUrl", callbackPath)
	return SignInPath + "?" + query.Encode()
}
