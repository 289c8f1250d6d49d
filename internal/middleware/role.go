package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autosalon/internal/domain"
	"autosalon/internal/pkg/response"
)

// RequireRole lets the request through when the token role is one of roles.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			return
		}

		current := domain.UserRole(role.(string))
		for _, r := range roles {
			if current == r {
				c.Next()
				return
			}
		}
		response.Abort(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
	}
}

// ManagerOnly admits managers and admins.
func ManagerOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleManager, domain.RoleAdmin)
}

func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}

// CurrentRole returns the role set by JWTAuth; anonymous callers are clients.
func CurrentRole(c *gin.Context) domain.UserRole {
	if r := c.GetString("role"); r != "" {
		return domain.UserRole(r)
	}
	return domain.RoleClient
}
