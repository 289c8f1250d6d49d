package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"autosalon/internal/pkg/jwt"
	"autosalon/internal/pkg/response"
)

// JWTAuth validates the bearer token and puts user_id and role into the
// gin context.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Abort(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			return
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			response.Abort(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be: Bearer <token>")
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// BearerFromStore fills a missing Authorization header with the token the
// client saved at login. lookup returns "" when there is none.
func BearerFromStore(lookup func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			if token := lookup(c); token != "" {
				c.Request.Header.Set("Authorization", "Bearer "+token)
			}
		}
		c.Next()
	}
}

// UserID returns the id set by JWTAuth, 0 for anonymous requests.
func UserID(c *gin.Context) int64 {
	return c.GetInt64("user_id")
}
