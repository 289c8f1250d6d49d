package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ClientHeader = "X-Client-ID"
	ClientCookie = "autoelite_client"

	clientCookieMaxAge = 365 * 24 * 60 * 60
)

// ClientScope identifies the browser behind a request. Favorites, history
// and session state live under this id the way they lived under the
// browser origin before. The id comes from the X-Client-ID header or the
// client cookie; a fresh one is issued when neither carries a valid UUID.
func ClientScope(secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(ClientHeader))
		if id == "" {
			id, _ = c.Cookie(ClientCookie)
		}

		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(ClientCookie, id, clientCookieMaxAge, "/", "", secureCookie, true)
		}

		c.Set("client_id", id)
		c.Header(ClientHeader, id)
		c.Next()
	}
}

// ClientID returns the scope set by ClientScope.
func ClientID(c *gin.Context) string {
	return c.GetString("client_id")
}
