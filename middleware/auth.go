package middleware

import (
	"net/http"
	"strings"

	"tripdesk/utils"

	"github.com/gin-gonic/gin"
)

// SessionAuthMiddleware gates endpoints behind a session token minted by the
// login handler. No token store beyond process memory; a restart logs
// everyone out.
func SessionAuthMiddleware(sessions *utils.SessionSet) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		if !sessions.Has(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session token"})
			return
		}

		c.Next()
	}
}
