package middleware

import (
	"net/http"
	"strings"

	"futureclim/services/auth"
	"futureclim/utils"

	"github.com/gin-gonic/gin"
)

// SessionAuthMiddleware authenticates requests against the session store.
// The bearer token is validated, hashed, and resolved to its session; the
// session user is placed in the request context for handlers.
func SessionAuthMiddleware(authSvc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		if _, err := utils.ValidateToken(tokenString); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		tokenHash := utils.HashToken(tokenString)
		user, err := authSvc.RestoreSession(tokenHash)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again"})
			return
		}

		c.Set("user", *user)
		c.Set("userID", user.ID)
		c.Set("userName", user.Name)
		c.Set("tokenHash", tokenHash)
		c.Next()
	}
}
