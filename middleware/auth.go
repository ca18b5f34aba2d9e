package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fave/auth"
	"fave/models"
)

// SessionRequired resolves the bearer token to a user and stores it in the
// gin context for handlers. Missing or invalid sessions abort with 401; the
// client redirects to signup on that status.
func SessionRequired(sessions *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		user, err := sessions.Resolve(ctx, parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)

		c.Next()
	}
}

// RoleRequired gates a route on the session user's role. Must run after
// SessionRequired.
func RoleRequired(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || user.Role != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the session user set by SessionRequired, or nil.
func CurrentUser(c *gin.Context) *models.User {
	value, ok := c.Get("user")
	if !ok {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
