package middleware

import (
	"net/http"
	"strings"

	"barberbook/models"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

// RequireAuth parses the bearer token and injects the caller's identity
// into the request context. Requests without a valid token stop here.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ClaimsFromToken(tokenString)
		if err != nil || userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

// RequireAdmin rejects callers whose role is not admin. Compose it after
// RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CallerRole(c) != models.RoleAdmin {
			c.AbortWithStatusJSON(utils.ErrForbidden.Status, gin.H{
				"error": utils.ErrForbidden.Message,
			})
			return
		}
		c.Next()
	}
}

// CallerID returns the authenticated user id set by RequireAuth.
func CallerID(c *gin.Context) uint {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// CallerRole returns the authenticated role set by RequireAuth.
func CallerRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}
