package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole guards a route group with a single role check instead of
// repeating it inside every handler.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := c.Get(ContextUserRole)
		if !ok || got.(string) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success":    false,
				"error_code": "forbidden",
				"message":    "This action requires the " + role + " role.",
			})
			return
		}

		c.Next()
	}
}
