package middleware

import (
	"luxefurnish/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

// role checking middleware, must run after config.AuthMiddleware
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Forbidden",
				"error":   "Admins only",
			})
			return
		}
		c.Next()
	}
}
