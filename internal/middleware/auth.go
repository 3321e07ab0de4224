package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskboard-be/internal/service"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	ContextUserKey   = "user"
	ContextUserIDKey = "user_id"
)

// AuthMiddleware verifies the bearer token on every protected request
// and resolves it to a live user before any business logic runs. The
// resolved identity is placed on the context for handlers to pass
// explicitly into service calls.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Access token is required",
			})
			c.Abort()
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid Authorization header",
			})
			c.Abort()
			return
		}

		user, err := authService.ResolveToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": err.Error(),
			})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}
