package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tickpanel/web/policy"
	"tickpanel/web/service"
	"tickpanel/web/session"
)

// AuthRequired verifies the Authorization bearer token and injects the
// caller's identity into the request context. Missing, malformed,
// expired and badly signed tokens are all 401.
func AuthRequired(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header format"})
			c.Abort()
			return
		}

		claims, err := tokens.Verify(authHeader[len(bearerPrefix):])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		session.SetIdentity(c, policy.Identity{
			UserId:   claims.UserId,
			Username: claims.Username,
			Role:     claims.Role,
		})
		c.Next()
	}
}
