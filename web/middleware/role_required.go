package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tickpanel/web/session"
)

// RoleRequired gates a route group to the given roles. It assumes
// AuthRequired already ran and put the identity into the context.
func RoleRequired(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool)
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		id, ok := session.GetIdentity(c)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if !allowed[id.Role] {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
