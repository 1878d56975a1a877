// Package session carries the authenticated identity through a single
// request. There is no server-side session state: the identity comes
// from the verified bearer token and lives only in the gin context.
package session

import (
	"github.com/gin-gonic/gin"

	"tickpanel/web/policy"
)

const identityKey = "IDENTITY"

func SetIdentity(c *gin.Context, id policy.Identity) {
	c.Set(identityKey, id)
}

func GetIdentity(c *gin.Context) (policy.Identity, bool) {
	obj, exists := c.Get(identityKey)
	if !exists {
		return policy.Identity{}, false
	}
	id, ok := obj.(policy.Identity)
	return id, ok
}
