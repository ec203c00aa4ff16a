package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/tomandjerry17/cafeteria-backend/entity"
)

const identityKey = "identity"

// Identity is the authenticated caller attached to the request context.
type Identity struct {
	ID   uint
	Role entity.Role
}

func SetIdentity(c *gin.Context, id Identity) {
	c.Set(identityKey, id)
}

func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
