package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tomandjerry17/cafeteria-backend/entity"
	"github.com/tomandjerry17/cafeteria-backend/pkg/resp"
	"github.com/tomandjerry17/cafeteria-backend/utils"
)

// AuthMiddleware verifies the bearer token and attaches the caller
// identity to the context. With roles given, it additionally gates the
// route on the allow-list.
func AuthMiddleware(secret string, roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing bearer token")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(h, "Bearer "), secret)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		utils.SetIdentity(c, utils.Identity{ID: claims.UserID, Role: claims.Role})

		if len(roles) > 0 {
			allowed := false
			for _, r := range roles {
				if claims.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Forbidden(c, "forbidden")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
