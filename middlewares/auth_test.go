package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomandjerry17/cafeteria-backend/entity"
	"github.com/tomandjerry17/cafeteria-backend/utils"
)

const testSecret = "test-secret"

func newRouter(roles ...entity.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(testSecret, roles...), func(c *gin.Context) {
		id, _ := utils.CurrentIdentity(c)
		c.JSON(http.StatusOK, gin.H{"userId": id.ID, "role": id.Role})
	})
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	token, err := utils.GenerateToken(7, entity.RoleStudent, testSecret, time.Hour)
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		w := doGet(newRouter(), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doGet(newRouter(), "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		bad, err := utils.GenerateToken(7, entity.RoleStudent, "other-secret", time.Hour)
		require.NoError(t, err)
		w := doGet(newRouter(), bad)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		stale, err := utils.GenerateToken(7, entity.RoleStudent, testSecret, -time.Minute)
		require.NoError(t, err)
		w := doGet(newRouter(), stale)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token passes", func(t *testing.T) {
		w := doGet(newRouter(), token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userId":7`)
	})

	t.Run("role allowed", func(t *testing.T) {
		w := doGet(newRouter(entity.RoleStudent, entity.RoleAdmin), token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("role forbidden", func(t *testing.T) {
		w := doGet(newRouter(entity.RoleStaff), token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
