package resp

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tomandjerry17/cafeteria-backend/pkg/apperr"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}

func ServerError(c *gin.Context, err error) {
	slog.Error("internal error", "method", c.Request.Method, "path", c.FullPath(), "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal server error"})
}

// Error maps a service error onto the HTTP taxonomy. Duplicate email is
// a 400 by convention, not a 409.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		Forbidden(c, err.Error())
	case errors.Is(err, apperr.ErrUnauthenticated):
		Unauthorized(c, err.Error())
	case errors.Is(err, apperr.ErrInvalidInput),
		errors.Is(err, apperr.ErrInvalidState),
		errors.Is(err, apperr.ErrInsufficientStock),
		errors.Is(err, apperr.ErrDuplicateEmail):
		BadRequest(c, err.Error())
	default:
		ServerError(c, err)
	}
}
