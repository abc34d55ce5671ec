// ABOUTME: Maps action and store errors onto HTTP status codes.
// ABOUTME: Missing and foreign rows both become 404; unexpected errors are logged, never echoed.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harperreed/lift/internal/actions"
	"github.com/harperreed/lift/internal/storage"
	"go.uber.org/zap"
)

func (s *Server) fail(c *gin.Context, err error) {
	var verr *actions.ValidationError

	switch {
	case errors.Is(err, actions.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
	case errors.Is(err, storage.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, storage.ErrExerciseInUse):
		c.JSON(http.StatusConflict, gin.H{"error": "exercise is in use"})
	default:
		s.logger.Error("request failed",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(requestIDKey)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
