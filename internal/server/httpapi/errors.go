package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/chirpy/internal/common"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError aborts the request with {"error": msg}. Causes of internal
// errors are logged and never sent.
func (h *Handler) writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(c.Request.Context(), "request failed",
			"path", c.FullPath(),
			"request_id", c.GetString(ctxRequestID),
			"error", err,
		)
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": common.Message(err)})
}
