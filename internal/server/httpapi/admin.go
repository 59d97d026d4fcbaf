package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const metricsPage = `<html>
  <body>
    <h1>Welcome, Chirpy Admin</h1>
    <p>Chirpy has been visited %d times!</p>
  </body>
</html>`

func (h *Handler) Healthz(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// Readyz reports 503 while the database does not answer.
func (h *Handler) Readyz(c *gin.Context) {
	if err := h.admin.Ready(c.Request.Context()); err != nil {
		h.logger.Warn(c.Request.Context(), "readyz.db.not_ready", "error", err)
		c.String(http.StatusServiceUnavailable, "db not ready")
		return
	}
	c.String(http.StatusOK, "OK")
}

func (h *Handler) AdminMetrics(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", fmt.Appendf(nil, metricsPage, h.metrics.Hits()))
}

// AdminReset wipes all users and the hit counter. The counter is left
// untouched when the reset is refused.
func (h *Handler) AdminReset(c *gin.Context) {
	if err := h.admin.Reset(c.Request.Context()); err != nil {
		h.writeError(c, err)
		return
	}
	h.metrics.ResetHits()
	c.String(http.StatusOK, "Reset OK")
}
