package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/chirpy/internal/common"
	"github.com/dmitrijs2005/chirpy/internal/server/services"
)

func (h *Handler) PolkaWebhook(c *gin.Context) {
	var ev services.PolkaEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		h.writeError(c, errInvalidBody)
		return
	}

	if err := h.webhooks.HandlePolka(c.Request.Context(), c.GetHeader(common.AuthorizationHeaderName), ev); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
