package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/chirpy/internal/common"
	"github.com/dmitrijs2005/chirpy/internal/server/auth"
	"github.com/dmitrijs2005/chirpy/internal/server/services"
)

var errInvalidBody = common.BadRequest("Invalid request body")

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, errInvalidBody)
		return
	}

	res, err := h.sessions.Login(c.Request.Context(), services.LoginInput{
		Email:            req.Email,
		Password:         req.Password,
		ExpiresInSeconds: req.requestedTTL(),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		userResponse: toUserResponse(res.User),
		Token:        res.AccessToken,
		RefreshToken: res.RefreshToken,
	})
}

// Refresh takes the refresh token from the Authorization header.
func (h *Handler) Refresh(c *gin.Context) {
	token, err := auth.GetBearerToken(c.Request.Header)
	if err != nil {
		h.writeError(c, err)
		return
	}

	access, err := h.sessions.Refresh(c.Request.Context(), token)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokenResponse{Token: access})
}

func (h *Handler) Revoke(c *gin.Context) {
	token, err := auth.GetBearerToken(c.Request.Header)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.sessions.Revoke(c.Request.Context(), token); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
