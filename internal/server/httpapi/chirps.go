package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/chirpy/internal/common"
)

var errMissingChirp = common.NotFound("Missing chirp")

func (h *Handler) CreateChirp(c *gin.Context) {
	var req chirpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, errInvalidBody)
		return
	}

	chirp, err := h.chirps.Create(c.Request.Context(), c.MustGet(ctxUserID).(uuid.UUID), req.Body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toChirpResponse(chirp))
}

// ListChirps supports ?authorId=<uuid> and ?sort=asc|desc.
func (h *Handler) ListChirps(c *gin.Context) {
	var authorID *uuid.UUID
	if raw := c.Query("authorId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.writeError(c, common.BadRequest("Invalid authorId"))
			return
		}
		authorID = &id
	}

	list, err := h.chirps.List(c.Request.Context(), authorID, c.Query("sort"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]chirpResponse, 0, len(list))
	for i := range list {
		out = append(out, toChirpResponse(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetChirp(c *gin.Context) {
	id, err := uuid.Parse(c.Param("chirpID"))
	if err != nil {
		h.writeError(c, errMissingChirp)
		return
	}

	chirp, err := h.chirps.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toChirpResponse(chirp))
}

func (h *Handler) DeleteChirp(c *gin.Context) {
	id, err := uuid.Parse(c.Param("chirpID"))
	if err != nil {
		h.writeError(c, errMissingChirp)
		return
	}

	if err := h.chirps.Delete(c.Request.Context(), c.MustGet(ctxUserID).(uuid.UUID), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
