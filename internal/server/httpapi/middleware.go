package httpapi

import (
	"crypto/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/dmitrijs2005/chirpy/internal/common"
)

const (
	HeaderRequestID = "X-Request-ID"

	ctxRequestID = "request_id"
	ctxUserID    = "user_id"
)

func newRequestID(now time.Time) string {
	id, err := ulid.New(ulid.Timestamp(now), rand.Reader)
	if err != nil {
		return ""
	}
	return id.String()
}

// RequestID propagates an incoming X-Request-ID or assigns a ULID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = newRequestID(time.Now().UTC())
		}
		c.Set(ctxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote", c.ClientIP(),
			"request_id", c.GetString(ctxRequestID),
		}

		ctx := c.Request.Context()
		switch {
		case status >= http.StatusInternalServerError:
			h.logger.Error(ctx, "http.request", args...)
		case status >= http.StatusBadRequest:
			h.logger.Warn(ctx, "http.request", args...)
		default:
			h.logger.Info(ctx, "http.request", args...)
		}
	}
}

func (h *Handler) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		h.metrics.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

func (h *Handler) countHits() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.metrics.IncHits()
		c.Next()
	}
}

// requireUser resolves the bearer access token and stores the user id
// under ctxUserID.
func (h *Handler) requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := h.sessions.Authenticate(c.GetHeader(common.AuthorizationHeaderName))
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.Set(ctxUserID, id)
		c.Next()
	}
}
