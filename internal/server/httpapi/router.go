package httpapi

import (
	"github.com/gin-gonic/gin"
)

// NewRouter registers every route. fileserverRoot is served under /app/;
// an empty root disables the file server.
func NewRouter(h *Handler, fileserverRoot string) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), h.requestLogger(), h.observe(), gin.Recovery())

	if fileserverRoot != "" {
		app := r.Group("/app", h.countHits())
		app.StaticFS("/", gin.Dir(fileserverRoot, false))
	}

	api := r.Group("/api")
	{
		api.GET("/healthz", h.Healthz)
		api.GET("/readyz", h.Readyz)

		api.POST("/login", h.Login)
		api.POST("/refresh", h.Refresh)
		api.POST("/revoke", h.Revoke)

		api.POST("/users", h.CreateUser)
		api.GET("/chirps", h.ListChirps)
		api.GET("/chirps/:chirpID", h.GetChirp)

		api.POST("/polka/webhooks", h.PolkaWebhook)
	}

	authed := api.Group("", h.requireUser())
	{
		authed.PUT("/users", h.UpdateUser)
		authed.POST("/chirps", h.CreateChirp)
		authed.DELETE("/chirps/:chirpID", h.DeleteChirp)
	}

	admin := r.Group("/admin")
	{
		admin.GET("/metrics", h.AdminMetrics)
		admin.POST("/reset", h.AdminReset)
	}

	r.GET("/metrics", gin.WrapH(h.metrics.Handler()))

	return r
}
