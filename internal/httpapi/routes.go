package httpapi

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lodgenet/internal/logger"
)

// RegisterRoutes mounts the query endpoints on rg (typically /v1).
//
//	GET /v1/nodes?year=
//	GET /v1/components?year=
//	GET /v1/snapshot
//	GET /v1/lodges/:id/degree?year=
//	GET /v1/lodges/:id/reachable?year=
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.GET("/nodes", h.HandleNodes)
	rg.GET("/components", h.HandleComponents)
	rg.GET("/snapshot", h.HandleSnapshot)

	lodges := rg.Group("/lodges/:id")
	lodges.GET("/degree", h.HandleDegree)
	lodges.GET("/reachable", h.HandleReachable)
}

// NewRouter returns a gin engine with recovery, access logging, the /v1
// routes, /healthz and /metrics served from g.
func NewRouter(h *Handlers, g prometheus.Gatherer, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.AccessMiddleware(log))

	RegisterRoutes(r.Group("/v1"), h)
	r.GET("/healthz", h.HandleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(g, promhttp.HandlerOpts{})))

	return r
}
