package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "go-dominance/docs"
	"go-dominance/internal/api/handler"
	"go-dominance/pkg/router"
)

// Options toggles the optional surfaces
type Options struct {
	Metrics prometheus.Gatherer // nil disables /metrics
	Swagger bool
}

func RegisterRoutes(r *router.Router, h *handler.Handler, opts Options) {
	r.POST("/api/v1/dominance", h.CreateDominance)
	r.POST("/api/v1/dominance/upload", h.UploadDominance)
	r.POST("/api/v1/dominance/export", h.ExportDominance)
	r.POST("/api/v1/dominance/chart", h.ChartDominance)
	r.POST("/api/v1/dominance/map", h.MapDominance)

	r.POST("/api/v1/profile", h.CreateProfile)
	r.POST("/api/v1/ranking", h.CreateRanking)
	r.GET("/api/v1/itinerary", h.GetItinerary)
	r.GET("/api/v1/samples", h.ListSamples)
	r.GET("/api/v1/samples/{name}", h.GetSample)

	r.GET("/healthz", h.Healthz)

	if opts.Metrics != nil {
		r.Mount("/metrics", promhttp.HandlerFor(opts.Metrics, promhttp.HandlerOpts{}))
	}
	if opts.Swagger {
		r.Mount("/swagger/", httpSwagger.WrapHandler)
	}
}
