package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"go-dominance/internal/api/handler"
	"go-dominance/internal/config"
	"go-dominance/internal/metrics"
	"go-dominance/internal/pipeline"
	"go-dominance/pkg/router"
)

// NewRouter wires the runner, handler and optional surfaces described by cfg.
// Each call uses its own metrics registry.
func NewRouter(cfg config.Config) *router.Router {
	loader := pipeline.NewLoader()
	loader.Timeout = cfg.FetchTimeout
	loader.Retry.MaxAttempts = cfg.FetchRetries
	loader.MaxBody = cfg.MaxUploadBytes

	runner := &pipeline.Runner{Loader: loader}
	opts := Options{Swagger: cfg.EnableSwagger}
	if cfg.EnableMetrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		runner.Metrics = metrics.NewWithRegistry(reg)
		opts.Metrics = reg
	}

	h := handler.New(runner)
	h.MaxBodyBytes = cfg.MaxUploadBytes
	h.DefaultTopN = cfg.DefaultTopN
	h.AllowLocalSources = cfg.AllowLocalSources

	r := router.New()
	RegisterRoutes(r, h, opts)
	return r
}
