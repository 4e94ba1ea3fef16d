package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector records pipeline runs. A nil *Collector is valid and records nothing.
type Collector struct {
	runs     *prometheus.CounterVec
	rows     prometheus.Counter
	dropped  prometheus.Counter
	duration *prometheus.HistogramVec
}

// New creates a collector registered on prometheus.DefaultRegisterer.
func New() *Collector {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a collector on a custom registerer; nil skips registration.
func NewWithRegistry(registerer prometheus.Registerer) *Collector {
	c := &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dominance_runs_total",
			Help: "Pipeline runs by operation, source type and status",
		}, []string{"operation", "source", "status"}),
		rows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dominance_rows_total",
			Help: "Observations aggregated",
		}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dominance_rows_dropped_total",
			Help: "Rows dropped for an empty group or category",
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dominance_run_duration_seconds",
			Help:    "Pipeline run duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	if registerer != nil {
		registerer.MustRegister(c.runs, c.rows, c.dropped, c.duration)
	}
	return c
}

// ObserveRun records one finished run.
func (c *Collector) ObserveRun(operation, source string, err error, rows, dropped int, took time.Duration) {
	if c == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.runs.WithLabelValues(operation, source, status).Inc()
	c.rows.Add(float64(rows))
	c.dropped.Add(float64(dropped))
	c.duration.WithLabelValues(operation).Observe(took.Seconds())
}
