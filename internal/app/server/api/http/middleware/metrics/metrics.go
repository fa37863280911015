// Package metrics records Prometheus request metrics for huma operations.
package metrics

import (
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bomkeeper_server_requests_total",
			Help: "Total number of handled API requests",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bomkeeper_server_request_duration_seconds",
			Help:    "Duration of API requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

type Metrics struct{}

func New() *Metrics {
	return &Metrics{}
}

// Middleware labels requests by the operation path template, not the raw
// URL, so sheet names and ids do not create new series.
func (m *Metrics) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		next(ctx)

		path := ctx.URL().Path
		if op := ctx.Operation(); op != nil {
			path = op.Path
		}
		method := ctx.Method()

		RequestsTotal.WithLabelValues(method, path, strconv.Itoa(ctx.Status())).Inc()
		RequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
