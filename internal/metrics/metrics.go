package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BeritaViewsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "berita_views_total",
		Help: "Public berita detail views.",
	})

	LaporanSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "laporan_submitted_total",
		Help: "Reports submitted by citizens.",
	})

	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limited_requests_total",
			Help: "Requests rejected by the rate limiter.",
		},
		[]string{"path"},
	)
)
