package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BackendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_backend_requests_total",
			Help: "Total number of requests issued to the REST backend",
		},
		[]string{"method", "resource", "outcome"},
	)

	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_backend_request_duration_seconds",
			Help:    "Duration of REST backend requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "resource"},
	)

	// BackendInFlight is raised for the duration of every backend call and always lowered afterwards.
	BackendInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_backend_requests_in_flight",
			Help: "Number of REST backend requests currently in flight",
		},
	)

	PageRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_page_renders_total",
			Help: "Total number of rendered pages and fragments per tab",
		},
		[]string{"tab", "kind"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_http_request_duration_seconds",
			Help:    "Duration of dashboard HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	BackendUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_backend_up",
			Help: "1 when the last health probe reached the backend, 0 otherwise",
		},
	)
)
