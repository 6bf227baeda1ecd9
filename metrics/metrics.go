// Package metrics defines the Prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values shared by handlers and middleware
const (
	RouteUnmatched = "unmatched"
	QueryPresent   = "present"
	QueryAbsent    = "absent"
)

var (
	// RequestsTotal - 총 요청 수
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hello_service_requests_total",
			Help: "Total number of HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration - 요청 처리 시간
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hello_service_request_duration_seconds",
			Help:    "Request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ItemsRead counts item lookups, split by whether q was supplied
	ItemsRead = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hello_service_items_read_total",
			Help: "Total number of item reads by presence of the q query parameter",
		},
		[]string{"query"},
	)

	// ValidationErrors counts requests rejected by parameter coercion
	ValidationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hello_service_validation_errors_total",
			Help: "Total number of requests rejected with 422 by route and field",
		},
		[]string{"route", "field"},
	)

	// RateLimited counts requests rejected with 429
	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hello_service_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	// BuildInfo is always 1; the labels carry the deployment identity
	BuildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hello_service_build_info",
			Help: "Service, revision and version of the running process",
		},
		[]string{"service", "revision", "version"},
	)
)

// SetBuildInfo records the running deployment.
func SetBuildInfo(service, revision, version string) {
	BuildInfo.WithLabelValues(service, revision, version).Set(1)
}

// QueryLabel maps the presence of an optional query value to a label value.
func QueryLabel(present bool) string {
	if present {
		return QueryPresent
	}
	return QueryAbsent
}
