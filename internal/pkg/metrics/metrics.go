package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Результаты операций
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geography_http_requests_total",
		Help: "Total HTTP requests by route and status",
	}, []string{"method", "route", "status"})
	HTTPRequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "geography_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 2000},
	}, []string{"method", "route"})
	UpgradesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geography_upgrades_total",
		Help: "Geography object coordinate upgrades by outcome and error code",
	}, []string{"outcome", "code"})
	ListCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geography_list_cache_hits_total",
		Help: "Geography objects list cache hits",
	})
	ListCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geography_list_cache_misses_total",
		Help: "Geography objects list cache misses",
	})
	APILogsWrittenTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geography_api_logs_written_total",
		Help: "API log entries processed by the worker by outcome",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationMs)
	prometheus.MustRegister(UpgradesTotal)
	prometheus.MustRegister(ListCacheHitsTotal)
	prometheus.MustRegister(ListCacheMissesTotal)
	prometheus.MustRegister(APILogsWrittenTotal)
}

func Handler() http.Handler {
	return promhttp.Handler()
}
