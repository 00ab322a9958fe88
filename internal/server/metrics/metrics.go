// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Label values for LogQueriesTotal.
const (
	QueryOK           = "ok"
	QueryInvalidRange = "invalid_range"
)

var (
	// RequestTotal counts HTTP requests by method, route and status.
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exercisetracker_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	// RequestDuration is the latency of HTTP requests.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "exercisetracker_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	LogEntriesAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "exercisetracker_log_entries_added_total",
			Help: "Total number of exercise log entries stored",
		},
	)
	LogQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exercisetracker_log_queries_total",
			Help: "Total number of log queries by outcome",
		},
		[]string{"result"},
	)
)

// Middleware records RequestTotal and RequestDuration. Requests that matched
// no route are reported under the path "unmatched" to keep cardinality low.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		RequestTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		RequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler returns the Prometheus HTTP handler for /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
