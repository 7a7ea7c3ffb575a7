package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	dbConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	dbConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	wsConnectionsTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "websocket_connections_total",
			Help: "Total number of WebSocket connections",
		},
		[]string{"type"}, // user, worker, operator
	)

	pickupsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pickups_created_total",
			Help: "Total number of pickup requests created",
		},
	)

	pickupsAssignedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pickups_assigned_total",
			Help: "Total number of pickups assigned to workers",
		},
	)

	tasksCompletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tasks_completed_total",
			Help: "Total number of worker tasks completed",
		},
	)
)

// PrometheusMiddleware records HTTP request metrics
func PrometheusMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		path := ctx.FullPath()
		if path == "/metrics" || path == "/health" || path == "/ready" {
			ctx.Next()
			return
		}

		// empty path means 404, fall back to the raw URL
		if path == "" {
			path = ctx.Request.URL.Path
		}

		httpRequestsInFlight.Inc()
		start := time.Now()

		ctx.Next()

		httpRequestsInFlight.Dec()
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(ctx.Writer.Status())

		httpRequestsTotal.WithLabelValues(ctx.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(ctx.Request.Method, path).Observe(duration)
	}
}

// MetricsHandler returns the Prometheus scrape handler
func MetricsHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(ctx *gin.Context) {
		h.ServeHTTP(ctx.Writer, ctx.Request)
	}
}

// UpdateDBMetrics updates the connection pool gauges (call periodically)
func UpdateDBMetrics(active, idle int) {
	dbConnectionsActive.Set(float64(active))
	dbConnectionsIdle.Set(float64(idle))
}

// UpdateWSMetrics updates the WebSocket connection gauges
func UpdateWSMetrics(users, workers, operators int) {
	wsConnectionsTotal.WithLabelValues("user").Set(float64(users))
	wsConnectionsTotal.WithLabelValues("worker").Set(float64(workers))
	wsConnectionsTotal.WithLabelValues("operator").Set(float64(operators))
}

// RecordPickupCreated counts a new pickup request
func RecordPickupCreated() {
	pickupsCreatedTotal.Inc()
}

// RecordPickupAssigned counts a dispatched pickup
func RecordPickupAssigned() {
	pickupsAssignedTotal.Inc()
}

// RecordTaskCompleted counts a finished worker task
func RecordTaskCompleted() {
	tasksCompletedTotal.Inc()
}
