package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	HttpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HttpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Application metrics
	ReviewsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_created_total",
			Help: "Total number of reviews created",
		},
	)

	FollowsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "follows_created_total",
			Help: "Total number of follow edges created",
		},
	)

	CatalogRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of requests to the external game catalog",
		},
		[]string{"status"}, // success or failure
	)

	// Error metrics
	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors",
		},
		[]string{"type", "endpoint"},
	)
)

// InitMetrics initializes Prometheus metrics
func InitMetrics() {
	prometheus.MustRegister(HttpRequestsTotal)
	prometheus.MustRegister(HttpRequestDuration)
	prometheus.MustRegister(ReviewsCreatedTotal)
	prometheus.MustRegister(FollowsCreatedTotal)
	prometheus.MustRegister(CatalogRequestsTotal)
	prometheus.MustRegister(ErrorsTotal)
}

// PrometheusMiddleware collects metrics for each request
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		HttpRequestsTotal.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		HttpRequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(duration)

		if c.Writer.Status() >= 500 {
			ErrorsTotal.WithLabelValues("server", endpoint).Inc()
		}
	}
}

// MetricsHandler exposes the Prometheus scrape endpoint
func MetricsHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
