package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.005, 0.025, 0.1, 0.5, 1, 2},
		},
		[]string{"method", "endpoint"},
	)

	ActivityEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mythos_activity_events_total",
			Help: "Activity events handed to the publisher, by type and result",
		},
		[]string{"type", "result"},
	)

	storeRecordsDesc = prometheus.NewDesc(
		"mythos_store_records",
		"Number of records held per content store collection",
		[]string{"collection"},
		nil,
	)

	store    = &storeCollector{}
	initOnce sync.Once
)

// storeCollector reads collection sizes at scrape time.
type storeCollector struct {
	mu    sync.RWMutex
	stats func() map[string]int
}

func (s *storeCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- storeRecordsDesc
}

func (s *storeCollector) Collect(ch chan<- prometheus.Metric) {
	s.mu.RLock()
	stats := s.stats
	s.mu.RUnlock()
	if stats == nil {
		return
	}
	for name, n := range stats() {
		ch <- prometheus.MustNewConstMetric(storeRecordsDesc, prometheus.GaugeValue, float64(n), name)
	}
}

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(ActivityEvents)
		prometheus.MustRegister(store)
	})
}

// TrackStore sets the source of the mythos_store_records gauge.
func TrackStore(stats func() map[string]int) {
	store.mu.Lock()
	store.stats = stats
	store.mu.Unlock()
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
