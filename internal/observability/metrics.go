package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chemctl",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "chemctl",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)
	designRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chemctl",
			Subsystem: "design",
			Name:      "runs_total",
			Help:      "Design calculator runs by outcome.",
		},
		[]string{"service", "calculator", "outcome"},
	)
	designStages = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "chemctl",
			Subsystem: "design",
			Name:      "stages",
			Help:      "Theoretical stage count per completed distillation design.",
			Buckets:   prometheus.LinearBuckets(1, 2, 15),
		},
		[]string{"service"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, designRuns, designStages)
	})
}

func RecordHTTPRequest(service, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(service, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(service, method, path, statusLabel).Observe(duration.Seconds())
}

func RecordDesignRun(service, calculator, outcome string) {
	RegisterMetrics()
	designRuns.WithLabelValues(service, calculator, outcome).Inc()
}

func RecordDesignStages(service string, stages int) {
	RegisterMetrics()
	designStages.WithLabelValues(service).Observe(float64(stages))
}
