package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "usdcdash"

var (
	sourceRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reconcile",
		Name:      "source_requests_total",
		Help:      "Count of transaction source reads.",
	}, []string{"source", "status"})
	sourceRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "reconcile",
		Name:      "source_request_duration_seconds",
		Help:      "Duration of transaction source reads.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source", "status"})
	cacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Count of cache lookups by kind and result.",
	}, []string{"kind", "result"})
	transfersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "transfers",
		Name:      "state_transitions_total",
		Help:      "Count of transfer state transitions.",
	}, []string{"state"})
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Count of HTTP requests.",
	}, []string{"method", "code"})
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "code"})
)

// ObserveSource records one read of the live or remote transaction source.
func ObserveSource(source string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	sourceRequestsTotal.WithLabelValues(source, status).Inc()
	sourceRequestDuration.WithLabelValues(source, status).Observe(time.Since(started).Seconds())
}

func ObserveCache(kind string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookupsTotal.WithLabelValues(kind, result).Inc()
}

func ObserveTransfer(state string) {
	transfersTotal.WithLabelValues(state).Inc()
}

func ObserveHTTP(method string, code int, started time.Time) {
	status := strconv.Itoa(code)
	httpRequestsTotal.WithLabelValues(method, status).Inc()
	httpRequestDuration.WithLabelValues(method, status).Observe(time.Since(started).Seconds())
}
