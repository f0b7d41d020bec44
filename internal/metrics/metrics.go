// Package metrics provides Prometheus instrumentation for the ledger service.
package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pod_ledger"

var (
	// HTTPRequestsTotal counts HTTP requests by method, path, and status.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, path pattern, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method and path.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// WalletTransactionsTotal counts committed wallet ledger entries by type.
	WalletTransactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wallet_transactions_total",
			Help:      "Committed wallet transactions by type.",
		},
		[]string{"type"},
	)

	// AdvanceTransitionsTotal counts committed advance lifecycle changes.
	AdvanceTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "advance_transitions_total",
			Help:      "Committed advance status transitions by resulting status.",
		},
		[]string{"status"},
	)

	// LedgerOpDuration observes service operation latency.
	LedgerOpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ledger_operation_duration_seconds",
			Help:      "Ledger operation duration in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
		[]string{"op"},
	)

	// AdvanceNumberRetriesTotal counts advance number collisions retried.
	AdvanceNumberRetriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "advance_number_retries_total",
		Help:      "Advance number collisions that were retried under a savepoint.",
	})

	// IdempotencyLookupsTotal counts replay lookups by operation scope,
	// storage layer and outcome (hit, miss, error, conflict).
	IdempotencyLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "idempotency_lookups_total",
			Help:      "Idempotency key lookups by scope, layer, and result.",
		},
		[]string{"scope", "layer", "result"},
	)

	// DependencyUp is 1 when the last health check of a dependency passed.
	DependencyUp = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dependency_up",
			Help:      "Result of the last health check per dependency (1 up, 0 down).",
		},
		[]string{"dependency"},
	)

	// StoreErrorsTotal counts Ledger Store failures outside query results.
	StoreErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "Ledger store failures by operation.",
		},
		[]string{"op"},
	)

	// AuditFailuresTotal counts audit records that could not be persisted.
	AuditFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_persist_failures_total",
		Help:      "Audit records dropped after a persistence failure.",
	})
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		WalletTransactionsTotal,
		AdvanceTransitionsTotal,
		LedgerOpDuration,
		AdvanceNumberRetriesTotal,
		AuditFailuresTotal,
		IdempotencyLookupsTotal,
		DependencyUp,
		StoreErrorsTotal,
	)
}

// RecordHealth sets the dependency gauge from a health check result and
// returns err unchanged.
func RecordHealth(dependency string, err error) error {
	up := 1.0
	if err != nil {
		up = 0
	}
	DependencyUp.WithLabelValues(dependency).Set(up)
	return err
}

// ObserveOp returns a function that records the operation's duration.
func ObserveOp(op string) func() {
	start := time.Now()
	return func() {
		LedgerOpDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}

// Middleware returns a gin middleware that records request metrics.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := prometheus.NewTimer(HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(), // route pattern keeps label cardinality bounded
		))

		c.Next()

		timer.ObserveDuration()
		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			statusBucket(c.Writer.Status()),
		).Inc()
	}
}

// Handler serves the Prometheus exposition format.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

func statusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
