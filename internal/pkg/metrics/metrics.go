// Package metrics defines and registers the custom Prometheus metrics of the
// ticketing API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// initialisation. HTTP request metrics are produced separately by the
// echoprometheus middleware installed in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ticketing"

// ── Dispatcher metrics ────────────────────────────────────────────────────────

// OperationsTotal counts dispatched operations.
// Labels:
//   - operation: operation name (e.g. "book_ticket", "bulk_read")
//   - outcome: "ok", "forbidden", "connect_failed", "invalid", "rejected", "not_found", "error"
var OperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_total",
		Help:      "Total number of dispatched operations, by name and outcome.",
	},
	[]string{"operation", "outcome"},
)

// OperationDuration measures the time from connection acquisition to release.
// Label:
//   - operation: operation name
var OperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "operation_duration_seconds",
		Help:      "Duration of dispatched operations including connection acquisition.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// ── Connection metrics ────────────────────────────────────────────────────────

// ConnectionFailuresTotal counts failed role-scoped connection acquisitions.
// Label:
//   - role: "User" or "Admin"
var ConnectionFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "connection_failures_total",
		Help:      "Total number of failed role-scoped connection acquisitions.",
	},
	[]string{"role"},
)

// ── Transaction metrics ───────────────────────────────────────────────────────

// TransactionsTotal counts finished write transactions.
// Labels:
//   - operation: the write operation (e.g. "register_user")
//   - result: "commit" or "rollback"
var TransactionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_total",
		Help:      "Total number of write transactions, by operation and result.",
	},
	[]string{"operation", "result"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsTracked is the number of identities held by the in-memory session store.
var SessionsTracked = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_tracked",
		Help:      "Number of client identities with a bound role in the in-memory session store.",
	},
)
