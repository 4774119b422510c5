// Package metrics defines and registers all custom Prometheus metrics for
// the Lore Hub API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics use promauto, so they register with the default registry at
// package initialisation; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lorehub"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "not_found"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// UsersCreatedTotal counts user records created through the admin API or
// self-service registration.
// Label:
//   - role: "ADMIN" or "USER"
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created, by role.",
	},
	[]string{"role"},
)

// AuditEntriesWrittenTotal counts audit entries persisted by the workers.
// Label:
//   - action: the admin mutation recorded (e.g. "user_deleted")
var AuditEntriesWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_entries_written_total",
		Help:      "Total number of audit entries persisted, by action.",
	},
	[]string{"action"},
)

// AuditEntriesDroppedTotal counts audit entries dropped because a worker
// channel was full.
var AuditEntriesDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_entries_dropped_total",
		Help:      "Total number of audit entries dropped due to backpressure.",
	},
)

// AuditQueueDepth tracks the current number of entries waiting in each
// audit worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each worker channel.",
	},
	[]string{"worker_id"},
)
