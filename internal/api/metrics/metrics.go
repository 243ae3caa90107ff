// Package metrics defines and registers all custom Prometheus metrics for
// the notes API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "notes"

// LoginsTotal counts identity-link calls by resolution outcome.
// Label:
//   - outcome: "ok" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of identity-link sign-ins, by outcome.",
	},
	[]string{"outcome"},
)

// NotesCreatedTotal counts successfully created notes.
var NotesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of notes created.",
	},
)

// NotesUpdatedTotal counts successful note updates.
var NotesUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "updated_total",
		Help:      "Total number of notes updated.",
	},
)

// NotesDeletedTotal counts successful note deletions.
var NotesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deleted_total",
		Help:      "Total number of notes deleted.",
	},
)
