// Package metrics defines and registers all custom Prometheus metrics for the
// mess portal API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "messportal"

// ── Vote metrics ──────────────────────────────────────────────────────────────

// VotesSubmittedTotal counts successfully recorded votes.
// Label:
//   - meal: the meal slot voted for (e.g. "lunch")
var VotesSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "votes_submitted_total",
		Help:      "Total number of votes successfully recorded, by meal slot.",
	},
	[]string{"meal"},
)

// VotesDuplicateTotal counts rejected duplicate votes.
var VotesDuplicateTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "votes_duplicate_total",
		Help:      "Total number of vote submissions rejected as duplicates.",
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AdminLoginsTotal counts admin login attempts.
// Label:
//   - result: "success" or "failure"
var AdminLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_logins_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// ── Export metrics ────────────────────────────────────────────────────────────

// ExportsTotal counts admin data exports.
// Label:
//   - format: "csv" or "excel"
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of admin data exports, by format.",
	},
	[]string{"format"},
)
