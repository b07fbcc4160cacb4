// Package metrics defines the custom Prometheus metrics of the QVEMA API.
// Metrics are registered with the default registry at init via promauto;
// HTTP request metrics come from the echoprometheus middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "qvema"

// AuthorizationDecisionsTotal counts authorization policy outcomes.
// Labels:
//   - resource: "project", "investment", "interest", "admin_area"
//   - action:   "update", "delete", "list_by_project", "access"
//   - reason:   policy reason code (e.g. "owner", "not_investor")
//   - outcome:  "allow" or "deny"
var AuthorizationDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_decisions_total",
		Help:      "Total number of authorization policy decisions.",
	},
	[]string{"resource", "action", "reason", "outcome"},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "error", "rate_limited"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts by result.",
	},
	[]string{"result"},
)

// EntitiesCreatedTotal counts created records.
// Label:
//   - kind: "user", "project", "investment", "interest"
var EntitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_created_total",
		Help:      "Total number of records created, by kind.",
	},
	[]string{"kind"},
)

// InvestedAmountTotal sums the amounts of created investments.
var InvestedAmountTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invested_amount_total",
		Help:      "Sum of the amounts of all investments created.",
	},
)
