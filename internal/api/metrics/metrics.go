// Package metrics defines and registers all custom Prometheus metrics for
// the inventory admin console. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at package load and
// are exposed on the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// ── Backend client metrics ───────────────────────────────────────────────────

// BackendRequestsTotal counts outbound calls to the inventory backend.
// Labels:
//   - op: logical operation name (e.g. "list_products", "submit_sale")
//   - outcome: "ok", "api_error" (backend returned 4xx/5xx) or "transport"
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of outbound backend API calls, by operation and outcome.",
	},
	[]string{"op", "outcome"},
)

// ── Session metrics ──────────────────────────────────────────────────────────

// SessionsActive tracks the number of live operator sessions held in memory.
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Current number of authenticated operator sessions.",
	},
)

// ── Point-of-sale metrics ────────────────────────────────────────────────────

// SalesSubmittedTotal counts sale submissions by result ("ok" / "failed").
var SalesSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sales_submitted_total",
		Help:      "Total number of sale submissions, by result.",
	},
	[]string{"result"},
)

// InvoicesRenderedTotal counts invoice PDF renders by result ("ok" / "error").
var InvoicesRenderedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoices_rendered_total",
		Help:      "Total number of invoice documents rendered, by result.",
	},
	[]string{"result"},
)

// CatalogFetchesSuperseded counts POS catalog fetches whose result was
// discarded because a newer fetch for the same session had already begun.
var CatalogFetchesSuperseded = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_fetches_superseded_total",
		Help:      "Total number of catalog fetches discarded as stale.",
	},
)

// ── User management metrics ──────────────────────────────────────────────────

// UsersCreatedTotal counts user accounts registered through the console.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created through the console.",
	},
)

// DashboardSectionErrors counts dashboard report sections that failed to
// load, by section name.
var DashboardSectionErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_section_errors_total",
		Help:      "Total number of dashboard report sections that failed to load.",
	},
	[]string{"section"},
)
