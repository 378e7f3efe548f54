// Package metrics defines and registers all custom Prometheus metrics for
// the shoplite API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default registry via promauto; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shoplite"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successful registrations.
// Label:
//   - role: the derived role ("admin" or "customer")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful account registrations, by derived role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer token verifications in the auth
// middleware.
// Label:
//   - result: "ok" or "rejected"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// PasswordUpdatesTotal counts completed password updates.
// Label:
//   - flow: "change" (authenticated) or "recovery" (email+birthdate)
var PasswordUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_updates_total",
		Help:      "Total number of successful password updates, by flow.",
	},
	[]string{"flow"},
)

// ── Commerce metrics ──────────────────────────────────────────────────────────

// OrdersPlacedTotal counts order submissions.
// Label:
//   - result: "placed", "replayed" (idempotency hit) or "rejected"
var OrdersPlacedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of order submissions, by result.",
	},
	[]string{"result"},
)

// OrderValueCents observes the total value of successfully placed orders.
var OrderValueCents = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_value_cents",
		Help:      "Distribution of placed order totals in cents.",
		Buckets:   prometheus.ExponentialBuckets(100, 4, 8), // 1,4,16,... up to ~160k cents
	},
)

// StockAdjustmentsTotal counts manual inventory adjustments.
// Label:
//   - direction: "up" or "down"
var StockAdjustmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_adjustments_total",
		Help:      "Total number of manual inventory adjustments, by direction.",
	},
	[]string{"direction"},
)
