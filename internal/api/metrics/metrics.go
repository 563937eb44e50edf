// Package metrics defines and registers all custom Prometheus metrics for the
// ECIRS billing API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ecirs"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "forbidden"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// UsersRegisteredTotal counts staff accounts created through registration.
// Label:
//   - role: the role assigned to the new account (e.g. "sales_executive")
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of staff accounts registered, by role.",
	},
	[]string{"role"},
)

// ── Billing metrics ───────────────────────────────────────────────────────────

// InvoicesIssuedTotal counts invoices issued against contracts.
var InvoicesIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoices_issued_total",
		Help:      "Total number of invoices issued.",
	},
)

// ReceiptsRecordedTotal counts payments recorded against invoices.
// Label:
//   - method: payment channel ("cash", "transfer", "cheque", "pos")
var ReceiptsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "receipts_recorded_total",
		Help:      "Total number of receipts recorded, by payment method.",
	},
	[]string{"method"},
)

// ContractTransitionsTotal counts contract status changes.
// Label:
//   - to: the status the contract moved to (e.g. "approved")
var ContractTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contract_transitions_total",
		Help:      "Total number of contract status transitions, by target status.",
	},
	[]string{"to"},
)

// ── Ledger metrics ────────────────────────────────────────────────────────────

// LedgerQueueDepth tracks the current number of postings waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var LedgerQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ledger_queue_depth",
		Help:      "Current number of ledger postings pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
