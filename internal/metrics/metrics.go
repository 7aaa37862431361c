// Package metrics exposes Prometheus counters for the dispatch pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TicketsIssued counts tickets created by admission passes, by category.
	TicketsIssued = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "turnio_tickets_issued_total",
		Help: "Tickets issued by admission passes.",
	}, []string{"category"})

	// AdmissionsSuppressed counts ledger entries suppressed because the
	// document already had an open ticket.
	AdmissionsSuppressed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "turnio_admissions_suppressed_total",
		Help: "Intake entries suppressed by the open-ticket rule.",
	})

	// TicketsServed counts tickets transitioned to served.
	TicketsServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "turnio_tickets_served_total",
		Help: "Tickets marked served by windows.",
	})

	// CallConflicts counts call-next attempts rejected because the window
	// was still busy.
	CallConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "turnio_call_conflicts_total",
		Help: "Call-next attempts rejected with window-busy.",
	})

	// SyncFailures counts intake sync cycles that degraded to an empty
	// result because of a store or feed error.
	SyncFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "turnio_intake_sync_failures_total",
		Help: "Intake sync cycles that failed soft.",
	})

	// AdmissionPasses counts admission passes, by trigger.
	AdmissionPasses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "turnio_admission_passes_total",
		Help: "Admission passes run.",
	}, []string{"trigger"})
)
