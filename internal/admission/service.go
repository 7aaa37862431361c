// Package admission decides which intake ledger entries become tickets and
// allocates their sequence numbers through the ticket store.
package admission

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/turnio-lab/project-turnio/internal/cache"
	"github.com/turnio-lab/project-turnio/internal/core/storage"
	"github.com/turnio-lab/project-turnio/internal/intake"
	"github.com/turnio-lab/project-turnio/internal/metrics"
)

// Service runs admission passes: sync intake, then for each pending ledger
// entry either suppress (an open ticket already exists for the document
// today) or admit through the store's serializable issue transaction.
type Service struct {
	syncer      *intake.Syncer
	tickets     storage.TicketStore
	ledger      storage.LedgerStore
	scanCache   *cache.ScanCache
	openTickets *cache.OpenTicketCache
	category    string
}

// NewService wires an admission service. category is the code newly issued
// tickets are numbered under.
func NewService(
	syncer *intake.Syncer,
	tickets storage.TicketStore,
	ledger storage.LedgerStore,
	scanCache *cache.ScanCache,
	openTickets *cache.OpenTicketCache,
	category string,
) *Service {
	if syncer == nil {
		panic("admission: syncer must not be nil")
	}
	if tickets == nil {
		panic("admission: ticket store must not be nil")
	}
	if ledger == nil {
		panic("admission: ledger store must not be nil")
	}
	if scanCache == nil {
		panic("admission: scan cache must not be nil")
	}
	if openTickets == nil {
		panic("admission: open-ticket cache must not be nil")
	}
	if category == "" {
		category = "A"
	}
	return &Service{
		syncer:      syncer,
		tickets:     tickets,
		ledger:      ledger,
		scanCache:   scanCache,
		openTickets: openTickets,
		category:    category,
	}
}

// RunPass executes one admission cycle and returns the number of tickets
// issued. Each pass gets a correlation id that is stamped on every ledger
// entry it closes. Individual entry failures are logged and skipped; the
// pass itself never fails.
func (s *Service) RunPass(ctx context.Context, trigger string) int {
	passID := uuid.New().String()
	metrics.AdmissionPasses.WithLabelValues(trigger).Inc()

	// Drop the scan memo so this pass sees the freshest feed state.
	s.scanCache.Clear()

	entries := s.syncer.Sync(ctx)
	if len(entries) == 0 {
		return 0
	}

	slog.Info("[Admission] Processing pending entries",
		"pending", len(entries),
		"trigger", trigger,
		"pass_id", passID)

	issued := 0
	for _, entry := range entries {
		if s.hasOpenTicket(ctx, entry.Document) {
			if err := s.ledger.MarkProcessed(ctx, entry.ID, passID); err != nil {
				slog.Error("[Admission] Failed to close suppressed entry",
					"ledger_entry", entry.ID,
					"error", err)
				continue
			}
			metrics.AdmissionsSuppressed.Inc()
			slog.Info("[Admission] Suppressed re-appearance",
				"document", entry.Document,
				"ledger_entry", entry.ID,
				"pass_id", passID)
			continue
		}

		t, err := s.tickets.IssueTicket(ctx, entry, s.category, passID)
		if errors.Is(err, storage.ErrDuplicate) {
			// A concurrent actor got there first, or the sequence collided
			// with another document's insert. The entry stays unprocessed
			// and the next pass asks the store again; the memo must not be
			// written here because the conflict says nothing about whether
			// THIS document holds a ticket.
			slog.Info("[Admission] Concurrent admission already handled entry",
				"document", entry.Document,
				"ledger_entry", entry.ID)
			continue
		}
		if err != nil {
			slog.Error("[Admission] Failed to issue ticket",
				"document", entry.Document,
				"ledger_entry", entry.ID,
				"error", err)
			continue
		}

		s.openTickets.Set(entry.Document, true)
		metrics.TicketsIssued.WithLabelValues(s.category).Inc()
		issued++
		slog.Info("[Admission] Ticket issued",
			"label", t.Label,
			"document", t.Document,
			"pass_id", passID)
	}

	if issued > 0 {
		slog.Info("[Admission] Pass complete", "issued", issued, "pass_id", passID)
	}
	return issued
}

// hasOpenTicket answers the dedup question through the per-minute memo,
// falling back to the store. A store error answers false: the serializable
// issue transaction is the actual guard, this is only a fast path.
func (s *Service) hasOpenTicket(ctx context.Context, document string) bool {
	if open, ok := s.openTickets.Get(document); ok {
		return open
	}

	count, err := s.tickets.OpenTicketCount(ctx, document)
	if err != nil {
		slog.Error("[Admission] Failed to count open tickets",
			"document", document,
			"error", err)
		return false
	}

	open := count > 0
	s.openTickets.Set(document, open)
	return open
}
