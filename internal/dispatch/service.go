// Package dispatch serves windows: calling the next waiting ticket and
// closing out the one in service.
package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/turnio-lab/project-turnio/internal/admission"
	"github.com/turnio-lab/project-turnio/internal/cache"
	"github.com/turnio-lab/project-turnio/internal/core/storage"
	"github.com/turnio-lab/project-turnio/internal/core/ticket"
	"github.com/turnio-lab/project-turnio/internal/metrics"
)

// ErrInvalidWindow rejects call attempts without a usable window name.
var ErrInvalidWindow = errors.New("window name must not be empty")

type Service struct {
	tickets     storage.TicketStore
	admitter    *admission.Service
	openTickets *cache.OpenTicketCache
}

func NewService(tickets storage.TicketStore, admitter *admission.Service, openTickets *cache.OpenTicketCache) *Service {
	if tickets == nil {
		panic("dispatch: ticket store must not be nil")
	}
	if admitter == nil {
		panic("dispatch: admission service must not be nil")
	}
	if openTickets == nil {
		panic("dispatch: open-ticket cache must not be nil")
	}
	return &Service{
		tickets:     tickets,
		admitter:    admitter,
		openTickets: openTickets,
	}
}

// CallNext claims the oldest waiting ticket for the window. An admission
// pass runs first so walk-ins that arrived since the last poll join the
// queue before the window picks. A window with a ticket still in service
// gets ErrWindowBusy and no state changes.
func (s *Service) CallNext(ctx context.Context, window string) (*ticket.Ticket, error) {
	window = strings.TrimSpace(window)
	if window == "" {
		return nil, ErrInvalidWindow
	}

	// Cheap upfront check; the claim transaction re-validates it.
	_, err := s.tickets.ActiveForWindow(ctx, window)
	if err == nil {
		metrics.CallConflicts.Inc()
		slog.Warn("[Dispatch] Window still has a ticket in service", "window", window)
		return nil, storage.ErrWindowBusy
	}
	if !errors.Is(err, storage.ErrTicketNotFound) {
		slog.Error("[Dispatch] Failed to check window status", "window", window, "error", err)
	}

	s.admitter.RunPass(ctx, "call_next")

	t, err := s.tickets.ClaimNext(ctx, window)
	if errors.Is(err, storage.ErrWindowBusy) {
		metrics.CallConflicts.Inc()
		slog.Warn("[Dispatch] Window still has a ticket in service", "window", window)
		return nil, err
	}
	if errors.Is(err, storage.ErrNoTicketAvailable) {
		slog.Info("[Dispatch] No waiting tickets to call", "window", window)
		return nil, err
	}
	if err != nil {
		slog.Error("[Dispatch] Failed to claim next ticket", "window", window, "error", err)
		return nil, err
	}

	slog.Info("[Dispatch] Ticket called",
		"label", t.Label,
		"window", window,
		"holder", t.HolderName)
	return t, nil
}

// MarkServed closes out an in-service ticket and drops the holder's
// dedup memo so they can be admitted again immediately.
func (s *Service) MarkServed(ctx context.Context, ticketID int64) (*ticket.Ticket, error) {
	t, err := s.tickets.MarkServed(ctx, ticketID)
	if err != nil {
		if !errors.Is(err, storage.ErrTicketNotFound) && !errors.Is(err, storage.ErrNotInService) {
			slog.Error("[Dispatch] Failed to mark ticket served", "ticket_id", ticketID, "error", err)
		}
		return nil, err
	}

	s.openTickets.Invalidate(t.Document)
	metrics.TicketsServed.Inc()

	slog.Info("[Dispatch] Ticket served", "label", t.Label, "window", t.Window)
	return t, nil
}

// WindowStatus returns the window's in-service ticket, or
// storage.ErrTicketNotFound when the window is free.
func (s *Service) WindowStatus(ctx context.Context, window string) (*ticket.Ticket, error) {
	window = strings.TrimSpace(window)
	if window == "" {
		return nil, ErrInvalidWindow
	}
	return s.tickets.ActiveForWindow(ctx, window)
}

// RunAdmission triggers one admission pass outside the call-next path and
// returns the number of tickets issued.
func (s *Service) RunAdmission(ctx context.Context) int {
	return s.admitter.RunPass(ctx, "manual")
}
