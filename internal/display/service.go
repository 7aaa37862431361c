// Package display is the read-only presentation surface: waiting-room
// screens and window consoles poll it frequently, so every read fails soft
// to empty data instead of surfacing store errors.
package display

import (
	"context"
	"errors"
	"log/slog"

	"github.com/turnio-lab/project-turnio/internal/core/storage"
	"github.com/turnio-lab/project-turnio/internal/core/ticket"
	"github.com/turnio-lab/project-turnio/internal/intake"
)

// Stats is the daily snapshot shown on the board header.
type Stats struct {
	WaitingByCategory map[string]int `json:"waiting_by_category"`
	TotalWaiting      int            `json:"total_waiting"`
	InService         int            `json:"in_service"`
	IssuedToday       int            `json:"issued_today"`
}

type Service struct {
	store  storage.DisplayStore
	syncer *intake.Syncer
}

func NewService(store storage.DisplayStore, syncer *intake.Syncer) *Service {
	if store == nil {
		panic("display: store must not be nil")
	}
	if syncer == nil {
		panic("display: syncer must not be nil")
	}
	return &Service{
		store:  store,
		syncer: syncer,
	}
}

// Current returns the most recently called ticket, or nil when nothing has
// been called today.
func (s *Service) Current(ctx context.Context) *ticket.Ticket {
	t, err := s.store.CurrentTicket(ctx)
	if errors.Is(err, storage.ErrTicketNotFound) {
		return nil
	}
	if err != nil {
		slog.Error("[Display] Failed to load current ticket", "error", err)
		return nil
	}
	return t
}

// Recent returns previously called tickets newest-first, excluding the
// current one.
func (s *Service) Recent(ctx context.Context, limit int) []*ticket.Ticket {
	tickets, err := s.store.RecentCalled(ctx, 1, limit)
	if err != nil {
		slog.Error("[Display] Failed to load recent tickets", "error", err)
		return []*ticket.Ticket{}
	}
	return tickets
}

// ByState lists tickets in one lifecycle state, oldest first.
func (s *Service) ByState(ctx context.Context, state ticket.State, limit int) []*ticket.Ticket {
	tickets, err := s.store.TicketsByState(ctx, state, limit)
	if err != nil {
		slog.Error("[Display] Failed to list tickets", "state", state, "error", err)
		return []*ticket.Ticket{}
	}
	return tickets
}

// DailyStats builds the board header snapshot. A partial store failure
// yields zeroes for the affected figures, never an error.
func (s *Service) DailyStats(ctx context.Context) Stats {
	stats := Stats{WaitingByCategory: map[string]int{}}

	waiting, err := s.store.WaitingByCategory(ctx)
	if err != nil {
		slog.Error("[Display] Failed to count waiting tickets", "error", err)
	} else {
		stats.WaitingByCategory = waiting
		for _, n := range waiting {
			stats.TotalWaiting += n
		}
	}

	inService, err := s.store.TicketsByState(ctx, ticket.StateInService, 100)
	if err != nil {
		slog.Error("[Display] Failed to count in-service tickets", "error", err)
	} else {
		stats.InService = len(inService)
	}

	issued, err := s.store.IssuedToday(ctx)
	if err != nil {
		slog.Error("[Display] Failed to count issued tickets", "error", err)
	} else {
		stats.IssuedToday = issued
	}

	return stats
}

// PendingIntake exposes the cached feed scan so staff can see today's
// arrivals before they are admitted.
func (s *Service) PendingIntake(ctx context.Context) []*ticket.IntakeRecord {
	records := s.syncer.Scan(ctx)
	if records == nil {
		return []*ticket.IntakeRecord{}
	}
	return records
}
