package storage

import (
	"context"
	"errors"

	"github.com/turnio-lab/project-turnio/internal/core/ticket"
)

// ErrDuplicate is returned when a uniqueness constraint fires: a ledger entry
// already mirrored for (document, day), or a concurrent actor issued the open
// ticket first. Callers treat it as a benign race, never a failure.
var ErrDuplicate = errors.New("row already exists")

// ErrNoTicketAvailable is returned by ClaimNext when no waiting ticket exists.
// Informational, not a failure.
var ErrNoTicketAvailable = errors.New("no waiting ticket available")

// ErrWindowBusy is returned by ClaimNext when the window already has a ticket
// in service. The operation is aborted with no state change.
var ErrWindowBusy = errors.New("window already has a ticket in service")

// ErrTicketNotFound is returned when a ticket id (or a window's active
// ticket) does not exist.
var ErrTicketNotFound = errors.New("ticket not found")

// ErrNotInService is returned by MarkServed when the ticket exists but is not
// in_service; lifecycle transitions are one-directional.
var ErrNotInService = errors.New("ticket is not in service")

// TicketStore is the transactional write/read interface over the ticket table.
type TicketStore interface {
	// IssueTicket admits one ledger entry: inside a single serializable
	// transaction it re-checks the open-ticket invariant for the document,
	// allocates max(sequence)+1 for (category, today), inserts the waiting
	// ticket and marks the ledger entry processed. Returns ErrDuplicate when
	// a concurrent actor got there first.
	IssueTicket(ctx context.Context, entry *ticket.LedgerEntry, category, passID string) (*ticket.Ticket, error)

	// OpenTicketCount counts the document's tickets for today in states
	// waiting or in_service.
	OpenTicketCount(ctx context.Context, document string) (int, error)

	// ClaimNext moves the oldest waiting ticket to in_service and binds it to
	// the window. Returns ErrWindowBusy or ErrNoTicketAvailable.
	ClaimNext(ctx context.Context, window string) (*ticket.Ticket, error)

	// MarkServed transitions in_service -> served and returns the served
	// ticket. Returns ErrTicketNotFound or ErrNotInService.
	MarkServed(ctx context.Context, ticketID int64) (*ticket.Ticket, error)

	// ActiveForWindow returns the window's in_service ticket, or
	// ErrTicketNotFound when the window is free.
	ActiveForWindow(ctx context.Context, window string) (*ticket.Ticket, error)
}

// LedgerStore owns the intake_ledger mirror of the external feed.
type LedgerStore interface {
	// MirrorRecord inserts the record's ledger entry if (document, today) is
	// unseen. Returns ErrDuplicate when the entry already exists.
	MirrorRecord(ctx context.Context, rec *ticket.IntakeRecord) error

	// PendingEntries returns today's unprocessed entries, oldest-arrival
	// (insertion order) first. This ordering is the fairness guarantee.
	PendingEntries(ctx context.Context, limit int) ([]*ticket.LedgerEntry, error)

	// ReopenEntry re-opens the document's processed entry for today when the
	// feed shows more appearances than tickets already issued: the person
	// was served and has come back. Reports whether an entry was reopened.
	ReopenEntry(ctx context.Context, document string, appearances int) (bool, error)

	// MarkProcessed flags an entry processed without an assigned ticket
	// (the suppress path).
	MarkProcessed(ctx context.Context, entryID int64, passID string) error
}

// DisplayStore is the read-only query surface for the presentation layer.
type DisplayStore interface {
	TicketsByState(ctx context.Context, state ticket.State, limit int) ([]*ticket.Ticket, error)

	// CurrentTicket returns the most recently called ticket regardless of
	// whether it has since been served. ErrTicketNotFound when nothing has
	// been called yet.
	CurrentTicket(ctx context.Context) (*ticket.Ticket, error)

	// RecentCalled returns called tickets ordered newest-first, skipping
	// offset rows (offset=1 excludes the current ticket).
	RecentCalled(ctx context.Context, offset, limit int) ([]*ticket.Ticket, error)

	WaitingByCategory(ctx context.Context) (map[string]int, error)

	IssuedToday(ctx context.Context) (int, error)
}
