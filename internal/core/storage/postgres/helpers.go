package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/turnio-lab/project-turnio/internal/core/ticket"
)

const (
	pqUniqueViolation      = "23505"
	pqSerializationFailure = "40001"
)

// isConflict reports whether err carries a structured conflict signal from
// the driver: a unique violation or a serialization failure. Both mean
// another actor already handled the row, so callers map them to
// storage.ErrDuplicate instead of propagating a failure.
func isConflict(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation || pqErr.Code == pqSerializationFailure
	}
	return false
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanTicketRow scans one ticketColumns row. Compatible with both sql.Row
// and sql.Rows.
func scanTicketRow(row scanner) (*ticket.Ticket, error) {
	var (
		t             ticket.Ticket
		window        sql.NullString
		holderName    sql.NullString
		categoryLabel sql.NullString
		calledAt      sql.NullTime
	)

	err := row.Scan(
		&t.ID,
		&t.Category,
		&t.Sequence,
		&t.Label,
		&t.State,
		&window,
		&holderName,
		&t.Document,
		&categoryLabel,
		&t.CreatedAt,
		&calledAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan ticket row: %w", err)
	}

	t.Window = window.String
	t.HolderName = holderName.String
	t.CategoryLabel = categoryLabel.String
	if calledAt.Valid {
		at := calledAt.Time
		t.CalledAt = &at
	}

	return &t, nil
}

// scanLedgerRow scans one intake_ledger row.
func scanLedgerRow(row scanner) (*ticket.LedgerEntry, error) {
	var (
		e              ticket.LedgerEntry
		assignedTicket sql.NullInt64
		processedAt    sql.NullTime
		passID         sql.NullString
	)

	err := row.Scan(
		&e.ID,
		&e.FirstName,
		&e.MiddleName,
		&e.FirstSurname,
		&e.SecondSurname,
		&e.Document,
		&e.CategoryLabel,
		&e.ReadAt,
		&e.Processed,
		&assignedTicket,
		&processedAt,
		&passID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger row: %w", err)
	}

	if assignedTicket.Valid {
		id := assignedTicket.Int64
		e.AssignedTicket = &id
	}
	if processedAt.Valid {
		at := processedAt.Time
		e.ProcessedAt = &at
	}
	e.PassID = passID.String

	return &e, nil
}
