package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/turnio-lab/project-turnio/internal/core/storage"
	"github.com/turnio-lab/project-turnio/internal/core/ticket"
)

// LedgerAdapter implements storage.LedgerStore using PostgreSQL, sharing the
// ticket adapter's connection. The ledger is the append-only audit trail of
// intake observations; entries are never deleted.
type LedgerAdapter struct {
	db *sql.DB
}

// NewLedgerAdapter creates a LedgerAdapter on an existing connection.
func NewLedgerAdapter(db *sql.DB) *LedgerAdapter {
	return &LedgerAdapter{db: db}
}

// MirrorRecord inserts a ledger entry for the record unless one already
// exists for (document, today). Returns storage.ErrDuplicate for an existing
// entry; the caller treats it as already-seen, not a failure.
func (a *LedgerAdapter) MirrorRecord(ctx context.Context, rec *ticket.IntakeRecord) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("mirror record: %w", err)
	}

	var id int64
	err := a.db.QueryRowContext(ctx, queryMirrorRecord,
		rec.FirstName,
		rec.MiddleName,
		rec.FirstSurname,
		rec.SecondSurname,
		rec.Document,
		rec.CategoryLabel,
		rec.ArrivedAt,
	).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		// ON CONFLICT DO NOTHING - entry already mirrored today
		return storage.ErrDuplicate
	}
	if err != nil {
		if isConflict(err) {
			return storage.ErrDuplicate
		}
		return fmt.Errorf("mirror record for document %q: %w", rec.Document, err)
	}

	slog.Debug("[Postgres] Mirrored intake record",
		"ledger_entry", id,
		"document", rec.Document)
	return nil
}

// PendingEntries returns today's unprocessed ledger entries ordered by
// insertion order ascending: whoever appeared first in the external feed is
// offered a ticket first.
func (a *LedgerAdapter) PendingEntries(ctx context.Context, limit int) ([]*ticket.LedgerEntry, error) {
	rows, err := a.db.QueryContext(ctx, queryPendingEntries, limit)
	if err != nil {
		return nil, fmt.Errorf("query pending ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*ticket.LedgerEntry
	for rows.Next() {
		e, err := scanLedgerRow(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger entries: %w", err)
	}
	return entries, nil
}

// ReopenEntry puts the document's processed entry for today back in front of
// the admission filter when the feed shows more appearances than tickets
// already issued. This is what lets a served person queue again the same day.
func (a *LedgerAdapter) ReopenEntry(ctx context.Context, document string, appearances int) (bool, error) {
	result, err := a.db.ExecContext(ctx, queryReopenEntry, document, appearances)
	if err != nil {
		return false, fmt.Errorf("reopen ledger entry for document %q: %w", document, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reopen ledger entry for document %q: check result: %w", document, err)
	}
	if rowsAffected == 0 {
		return false, nil
	}

	slog.Info("[Postgres] Reopened ledger entry",
		"document", document,
		"appearances", appearances)
	return true, nil
}

// MarkProcessed flags an entry processed without a ticket, the suppress
// path. The entry must not be reconsidered every poll.
func (a *LedgerAdapter) MarkProcessed(ctx context.Context, entryID int64, passID string) error {
	result, err := a.db.ExecContext(ctx, queryMarkProcessed, passID, entryID)
	if err != nil {
		return fmt.Errorf("mark ledger entry %d processed: %w", entryID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark ledger entry %d processed: check result: %w", entryID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("ledger entry %d not found", entryID)
	}
	return nil
}
