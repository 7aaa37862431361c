package intake

import (
	"context"
	"errors"
	"log/slog"

	"github.com/turnio-lab/project-turnio/internal/cache"
	"github.com/turnio-lab/project-turnio/internal/core/storage"
	"github.com/turnio-lab/project-turnio/internal/core/ticket"
	"github.com/turnio-lab/project-turnio/internal/metrics"
)

// Syncer mirrors the external intake feed into the control ledger. All its
// failure paths degrade to an empty result: no ticket is issued that cycle
// and the next poll retries naturally.
type Syncer struct {
	feed      Feed
	ledger    storage.LedgerStore
	scanCache *cache.ScanCache
	limit     int
}

// NewSyncer wires the feed, ledger and scan memo together.
func NewSyncer(feed Feed, ledger storage.LedgerStore, scanCache *cache.ScanCache, limit int) *Syncer {
	if feed == nil {
		panic("intake: feed must not be nil")
	}
	if ledger == nil {
		panic("intake: ledger must not be nil")
	}
	if scanCache == nil {
		panic("intake: scan cache must not be nil")
	}
	if limit <= 0 {
		limit = 100
	}
	return &Syncer{
		feed:      feed,
		ledger:    ledger,
		scanCache: scanCache,
		limit:     limit,
	}
}

// Scan returns today's feed records, serving from the memo while it is
// fresh. A feed failure is logged and yields an empty scan.
func (s *Syncer) Scan(ctx context.Context) []*ticket.IntakeRecord {
	records, err := s.scan(ctx)
	if err != nil {
		return nil
	}
	return records
}

func (s *Syncer) scan(ctx context.Context) ([]*ticket.IntakeRecord, error) {
	if records, ok := s.scanCache.Get(); ok {
		return records, nil
	}

	records, err := s.feed.RecordsToday(ctx)
	if err != nil {
		slog.Error("[Intake] External feed scan failed", "error", err)
		metrics.SyncFailures.Inc()
		return nil, err
	}

	s.scanCache.Set(records)
	return records, nil
}

// Sync mirrors unseen feed records into the ledger and returns today's
// unprocessed entries, oldest arrival first. Duplicate mirrors are benign;
// a feed failure or any other store failure aborts the cycle with an empty
// result so no stale backlog is drained.
func (s *Syncer) Sync(ctx context.Context) []*ticket.LedgerEntry {
	records, err := s.scan(ctx)
	if err != nil {
		return nil
	}

	// Count how many times each document appears in today's feed. A person
	// who comes back after being served shows up again with a new row, and
	// that extra appearance is the re-entry signal.
	appearances := make(map[string]int, len(records))
	for _, rec := range records {
		if rec.Validate() == nil {
			appearances[rec.Document]++
		}
	}

	reopenChecked := make(map[string]bool)
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			slog.Warn("[Intake] Skipping feed record", "error", err)
			continue
		}

		err := s.ledger.MirrorRecord(ctx, rec)
		if errors.Is(err, storage.ErrDuplicate) {
			if reopenChecked[rec.Document] {
				continue
			}
			reopenChecked[rec.Document] = true

			reopened, rerr := s.ledger.ReopenEntry(ctx, rec.Document, appearances[rec.Document])
			if rerr != nil {
				slog.Error("[Intake] Failed to reopen ledger entry",
					"document", rec.Document,
					"error", rerr)
				metrics.SyncFailures.Inc()
				return nil
			}
			if reopened {
				slog.Info("[Intake] Re-entry detected",
					"document", rec.Document,
					"appearances", appearances[rec.Document])
			}
			continue
		}
		if err != nil {
			slog.Error("[Intake] Failed to mirror feed record",
				"document", rec.Document,
				"error", err)
			metrics.SyncFailures.Inc()
			return nil
		}
	}

	entries, err := s.ledger.PendingEntries(ctx, s.limit)
	if err != nil {
		slog.Error("[Intake] Failed to load pending ledger entries", "error", err)
		metrics.SyncFailures.Inc()
		return nil
	}

	return entries
}
