package intake

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/turnio-lab/project-turnio/internal/cache"
	"github.com/turnio-lab/project-turnio/internal/core/storage"
	"github.com/turnio-lab/project-turnio/internal/core/ticket"
	intakemocks "github.com/turnio-lab/project-turnio/internal/mocks/intake"
	storagemocks "github.com/turnio-lab/project-turnio/internal/mocks/storage"
)

func newTestSyncer(t *testing.T) (*Syncer, *intakemocks.Feed, *storagemocks.LedgerStore) {
	feed := intakemocks.NewFeed(t)
	ledger := storagemocks.NewLedgerStore(t)
	syncer := NewSyncer(feed, ledger, cache.NewScanCache(10*time.Second), 100)
	return syncer, feed, ledger
}

func TestScan_ServesFromMemoWhileFresh(t *testing.T) {
	syncer, feed, _ := newTestSyncer(t)
	ctx := context.Background()

	records := []*ticket.IntakeRecord{{Document: "100"}}
	feed.On("RecordsToday", mock.Anything).Return(records, nil).Once()

	first := syncer.Scan(ctx)
	require.Len(t, first, 1)

	// Second scan inside the TTL must not touch the feed; the Once()
	// expectation above fails the test otherwise.
	second := syncer.Scan(ctx)
	require.Len(t, second, 1)
}

func TestScan_FeedErrorYieldsEmptyScan(t *testing.T) {
	syncer, feed, _ := newTestSyncer(t)

	feed.On("RecordsToday", mock.Anything).
		Return(nil, errors.New("feed unreachable")).Once()

	require.Empty(t, syncer.Scan(context.Background()))
}

func TestScan_EmptyFeedResultIsCached(t *testing.T) {
	syncer, feed, _ := newTestSyncer(t)
	ctx := context.Background()

	feed.On("RecordsToday", mock.Anything).
		Return([]*ticket.IntakeRecord{}, nil).Once()

	require.Empty(t, syncer.Scan(ctx))
	require.Empty(t, syncer.Scan(ctx), "an empty day must be memoized, not refetched")
}

func TestSync_MirrorsNewRecordsAndReturnsBacklog(t *testing.T) {
	syncer, feed, ledger := newTestSyncer(t)
	ctx := context.Background()

	arrived := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)
	records := []*ticket.IntakeRecord{
		{FirstName: "Maria", FirstSurname: "Lopez", Document: "100", ArrivedAt: arrived},
		{FirstName: "Juan", FirstSurname: "Perez", Document: "200", ArrivedAt: arrived.Add(time.Minute)},
	}

	feed.On("RecordsToday", mock.Anything).Return(records, nil).Once()
	ledger.On("MirrorRecord", mock.Anything, records[0]).Return(nil).Once()
	ledger.On("MirrorRecord", mock.Anything, records[1]).Return(storage.ErrDuplicate).Once()
	ledger.On("ReopenEntry", mock.Anything, "200", 1).Return(false, nil).Once()
	ledger.On("PendingEntries", mock.Anything, 100).
		Return([]*ticket.LedgerEntry{{ID: 1, Document: "100"}}, nil).Once()

	entries := syncer.Sync(ctx)
	require.Len(t, entries, 1)
	require.Equal(t, "100", entries[0].Document)
}

func TestSync_ReappearanceReopensProcessedEntry(t *testing.T) {
	syncer, feed, ledger := newTestSyncer(t)
	ctx := context.Background()

	// The person was already mirrored (and served) today and has come back:
	// the feed now carries two appearances for the same document. Their
	// closed entry must return to the backlog.
	arrived := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)
	records := []*ticket.IntakeRecord{
		{FirstName: "Maria", FirstSurname: "Lopez", Document: "100", ArrivedAt: arrived},
		{FirstName: "Maria", FirstSurname: "Lopez", Document: "100", ArrivedAt: arrived.Add(2 * time.Hour)},
	}

	feed.On("RecordsToday", mock.Anything).Return(records, nil).Once()
	ledger.On("MirrorRecord", mock.Anything, mock.Anything).
		Return(storage.ErrDuplicate).Twice()
	// One reopen check per document, counting both appearances.
	ledger.On("ReopenEntry", mock.Anything, "100", 2).Return(true, nil).Once()
	ledger.On("PendingEntries", mock.Anything, 100).
		Return([]*ticket.LedgerEntry{{ID: 1, Document: "100"}}, nil).Once()

	entries := syncer.Sync(ctx)
	require.Len(t, entries, 1)
	require.Equal(t, "100", entries[0].Document)
}

func TestSync_FeedFailureSkipsBacklog(t *testing.T) {
	syncer, feed, ledger := newTestSyncer(t)

	feed.On("RecordsToday", mock.Anything).
		Return(nil, errors.New("feed unreachable")).Once()

	require.Empty(t, syncer.Sync(context.Background()))
	ledger.AssertNotCalled(t, "PendingEntries", mock.Anything, mock.Anything)
}

func TestSync_SkipsRecordsWithoutDocument(t *testing.T) {
	syncer, feed, ledger := newTestSyncer(t)
	ctx := context.Background()

	feed.On("RecordsToday", mock.Anything).
		Return([]*ticket.IntakeRecord{{FirstName: "Maria"}}, nil).Once()
	ledger.On("PendingEntries", mock.Anything, 100).
		Return([]*ticket.LedgerEntry{}, nil).Once()

	require.Empty(t, syncer.Sync(ctx))
	ledger.AssertNotCalled(t, "MirrorRecord", mock.Anything, mock.Anything)
}

func TestSync_MirrorFailureAbortsCycle(t *testing.T) {
	syncer, feed, ledger := newTestSyncer(t)
	ctx := context.Background()

	feed.On("RecordsToday", mock.Anything).
		Return([]*ticket.IntakeRecord{{Document: "100"}}, nil).Once()
	ledger.On("MirrorRecord", mock.Anything, mock.Anything).
		Return(errors.New("connection refused")).Once()

	require.Empty(t, syncer.Sync(ctx), "a store failure degrades to an empty cycle")
	ledger.AssertNotCalled(t, "PendingEntries", mock.Anything, mock.Anything)
}

func TestSync_PendingFailureFailsSoft(t *testing.T) {
	syncer, feed, ledger := newTestSyncer(t)
	ctx := context.Background()

	feed.On("RecordsToday", mock.Anything).Return([]*ticket.IntakeRecord{}, nil).Once()
	ledger.On("PendingEntries", mock.Anything, 100).
		Return(nil, errors.New("connection refused")).Once()

	require.Empty(t, syncer.Sync(ctx))
}
