// Package cache holds the short-lived, lock-guarded memos that absorb load
// from many windows polling concurrently. Both caches are advisory
// performance aids only: every admission decision and ticket allocation is
// re-validated inside the transactional write path, so a stale entry can
// delay an admission but never break a uniqueness guarantee.
package cache

import (
	"sync"
	"time"

	"github.com/turnio-lab/project-turnio/internal/core/ticket"
)

// ScanCache memoizes the last external intake scan so that concurrent
// pollers within the TTL share one feed query. It is cleared explicitly
// before every admission pass.
type ScanCache struct {
	mu        sync.Mutex
	records   []*ticket.IntakeRecord
	fetchedAt time.Time
	ttl       time.Duration
	nowFn     func() time.Time
}

// NewScanCache creates a scan cache with the given TTL.
func NewScanCache(ttl time.Duration) *ScanCache {
	return &ScanCache{ttl: ttl, nowFn: time.Now}
}

// Get returns the cached scan and true while the entry is fresh.
func (c *ScanCache) Get() ([]*ticket.IntakeRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.records == nil || c.nowFn().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.records, true
}

// Set stores a scan result. An empty (non-nil) slice is a valid cached
// result: "the feed had nothing new".
func (c *ScanCache) Set(records []*ticket.IntakeRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if records == nil {
		records = []*ticket.IntakeRecord{}
	}
	c.records = records
	c.fetchedAt = c.nowFn()
}

// Clear drops the memo. Called immediately before any admission pass runs so
// the pass sees the freshest feed state.
func (c *ScanCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = nil
	c.fetchedAt = time.Time{}
}

const openTicketCacheMaxEntries = 4096

type openTicketKey struct {
	document string
	minute   string
}

// OpenTicketCache memoizes "does this document have an open ticket" per
// (document, current minute), avoiding repeated store round-trips within one
// operator action. Entries for a document are invalidated the moment its
// ticket is marked served, so the person can be re-admitted immediately.
type OpenTicketCache struct {
	mu      sync.Mutex
	entries map[openTicketKey]bool
	nowFn   func() time.Time
}

// NewOpenTicketCache creates an empty open-ticket memo.
func NewOpenTicketCache() *OpenTicketCache {
	return &OpenTicketCache{
		entries: make(map[openTicketKey]bool),
		nowFn:   time.Now,
	}
}

func (c *OpenTicketCache) key(document string) openTicketKey {
	return openTicketKey{document: document, minute: c.nowFn().Format("15:04")}
}

// Get returns the memoized answer for the current minute.
func (c *OpenTicketCache) Get(document string) (open, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	open, ok = c.entries[c.key(document)]
	return open, ok
}

// Set memoizes the answer for the current minute.
func (c *OpenTicketCache) Set(document string, open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= openTicketCacheMaxEntries {
		c.pruneLocked()
	}
	c.entries[c.key(document)] = open
}

// Invalidate drops every memoized answer for the document, across minutes.
func (c *OpenTicketCache) Invalidate(document string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k := range c.entries {
		if k.document == document {
			delete(c.entries, k)
		}
	}
}

// pruneLocked drops entries from past minutes. Caller holds the lock.
func (c *OpenTicketCache) pruneLocked() {
	minute := c.nowFn().Format("15:04")
	for k := range c.entries {
		if k.minute != minute {
			delete(c.entries, k)
		}
	}
}
