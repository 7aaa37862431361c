package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/turnio-lab/project-turnio/internal/core/ticket"
)

func TestScanCache_GetSetClear(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	c := NewScanCache(10 * time.Second)
	c.nowFn = func() time.Time { return now }

	_, ok := c.Get()
	require.False(t, ok, "empty cache must miss")

	records := []*ticket.IntakeRecord{{Document: "123"}}
	c.Set(records)

	got, ok := c.Get()
	require.True(t, ok)
	require.Len(t, got, 1)
	require.Equal(t, "123", got[0].Document)

	// Still fresh just under the TTL.
	now = now.Add(9 * time.Second)
	_, ok = c.Get()
	require.True(t, ok)

	// Expired at the TTL boundary.
	now = now.Add(time.Second)
	_, ok = c.Get()
	require.False(t, ok)
}

func TestScanCache_EmptyScanIsCached(t *testing.T) {
	c := NewScanCache(10 * time.Second)
	c.Set([]*ticket.IntakeRecord{})

	got, ok := c.Get()
	require.True(t, ok, "an empty scan is a valid result and must be cached")
	require.Empty(t, got)
}

func TestScanCache_Clear(t *testing.T) {
	c := NewScanCache(time.Minute)
	c.Set([]*ticket.IntakeRecord{{Document: "123"}})
	c.Clear()

	_, ok := c.Get()
	require.False(t, ok)
}

func TestOpenTicketCache_PerMinuteKey(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
	c := NewOpenTicketCache()
	c.nowFn = func() time.Time { return now }

	c.Set("123", true)

	open, ok := c.Get("123")
	require.True(t, ok)
	require.True(t, open)

	_, ok = c.Get("456")
	require.False(t, ok)

	// A new minute means a fresh store check.
	now = now.Add(time.Minute)
	_, ok = c.Get("123")
	require.False(t, ok)
}

func TestOpenTicketCache_InvalidateDropsAllMinutes(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
	c := NewOpenTicketCache()
	c.nowFn = func() time.Time { return now }

	c.Set("123", true)
	now = now.Add(time.Minute)
	c.Set("123", true)
	c.Set("456", false)

	c.Invalidate("123")

	_, ok := c.Get("123")
	require.False(t, ok, "served document must be re-checked against the store")

	open, ok := c.Get("456")
	require.True(t, ok)
	require.False(t, open)
}
