package admission

import (
	"context"
	"log/slog"
	"time"
)

// Scheduler runs admission passes on a periodic interval so walk-ins get a
// ticket even when no window is actively calling.
// It is stateless: each tick independently syncs intake and admits pending entries.
type Scheduler struct {
	interval time.Duration
	svc      *Service
}

// NewScheduler creates a background poller over the admission service.
func NewScheduler(interval time.Duration, svc *Service) *Scheduler {
	if svc == nil {
		panic("admission: service must not be nil")
	}
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Scheduler{
		interval: interval,
		svc:      svc,
	}
}

// Start begins periodic admission passes.
// Runs until context is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("[AdmissionScheduler] Starting background admission poller",
		"interval", s.interval,
	)

	// Run an initial pass to catch up with any backlog
	s.svc.RunPass(ctx, "startup")

	for {
		select {
		case <-ticker.C:
			s.svc.RunPass(ctx, "poll")
		case <-ctx.Done():
			slog.Info("[AdmissionScheduler] Stopping (context cancelled)")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			slog.Info("[AdmissionScheduler] Running final pass before shutdown...")
			s.svc.RunPass(shutdownCtx, "shutdown")
			slog.Info("[AdmissionScheduler] Final pass complete")

			return nil
		}
	}
}
