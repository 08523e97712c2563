package core

// scheduler.go runs background maintenance for the service.
//
// Currently it expires idle table sessions. The sweeper is long-running and
// stops when its context is cancelled.

import (
	"context"
	"log/slog"
	"time"
)

// StartSessionSweeper removes idle sessions every interval until ctx is done.
func (s *Service) StartSessionSweeper(ctx context.Context, interval time.Duration) {
	slog.Info("session sweeper started", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("session sweeper stopped")
			return
		case <-ticker.C:
			s.sweepSessions()
		}
	}
}

// sweepSessions performs one expiry pass.
func (s *Service) sweepSessions() {
	start := time.Now()
	removed := s.sessions.Sweep()
	if removed > 0 {
		slog.Info("expired table sessions",
			"removed", removed,
			"open", s.sessions.Len(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
