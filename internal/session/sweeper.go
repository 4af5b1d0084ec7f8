package session

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper periodically expires idle sessions
type Sweeper struct {
	manager  *Manager
	interval time.Duration
	logger   *slog.Logger
}

func NewSweeper(manager *Manager, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		manager:  manager,
		interval: interval,
		logger:   logger,
	}
}

// Start sweeps on every tick until the context is canceled
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.Info("Starting session sweeper", "interval", s.interval.String())
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Session sweeper stopping due to context cancellation.")
			return
		case <-ticker.C:
			if removed := s.manager.Sweep(); removed > 0 {
				s.logger.Info("Expired idle sessions", "removed", removed, "active_sessions", s.manager.Count())
			}
		}
	}
}
