package worker

import (
	"context"
	"time"

	"agromarket-api/internal/entity"
	"agromarket-api/pkg/logger"
)

// sweepService is the part of the sweeper the worker drives on a schedule.
type sweepService interface {
	SweepExpired(ctx context.Context) (*entity.SweepSummary, error)
	ResolveExpiredAuctions(ctx context.Context) (*entity.ResolutionSummary, error)
}

// Sweeper periodically forces expired bids into abandonment and resolves
// closed auctions. It shares no state with the HTTP handlers; every run
// coordinates through row status alone, so it is safe to run next to
// manual admin-triggered passes.
type Sweeper struct {
	service  sweepService
	interval time.Duration
}

func NewSweeper(service sweepService, interval time.Duration) *Sweeper {
	return &Sweeper{
		service:  service,
		interval: interval,
	}
}

// Run blocks until ctx is cancelled, executing one pass per interval.
func (w *Sweeper) Run(ctx context.Context) {
	logger.Info("deadline sweeper started", map[string]any{
		"interval": w.interval.String(),
	})

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("deadline sweeper stopped", nil)
			return
		case <-ticker.C:
			if _, err := w.service.SweepExpired(ctx); err != nil {
				logger.Error("sweep pass failed", map[string]any{"error": err.Error()})
			}
			if _, err := w.service.ResolveExpiredAuctions(ctx); err != nil {
				logger.Error("auction resolution pass failed", map[string]any{"error": err.Error()})
			}
		}
	}
}
