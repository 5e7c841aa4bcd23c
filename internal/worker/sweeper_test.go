package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"agromarket-api/internal/entity"

	"github.com/stretchr/testify/require"
)

type countingSweepService struct {
	sweeps   atomic.Int32
	resolves atomic.Int32
}

func (s *countingSweepService) SweepExpired(context.Context) (*entity.SweepSummary, error) {
	s.sweeps.Add(1)
	return &entity.SweepSummary{}, nil
}

func (s *countingSweepService) ResolveExpiredAuctions(context.Context) (*entity.ResolutionSummary, error) {
	s.resolves.Add(1)
	return &entity.ResolutionSummary{}, nil
}

func TestSweeper_RunsBothPassesEveryTick(t *testing.T) {
	service := &countingSweepService{}
	sweeper := NewSweeper(service, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return service.sweeps.Load() >= 3 && service.resolves.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancellation")
	}
}

func TestSweeper_StopsBeforeFirstTickWhenCancelled(t *testing.T) {
	service := &countingSweepService{}
	sweeper := NewSweeper(service, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not observe cancelled context")
	}
	require.Zero(t, service.sweeps.Load())
}
