package ratelimit

import (
	"context"
	"time"

	"github.com/MKhiriev/capi-relay/internal/logger"
)

// Sweeper is a background worker that periodically drops idle keys from a
// [MemoryStore].
type Sweeper struct {
	store    *MemoryStore
	interval time.Duration
	logger   *logger.Logger
	now      func() time.Time
}

// NewSweeper returns a Sweeper running every interval.
func NewSweeper(store *MemoryStore, interval time.Duration, logger *logger.Logger) *Sweeper {
	return &Sweeper{store: store, interval: interval, logger: logger, now: time.Now}
}

// Run starts the sweep loop and returns immediately. The loop stops when ctx
// is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := s.store.Sweep(s.now()); removed > 0 {
					s.logger.Debug().Int("removed", removed).Int("tracked", s.store.Len()).Msg("rate limit keys swept")
				}
			}
		}
	}()
}
