package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/capi-relay/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweeper_RemovesIdleKeys(t *testing.T) {
	s, err := NewMemoryStore(5, time.Minute, 10)
	require.NoError(t, err)
	_, _ = s.Allow(context.Background(), "idle", t0)

	sweeper := NewSweeper(s, 10*time.Millisecond, logger.Nop())
	sweeper.now = func() time.Time { return t0.Add(2 * time.Minute) }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper.Run(ctx)

	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 10*time.Millisecond)
}

func TestSweeper_StopsOnCancel(t *testing.T) {
	s, err := NewMemoryStore(5, time.Minute, 10)
	require.NoError(t, err)

	sweeper := NewSweeper(s, 10*time.Millisecond, logger.Nop())
	sweeper.now = func() time.Time { return t0.Add(2 * time.Minute) }

	ctx, cancel := context.WithCancel(context.Background())
	sweeper.Run(ctx)
	cancel()
	time.Sleep(30 * time.Millisecond)

	_, _ = s.Allow(context.Background(), "late", t0)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, s.Len())
}
