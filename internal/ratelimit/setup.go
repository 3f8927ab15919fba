package ratelimit

import (
	"context"
	"fmt"

	"github.com/MKhiriev/capi-relay/internal/config"
	"github.com/MKhiriev/capi-relay/internal/logger"
	"github.com/MKhiriev/capi-relay/internal/workers"
	"github.com/redis/go-redis/v9"
)

// Limiter is the store selected by configuration together with the
// background work it needs.
type Limiter struct {
	Store Store

	// Workers is empty for the Redis store, whose keys expire on their own.
	Workers []workers.Worker

	client *redis.Client
}

// NewLimiter builds a Redis-backed limiter when cfg.RedisURL is set and an
// in-memory one with a sweeper otherwise.
func NewLimiter(ctx context.Context, cfg config.RateLimit, logger *logger.Logger) (*Limiter, error) {
	if cfg.RedisURL != "" {
		client, err := NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}

		store, err := NewRedisStore(client, cfg.Requests, cfg.Window)
		if err != nil {
			_ = client.Close()
			return nil, err
		}

		logger.Info().Msg("rate limiting with redis store")
		return &Limiter{Store: store, client: client}, nil
	}

	store, err := NewMemoryStore(cfg.Requests, cfg.Window, cfg.MaxClients)
	if err != nil {
		return nil, fmt.Errorf("error creating memory store: %w", err)
	}

	logger.Info().Int("max_clients", cfg.MaxClients).Msg("rate limiting with in-memory store")
	return &Limiter{
		Store:   store,
		Workers: []workers.Worker{NewSweeper(store, cfg.Window, logger)},
	}, nil
}

// Close releases the Redis connection, if any.
func (l *Limiter) Close() error {
	if l.client == nil {
		return nil
	}
	return l.client.Close()
}
