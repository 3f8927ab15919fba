package store

import (
	"fmt"

	"github.com/MKhiriev/capi-relay/internal/config"
	"github.com/MKhiriev/capi-relay/internal/logger"
)

// Storages groups the relay's persistence backends.
type Storages struct {
	// FailedEvents is the append-only log of undeliverable events.
	FailedEvents FailedEventStorage
}

// NewStorages opens every storage backend described by cfg.
func NewStorages(cfg config.FailedEvents, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("path", cfg.Path).Msg("opening failed-event log...")

	failedEvents, err := NewFailedEventFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed-event log: %w", err)
	}

	return &Storages{FailedEvents: failedEvents}, nil
}

// Close closes every backend.
func (s *Storages) Close() error {
	return s.FailedEvents.Close()
}
