// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists data the relay keeps beyond a single request.
//
// The only persisted data is the failed-event log: an append-only JSON
// lines file with one [models.FailedEvent] per line. The relay never reads
// it back; it is an audit trail for manual reprocessing.
package store

import (
	"context"

	"github.com/MKhiriev/capi-relay/models"
)

//go:generate mockgen -source=failed_events_interfaces.go -destination=../mock/failed_event_storage_mock.go -package=mock

// FailedEventStorage records events that could not be delivered.
type FailedEventStorage interface {
	// Append writes one entry per event with cause as the error text and a
	// retry count of zero.
	Append(ctx context.Context, events []models.Event, cause error) error

	// Close releases the underlying file.
	Close() error
}
