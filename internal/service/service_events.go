// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/capi-relay/internal/adapter"
	"github.com/MKhiriev/capi-relay/internal/enrichment"
	"github.com/MKhiriev/capi-relay/internal/logger"
	"github.com/MKhiriev/capi-relay/internal/metrics"
	"github.com/MKhiriev/capi-relay/internal/store"
	"github.com/MKhiriev/capi-relay/models"
	"github.com/samber/lo"
)

// DropReasonDuplicate is the drop reason for events removed by
// deduplication.
const DropReasonDuplicate = "duplicate"

// Failure kinds reported in the relay_failures_total metric.
const (
	FailureTimeout  = "timeout"
	FailureNetwork  = "network"
	FailureVendor   = "vendor"
	FailureInternal = "internal"
)

type eventService struct {
	enricher     *enrichment.Enricher
	adapter      adapter.ConversionsAdapter
	failedEvents store.FailedEventStorage
	metrics      *metrics.Metrics
	logger       *logger.Logger
	now          func() time.Time
}

// NewEventService returns the core [EventService]: enrich, relay, and record
// failures. It expects already validated events.
func NewEventService(enricher *enrichment.Enricher, capi adapter.ConversionsAdapter, failedEvents store.FailedEventStorage, m *metrics.Metrics, logger *logger.Logger) EventService {
	return &eventService{
		enricher:     enricher,
		adapter:      capi,
		failedEvents: failedEvents,
		metrics:      m,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *eventService) Forward(ctx context.Context, req models.ForwardRequest, meta models.RequestMeta) (models.ForwardResult, error) {
	log := logger.FromContext(ctx)
	start := s.now()

	events, pruned := s.enricher.Apply(req.Data, meta)
	if pruned > 0 {
		s.metrics.EventsDropped.WithLabelValues(DropReasonDuplicate).Add(float64(pruned))
		log.Debug().Int("duplicates", pruned).Msg("duplicate events pruned")
	}

	resp, err := s.adapter.SendEvents(ctx, models.CAPIBatch{
		PixelID:       req.PixelID,
		AccessToken:   req.AccessToken,
		TestEventCode: req.TestEventCode,
		Events:        events,
	})
	s.metrics.RelayDuration.Observe(s.now().Sub(start).Seconds())

	if err != nil {
		s.recordFailure(ctx, events, err)
		return models.ForwardResult{}, fmt.Errorf("relay %d events: %w", len(events), err)
	}

	s.metrics.EventsForwarded.Add(float64(len(events)))

	result := models.ForwardResult{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
		Meta: models.ProcessingMeta{
			EventsReceived:   len(req.Data),
			EventsForwarded:  len(events),
			EventsDropped:    pruned,
			DuplicatesPruned: pruned,
			EventIDs:         lo.Map(events, func(e models.Event, _ int) string { return e.EventID }),
			Compressed:       resp.Compressed,
			PayloadBytes:     resp.PayloadBytes,
			DurationMS:       s.now().Sub(start).Milliseconds(),
			TraceID:          meta.TraceID,
		},
	}
	if pruned > 0 {
		result.Meta.DropReasons = map[string]int{DropReasonDuplicate: pruned}
	}

	log.Info().
		Int("forwarded", len(events)).
		Int("status", resp.StatusCode).
		Bool("compressed", resp.Compressed).
		Msg("events relayed")

	return result, nil
}

// recordFailure counts the failure and appends the batch to the failed-event
// log. The append outlives a cancelled request context.
func (s *eventService) recordFailure(ctx context.Context, events []models.Event, cause error) {
	log := logger.FromContext(ctx)
	kind := FailureKind(cause)
	s.metrics.RelayFailures.WithLabelValues(kind).Inc()

	if err := s.failedEvents.Append(context.WithoutCancel(ctx), events, cause); err != nil {
		log.Err(err).Int("events", len(events)).Msg("failed to write failed-event log")
	}

	log.Error().Err(cause).Str("kind", kind).Int("events", len(events)).Msg("relay failed")
}

// FailureKind classifies a relay error for metrics and logs.
func FailureKind(err error) string {
	var vendorErr *adapter.VendorError
	switch {
	case errors.Is(err, adapter.ErrTimeout):
		return FailureTimeout
	case errors.Is(err, adapter.ErrNetwork):
		return FailureNetwork
	case errors.As(err, &vendorErr):
		return FailureVendor
	default:
		return FailureInternal
	}
}
