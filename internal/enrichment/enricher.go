// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package enrichment

import (
	"fmt"
	"time"

	"github.com/MKhiriev/capi-relay/models"
	"github.com/samber/lo"
)

// Enricher applies the enrichment steps to event batches.
type Enricher struct {
	fallbackSourceURL string
	now               func() time.Time
	randomSuffix      func() string
}

// NewEnricher returns an Enricher. fallbackSourceURL is used as
// event_source_url when neither the event nor the Referer header has one;
// it may be empty.
func NewEnricher(fallbackSourceURL string) *Enricher {
	return &Enricher{
		fallbackSourceURL: fallbackSourceURL,
		now:               time.Now,
		randomSuffix:      randomBase36,
	}
}

// Apply runs Dedup, AssignIDs and Enrich in order and returns the events to
// relay together with the number of duplicates removed.
func (e *Enricher) Apply(events []models.Event, meta models.RequestMeta) ([]models.Event, int) {
	kept, pruned := e.Dedup(events)
	e.AssignIDs(kept)
	e.Enrich(kept, meta)
	return kept, pruned
}

// Dedup removes events whose client-supplied event_id already appeared
// earlier in the batch. Events without an id are always kept.
func (e *Enricher) Dedup(events []models.Event) ([]models.Event, int) {
	seen := make(map[string]struct{}, len(events))
	kept := lo.Filter(events, func(event models.Event, _ int) bool {
		if event.EventID == "" {
			return true
		}
		if _, dup := seen[event.EventID]; dup {
			return false
		}
		seen[event.EventID] = struct{}{}
		return true
	})

	return kept, len(events) - len(kept)
}

// AssignIDs gives every event without an event_id a generated one that is
// unique within the batch.
func (e *Enricher) AssignIDs(events []models.Event) {
	taken := lo.SliceToMap(
		lo.Filter(events, func(event models.Event, _ int) bool { return event.EventID != "" }),
		func(event models.Event) (string, struct{}) { return event.EventID, struct{}{} },
	)

	for i := range events {
		if events[i].EventID != "" {
			continue
		}
		id := e.newEventID()
		for {
			if _, clash := taken[id]; !clash {
				break
			}
			id = e.newEventID()
		}
		taken[id] = struct{}{}
		events[i].EventID = id
	}
}

func (e *Enricher) newEventID() string {
	return fmt.Sprintf("evt_%d_%s", e.now().UnixMilli(), e.randomSuffix())
}

var base36Charset = append(append([]rune{}, lo.NumbersCharset...), lo.LowerCaseLettersCharset...)

func randomBase36() string {
	return lo.RandomString(8, base36Charset)
}
