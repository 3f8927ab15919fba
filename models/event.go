// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Well-known keys of [Event.UserData].
const (
	UserDataEmail           = "em"
	UserDataPhone           = "ph"
	UserDataExternalID      = "external_id"
	UserDataClientIP        = "client_ip_address"
	UserDataClientUserAgent = "client_user_agent"
	UserDataFBP             = "fbp"
	UserDataFBC             = "fbc"
)

// Well-known keys of [Event.CustomData].
const (
	CustomDataSessionID = "session_id"
	CustomDataValue     = "value"
	CustomDataCurrency  = "currency"
)

// DefaultActionSource is assigned to events that arrive without an
// action_source.
const DefaultActionSource = "website"

// Event is a single conversion event as accepted by the Conversions API.
//
// Keys that are not mapped to a struct field are kept in Extra and written
// back on marshaling, so vendor fields the relay does not know about
// (opt_out, data_processing_options, ...) reach the vendor untouched.
type Event struct {
	// EventName is the vendor event name (PageView, Lead, Purchase, ...).
	EventName string `json:"event_name"`

	// EventTime is the unix timestamp in seconds when the event happened.
	// Fractional input is truncated on decoding.
	EventTime int64 `json:"event_time,omitempty"`

	// EventID is used by the vendor to deduplicate browser and server events.
	EventID string `json:"event_id,omitempty"`

	// ActionSource tells where the conversion took place ("website", "app", ...).
	ActionSource string `json:"action_source,omitempty"`

	// EventSourceURL is the page the event was fired on.
	EventSourceURL string `json:"event_source_url,omitempty"`

	// UserData carries customer identity parameters. em, ph and external_id
	// are hashed before the event leaves the relay.
	UserData map[string]any `json:"user_data,omitempty"`

	// CustomData carries free-form business data (value, currency, ...).
	CustomData map[string]any `json:"custom_data,omitempty"`

	// Extra holds every other top-level key of the incoming JSON object.
	Extra map[string]json.RawMessage `json:"-"`
}

var eventFields = map[string]struct{}{
	"event_name":       {},
	"event_time":       {},
	"event_id":         {},
	"action_source":    {},
	"event_source_url": {},
	"user_data":        {},
	"custom_data":      {},
}

// eventAlias strips the custom (un)marshalers to avoid recursion.
type eventAlias Event

// UnmarshalJSON decodes the known fields and stashes the rest in Extra.
func (e *Event) UnmarshalJSON(b []byte) error {
	var aux struct {
		eventAlias
		EventTime json.Number `json:"event_time"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	alias := aux.eventAlias
	if aux.EventTime != "" {
		seconds, err := unixSeconds(aux.EventTime)
		if err != nil {
			return fmt.Errorf("invalid event_time %q: %w", aux.EventTime, err)
		}
		alias.EventTime = seconds
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	for k := range eventFields {
		delete(raw, k)
	}
	if len(raw) > 0 {
		alias.Extra = raw
	}

	*e = Event(alias)
	return nil
}

// unixSeconds accepts integer and fractional timestamps; fractions are
// truncated toward zero.
func unixSeconds(n json.Number) (int64, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}

	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, errors.New("out of range")
	}
	return int64(f), nil
}

// MarshalJSON encodes the known fields followed by the preserved Extra keys.
// Extra never overrides a known field.
func (e Event) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(eventAlias(e))
	if err != nil {
		return nil, err
	}
	if len(e.Extra) == 0 {
		return known, nil
	}

	merged := make(map[string]json.RawMessage, len(e.Extra)+len(eventFields))
	for k, v := range e.Extra {
		if _, isKnown := eventFields[k]; isKnown {
			continue
		}
		merged[k] = v
	}

	var knownMap map[string]json.RawMessage
	if err := json.Unmarshal(known, &knownMap); err != nil {
		return nil, fmt.Errorf("error re-reading event fields: %w", err)
	}
	for k, v := range knownMap {
		merged[k] = v
	}

	return json.Marshal(merged)
}

// UserString returns user_data[key] as a string when it is one.
func (e *Event) UserString(key string) (string, bool) {
	return stringField(e.UserData, key)
}

// CustomString returns custom_data[key] as a string when it is one.
func (e *Event) CustomString(key string) (string, bool) {
	return stringField(e.CustomData, key)
}

// SetUserData sets user_data[key], allocating the map when needed.
func (e *Event) SetUserData(key string, value any) {
	if e.UserData == nil {
		e.UserData = make(map[string]any)
	}
	e.UserData[key] = value
}

// SetCustomData sets custom_data[key], allocating the map when needed.
func (e *Event) SetCustomData(key string, value any) {
	if e.CustomData == nil {
		e.CustomData = make(map[string]any)
	}
	e.CustomData[key] = value
}

func stringField(m map[string]any, key string) (string, bool) {
	if m == nil {
		return "", false
	}
	s, ok := m[key].(string)
	return s, ok
}
