// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/capi-relay/models"
)

// forwardEnvelope is the raw shape of the inbound body. data stays raw so
// its JSON kind can be checked before decoding.
type forwardEnvelope struct {
	Data          json.RawMessage `json:"data"`
	PixelID       string          `json:"pixel_id"`
	AccessToken   string          `json:"access_token"`
	TestEventCode string          `json:"test_event_code"`
}

// DecodeForwardRequest parses the inbound body and enforces the envelope
// rules: data must be a JSON array of at most maxEvents entries.
//
// Entries that are not JSON objects are skipped; their count is returned as
// malformed so the caller can report them as dropped.
func DecodeForwardRequest(body []byte, maxEvents int) (req models.ForwardRequest, malformed int, err error) {
	var envelope forwardEnvelope
	if err = json.Unmarshal(body, &envelope); err != nil {
		return req, 0, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	raw := bytes.TrimSpace(envelope.Data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return req, 0, ErrMissingData
	}
	if raw[0] != '[' {
		return req, 0, ErrDataNotArray
	}

	var items []json.RawMessage
	if err = json.Unmarshal(raw, &items); err != nil {
		return req, 0, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if len(items) > maxEvents {
		return req, 0, fmt.Errorf("%w: got %d, max %d", ErrTooManyEvents, len(items), maxEvents)
	}

	req.PixelID = envelope.PixelID
	req.AccessToken = envelope.AccessToken
	req.TestEventCode = envelope.TestEventCode
	req.Data = make([]models.Event, 0, len(items))

	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			malformed++
			continue
		}
		var event models.Event
		if err := json.Unmarshal(item, &event); err != nil {
			malformed++
			continue
		}
		req.Data = append(req.Data, event)
	}

	return req, malformed, nil
}
