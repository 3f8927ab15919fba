package models

import (
	"encoding/json"
	"time"
)

// ForwardRequest is the body accepted by POST /api/events.
type ForwardRequest struct {
	// Data is the batch of events to relay. It must be a JSON array.
	Data []Event `json:"data"`

	// PixelID overrides the configured pixel for this request.
	PixelID string `json:"pixel_id,omitempty"`

	// AccessToken overrides the configured access token for this request.
	AccessToken string `json:"access_token,omitempty"`

	// TestEventCode routes the batch to the vendor's test events tool.
	TestEventCode string `json:"test_event_code,omitempty"`
}

// RequestMeta carries what the relay learned about the inbound HTTP request.
type RequestMeta struct {
	ClientIP   string
	UserAgent  string
	Referer    string
	FBP        string
	FBC        string
	SessionID  string
	TraceID    string
	ReceivedAt time.Time
}

// ProcessingMeta is attached to every successful response under "proxy".
type ProcessingMeta struct {
	EventsReceived   int            `json:"events_received"`
	EventsForwarded  int            `json:"events_forwarded"`
	EventsDropped    int            `json:"events_dropped"`
	DropReasons      map[string]int `json:"drop_reasons,omitempty"`
	DuplicatesPruned int            `json:"duplicates_pruned"`
	EventIDs         []string       `json:"event_ids"`
	Compressed       bool           `json:"compressed"`
	PayloadBytes     int            `json:"payload_bytes"`
	DurationMS       int64          `json:"duration_ms"`
	TraceID          string         `json:"trace_id,omitempty"`
}

// ForwardResult is the outcome of a successful relay.
type ForwardResult struct {
	StatusCode int
	Body       json.RawMessage
	Meta       ProcessingMeta
}

// ErrorResponse is the error envelope returned to callers.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
