package models

import "encoding/json"

// CAPIBatch is one outbound call to the Conversions API.
type CAPIBatch struct {
	// PixelID and AccessToken override the configured credentials when set.
	PixelID       string
	AccessToken   string
	TestEventCode string
	Events        []Event
}

// CAPIPayload is the JSON body posted to the vendor.
type CAPIPayload struct {
	Data          []Event `json:"data"`
	TestEventCode string  `json:"test_event_code,omitempty"`
}

// CAPIResponse is a 2xx vendor reply.
type CAPIResponse struct {
	StatusCode   int
	Body         json.RawMessage
	Compressed   bool
	PayloadBytes int
}
