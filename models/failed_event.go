package models

import "time"

// FailedEvent is one line of the failed-event log.
type FailedEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	Event      Event     `json:"event"`
	Error      string    `json:"error"`
	RetryCount int       `json:"retry_count"`
}
