package models

import "time"

// RateLimitDecision is what a rate-limit store answers for one request.
type RateLimitDecision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}
