package ratelimit

import "errors"

var (
	ErrInvalidLimits = errors.New("rate limit and window must be positive")
	ErrStore         = errors.New("rate limit store error")
)
