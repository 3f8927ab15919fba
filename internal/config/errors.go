package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidCAPIConfigs indicates missing vendor credentials or an
	// unusable vendor endpoint.
	ErrInvalidCAPIConfigs = errors.New("invalid capi configuration")
	// ErrInvalidServerConfigs indicates an empty listen address or
	// non-positive request limits.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidRateLimitConfigs indicates a non-positive limit, window or
	// client capacity.
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
	// ErrInvalidFailedEventsConfigs indicates an empty failed-event log path.
	ErrInvalidFailedEventsConfigs = errors.New("invalid failed events configuration")
	// ErrInvalidAppConfigs indicates an unknown environment name.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
