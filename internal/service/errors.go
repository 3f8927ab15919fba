package service

import "errors"

var (
	// ErrNoValidEvents is returned when validation drops every event of a
	// batch.
	ErrNoValidEvents = errors.New("no valid events")
)
