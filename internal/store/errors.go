package store

import "errors"

// Sentinel errors returned by the failed-event log. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrOpeningFailedEventLog is returned when the log file or its parent
	// directory cannot be created or opened for appending.
	ErrOpeningFailedEventLog = errors.New("error opening failed-event log")

	// ErrWritingFailedEvent is returned when an entry cannot be encoded or
	// the append was cancelled.
	ErrWritingFailedEvent = errors.New("error writing failed event")
)
