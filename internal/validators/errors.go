package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingData   = errors.New("field 'data' is required")
	ErrDataNotArray  = errors.New("field 'data' must be an array")
	ErrTooManyEvents = errors.New("too many events in batch")
	ErrInvalidJSON   = errors.New("invalid JSON payload")

	ErrMissingEventName      = errors.New("event_name is required")
	ErrUnknownEventName      = errors.New("unknown event_name")
	ErrMissingRequiredField  = errors.New("required field is missing")
	ErrForbiddenFieldPresent = errors.New("forbidden field is present")
	ErrInvalidEventTime      = errors.New("invalid event_time")
	ErrEventTooOld           = errors.New("event_time is too old")
)
