package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/capi-relay/internal/logger"
	"github.com/MKhiriev/capi-relay/internal/metrics"
	"github.com/MKhiriev/capi-relay/internal/validators"
	"github.com/MKhiriev/capi-relay/models"
)

// Drop reasons for events rejected by validation.
const (
	DropReasonMissingEventName = "missing_event_name"
	DropReasonUnknownEventName = "unknown_event_name"
	DropReasonMissingField     = "missing_required_field"
	DropReasonForbiddenField   = "forbidden_field"
	DropReasonInvalidEventTime = "invalid_event_time"
	DropReasonEventTooOld      = "event_too_old"
	DropReasonInvalid          = "invalid"
)

// EventValidationService drops events that fail validation before handing
// the rest to the wrapped service. Drops never fail the request unless no
// event is left.
type EventValidationService struct {
	inner     EventService
	validator validators.Validator
	metrics   *metrics.Metrics
}

func NewEventValidationService(validator validators.Validator, m *metrics.Metrics) EventServiceWrapper {
	return &EventValidationService{
		validator: validator,
		metrics:   m,
	}
}

func (v *EventValidationService) Forward(ctx context.Context, req models.ForwardRequest, meta models.RequestMeta) (models.ForwardResult, error) {
	log := logger.FromContext(ctx)

	valid := make([]models.Event, 0, len(req.Data))
	reasons := make(map[string]int)

	for i, event := range req.Data {
		if err := v.validator.Validate(ctx, event); err != nil {
			reason := DropReason(err)
			reasons[reason]++
			v.metrics.EventsDropped.WithLabelValues(reason).Inc()
			log.Debug().Err(err).Int("index", i).Str("event_name", event.EventName).Msg("event dropped")
			continue
		}
		valid = append(valid, event)
	}

	if len(valid) == 0 {
		return models.ForwardResult{}, &DropError{Reasons: reasons}
	}

	dropped := len(req.Data) - len(valid)
	req.Data = valid

	result, err := v.inner.Forward(ctx, req, meta)
	if err != nil {
		return result, err
	}

	if dropped > 0 {
		result.Meta.EventsReceived += dropped
		result.Meta.EventsDropped += dropped
		if result.Meta.DropReasons == nil {
			result.Meta.DropReasons = make(map[string]int, len(reasons))
		}
		for reason, n := range reasons {
			result.Meta.DropReasons[reason] += n
		}
	}

	return result, nil
}

func (v *EventValidationService) Wrap(wrapped EventService) EventService {
	v.inner = wrapped
	return v
}

// DropError reports that every event of a batch was dropped. It matches
// [ErrNoValidEvents].
type DropError struct {
	Reasons map[string]int
}

func (e *DropError) Error() string {
	return fmt.Sprintf("%s: %v", ErrNoValidEvents, e.Reasons)
}

func (e *DropError) Unwrap() error {
	return ErrNoValidEvents
}

// DropReason maps a validation error to a drop reason label.
func DropReason(err error) string {
	switch {
	case errors.Is(err, validators.ErrMissingEventName):
		return DropReasonMissingEventName
	case errors.Is(err, validators.ErrUnknownEventName):
		return DropReasonUnknownEventName
	case errors.Is(err, validators.ErrMissingRequiredField):
		return DropReasonMissingField
	case errors.Is(err, validators.ErrForbiddenFieldPresent):
		return DropReasonForbiddenField
	case errors.Is(err, validators.ErrInvalidEventTime):
		return DropReasonInvalidEventTime
	case errors.Is(err, validators.ErrEventTooOld):
		return DropReasonEventTooOld
	default:
		return DropReasonInvalid
	}
}
