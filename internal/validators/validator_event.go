package validators

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/capi-relay/models"
)

const (
	FieldEventName = "event_name"
	FieldEventTime = "event_time"
	FieldRules     = "rules"
)

// MaxEventAge is how far in the past event_time may lie. The vendor rejects
// older events.
const MaxEventAge = 7 * 24 * time.Hour

// EventValidator checks single events against a [Rules] table.
type EventValidator struct {
	rules Rules
	now   func() time.Time
}

// NewEventValidator returns an EventValidator for rules. A nil rules map
// means [DefaultRules].
func NewEventValidator(rules Rules) *EventValidator {
	if rules == nil {
		rules = DefaultRules()
	}
	return &EventValidator{rules: rules, now: time.Now}
}

func (v *EventValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Event:
		return v.validateEvent(ctx, value, fields...)
	case *models.Event:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateEvent(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *EventValidator) validateEvent(ctx context.Context, event models.Event, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEventName, FieldEventTime, FieldRules}
	}

	for _, f := range fields {
		switch f {
		case FieldEventName:
			if strings.TrimSpace(event.EventName) == "" {
				return ErrMissingEventName
			}
			if _, ok := v.rules[event.EventName]; !ok {
				return fmt.Errorf("%w: %q", ErrUnknownEventName, event.EventName)
			}
		case FieldEventTime:
			if event.EventTime == 0 {
				continue
			}
			if event.EventTime < 0 {
				return ErrInvalidEventTime
			}
			if v.now().Sub(time.Unix(event.EventTime, 0)) > MaxEventAge {
				return ErrEventTooOld
			}
		case FieldRules:
			rule, ok := v.rules[event.EventName]
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownEventName, event.EventName)
			}
			for _, path := range rule.Required {
				if !hasField(event, path) {
					return fmt.Errorf("%w: %s", ErrMissingRequiredField, path)
				}
			}
			for _, path := range rule.Forbidden {
				if hasField(event, path) {
					return fmt.Errorf("%w: %s", ErrForbiddenFieldPresent, path)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// hasField reports whether the dotted path resolves to a non-empty value.
// Empty strings and empty arrays count as absent.
func hasField(event models.Event, path string) bool {
	section, key, ok := strings.Cut(path, ".")
	if !ok {
		return false
	}

	var m map[string]any
	switch section {
	case "user_data":
		m = event.UserData
	case "custom_data":
		m = event.CustomData
	default:
		return false
	}

	value, ok := m[key]
	if !ok || value == nil {
		return false
	}

	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed) != ""
	case []any:
		return len(typed) > 0
	case []string:
		return len(typed) > 0
	}
	return true
}
