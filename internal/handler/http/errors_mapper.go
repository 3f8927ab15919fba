package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/capi-relay/internal/adapter"
	"github.com/MKhiriev/capi-relay/internal/app"
	"github.com/MKhiriev/capi-relay/internal/service"
	"github.com/MKhiriev/capi-relay/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrPayloadTooLarge: http.StatusRequestEntityTooLarge,
	ErrReadingBody:     http.StatusBadRequest,

	validators.ErrInvalidJSON:   http.StatusBadRequest,
	validators.ErrMissingData:   http.StatusBadRequest,
	validators.ErrDataNotArray:  http.StatusBadRequest,
	validators.ErrTooManyEvents: http.StatusBadRequest,

	service.ErrNoValidEvents: http.StatusBadRequest,

	adapter.ErrTimeout:           http.StatusRequestTimeout,
	adapter.ErrNetwork:           http.StatusInternalServerError,
	adapter.ErrMissingCredential: http.StatusInternalServerError,
}

// errorMessages holds caller-facing messages for errors whose own text
// should not be shown.
var errorMessages = map[error]string{
	service.ErrNoValidEvents: app.MsgNoValidEvents,
	adapter.ErrTimeout:       app.MsgCAPITimeout,
	adapter.ErrNetwork:       app.MsgCAPIUnreachable,
}

func statusFromError(err error) int {
	var vendorErr *adapter.VendorError
	if errors.As(err, &vendorErr) {
		return vendorErr.StatusCode
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) (string, bool) {
	for target, msg := range errorMessages {
		if errors.Is(err, target) {
			return msg, true
		}
	}
	return "", false
}
