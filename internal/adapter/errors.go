package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrTimeout           = errors.New("capi request timed out")
	ErrNetwork           = errors.New("capi request failed")
	ErrVendorRejected    = errors.New("capi rejected the request")
	ErrMissingCredential = errors.New("pixel id and access token are required")

	ErrBadRequest        = errors.New("bad request")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrThrottled         = errors.New("throttled")
	ErrVendorUnavailable = errors.New("vendor unavailable")
)

// VendorError is returned for non-2xx vendor replies. It matches
// [ErrVendorRejected] and, when the status is a known one, a more specific
// sentinel such as [ErrUnauthorized].
type VendorError struct {
	StatusCode int
	Body       []byte
	kind       error
}

func (e *VendorError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("capi http %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("capi http %d: %s", e.StatusCode, e.Body)
}

func (e *VendorError) Unwrap() []error {
	if e.kind == nil {
		return []error{ErrVendorRejected}
	}
	return []error{ErrVendorRejected, e.kind}
}
