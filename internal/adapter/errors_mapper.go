package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	vendorErr := &VendorError{
		StatusCode: resp.StatusCode(),
		Body:       bytes.TrimSpace(resp.Body()),
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusBadRequest:
		vendorErr.kind = ErrBadRequest
	case code == http.StatusUnauthorized:
		vendorErr.kind = ErrUnauthorized
	case code == http.StatusForbidden:
		vendorErr.kind = ErrForbidden
	case code == http.StatusTooManyRequests:
		vendorErr.kind = ErrThrottled
	case code >= http.StatusInternalServerError:
		vendorErr.kind = ErrVendorUnavailable
	}

	return vendorErr
}

// mapTransportError classifies an error returned before any vendor reply
// was read.
func mapTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}
