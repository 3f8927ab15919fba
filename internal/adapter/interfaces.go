// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transport to the Conversions API.
//
// The primary abstraction is [ConversionsAdapter], which decouples the
// service layer from the vendor protocol. The package ships a resty-based
// HTTP implementation ([NewCAPIAdapter]) that makes exactly one attempt per
// batch.
//
// Transport failures are classified into sentinel values defined in
// errors.go ([ErrTimeout], [ErrNetwork]) and non-2xx vendor replies into a
// [*VendorError], so callers can use [errors.Is] and [errors.As] without
// knowing about HTTP.
package adapter

import (
	"context"

	"github.com/MKhiriev/capi-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/conversions_adapter_mock.go -package=mock

// ConversionsAdapter sends event batches to the vendor.
type ConversionsAdapter interface {
	// SendEvents posts batch in a single request. A 2xx reply is returned as
	// [models.CAPIResponse]; anything else is an error. The call is never
	// retried.
	SendEvents(ctx context.Context, batch models.CAPIBatch) (models.CAPIResponse, error)
}
