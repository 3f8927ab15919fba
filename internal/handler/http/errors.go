// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself.
var (
	// ErrPayloadTooLarge is returned when the request body exceeds the
	// configured size limit.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrReadingBody is returned when the request body cannot be read.
	ErrReadingBody = errors.New("error reading request body")
)
