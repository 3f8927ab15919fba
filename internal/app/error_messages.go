// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// relay's HTTP handlers and middleware.
//
// All Msg* constants are caller-facing strings written into the "error" field
// of the relay's JSON error envelope.
package app

const (
	// MsgInternalServerError is returned when an unexpected failure occurs
	// that the caller cannot resolve.
	MsgInternalServerError = "Internal server error"

	// MsgNotFound is returned for paths with no registered route.
	MsgNotFound = "Not Found"

	// MsgMethodNotAllowed is returned when the path exists but the method is
	// not registered for it.
	MsgMethodNotAllowed = "Method Not Allowed"

	// MsgTooManyRequests is returned when a client exceeds its request window.
	MsgTooManyRequests = "Too many requests"

	// MsgInvalidGzip is returned when a gzip-encoded body cannot be decoded.
	MsgInvalidGzip = "invalid gzip data"

	// MsgNoValidEvents is returned when validation drops every event of a
	// batch.
	MsgNoValidEvents = "no valid events"

	// MsgCAPITimeout is returned when the Conversions API does not answer in
	// time.
	MsgCAPITimeout = "Conversions API request timed out"

	// MsgCAPIUnreachable is returned when the Conversions API cannot be
	// reached.
	MsgCAPIUnreachable = "Conversions API is unreachable"

	// MsgCAPIRejected is returned with the vendor body when the Conversions
	// API answers with a non-2xx status.
	MsgCAPIRejected = "Conversions API rejected the request"
)
