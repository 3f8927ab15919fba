// Package http implements the HTTP transport layer of the relay.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, CORS, request
// decompression, and per-client rate limiting are handled in this package
// before requests are delegated to the service layer.
package http
