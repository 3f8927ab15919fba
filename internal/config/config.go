// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the relay.
// It is populated by merging values from environment variables,
// command-line flags, an optional JSON file and finally the built-in
// defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings: environment name and log level.
	App App `envPrefix:"APP_"`

	// Server holds the inbound HTTP listener and request limits.
	Server Server `envPrefix:"SERVER_"`

	// CAPI holds the vendor Conversions API destination and credentials.
	CAPI CAPI `envPrefix:"CAPI_"`

	// RateLimit holds the per-client sliding window settings.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// FailedEvents holds the location of the failed-event audit log.
	FailedEvents FailedEvents `envPrefix:"FAILED_EVENTS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Environment names understood by [App.Env].
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// App holds process-wide settings.
type App struct {
	// Env is "development" or "production". Internal error details are only
	// exposed to callers in development.
	// Env: APP_ENV
	Env string `env:"ENV"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// IsDevelopment reports whether the relay runs in development mode.
func (a App) IsDevelopment() bool {
	return a.Env == EnvDevelopment
}

// Server holds network settings and inbound request limits.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format (e.g. ":8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// MaxBodyBytes bounds the size of an inbound request body.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`

	// MaxEvents bounds the number of events accepted in one batch.
	// Env: SERVER_MAX_EVENTS
	MaxEvents int `env:"MAX_EVENTS"`

	// FallbackSourceURL is used as event_source_url when neither the event
	// nor the Referer header provides one. Optional.
	// Env: SERVER_FALLBACK_SOURCE_URL
	FallbackSourceURL string `env:"FALLBACK_SOURCE_URL"`

	// TrustProxyHeaders takes the client address from True-Client-IP,
	// X-Real-IP or X-Forwarded-For. Enable only behind a proxy that
	// overwrites those headers.
	// Env: SERVER_TRUST_PROXY_HEADERS
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS"`
}

// CAPI describes the vendor endpoint events are relayed to.
type CAPI struct {
	// AccessToken authenticates relay calls. Required, no default.
	// Env: CAPI_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// PixelID is the vendor account events are attributed to. Required.
	// Env: CAPI_PIXEL_ID
	PixelID string `env:"PIXEL_ID"`

	// BaseURL is the vendor API origin.
	// Env: CAPI_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIVersion is the Graph API version path segment (e.g. "v19.0").
	// Env: CAPI_API_VERSION
	APIVersion string `env:"API_VERSION"`

	// Timeout bounds the single outbound call.
	// Env: CAPI_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// CompressThreshold is the payload size in bytes above which the
	// outbound body is gzip-compressed.
	// Env: CAPI_COMPRESS_THRESHOLD
	CompressThreshold int `env:"COMPRESS_THRESHOLD"`
}

// RateLimit configures the per-client sliding window.
type RateLimit struct {
	// Requests is the number of requests allowed per Window.
	// Env: RATE_LIMIT_REQUESTS
	Requests int `env:"REQUESTS"`

	// Window is the sliding window length.
	// Env: RATE_LIMIT_WINDOW
	Window time.Duration `env:"WINDOW"`

	// MaxClients caps the number of client keys tracked by the in-memory store.
	// Env: RATE_LIMIT_MAX_CLIENTS
	MaxClients int `env:"MAX_CLIENTS"`

	// RedisURL selects the Redis-backed store when non-empty
	// (e.g. "redis://localhost:6379/0").
	// Env: RATE_LIMIT_REDIS_URL
	RedisURL string `env:"REDIS_URL"`
}

// FailedEvents configures the failed-event audit log.
type FailedEvents struct {
	// Path is the append-only JSON-lines file failed events are written to.
	// Env: FAILED_EVENTS_PATH
	Path string `env:"PATH"`
}

// defaultConfig holds the values used for every field no source provided.
// Credentials are deliberately absent.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Env:      EnvProduction,
			LogLevel: "info",
		},
		Server: Server{
			HTTPAddress:  ":8080",
			MaxBodyBytes: 1 << 20,
			MaxEvents:    20,
		},
		CAPI: CAPI{
			BaseURL:           "https://graph.facebook.com",
			APIVersion:        "v19.0",
			Timeout:           8 * time.Second,
			CompressThreshold: 2048,
		},
		RateLimit: RateLimit{
			Requests:   30,
			Window:     time.Minute,
			MaxClients: 10000,
		},
		FailedEvents: FailedEvents{
			Path: "failed_events.log",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the relay configuration
// from all available sources in the following priority order (the first
// source providing a non-zero field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
