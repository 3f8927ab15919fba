// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] can run the relay.
// Vendor credentials have no default and must come from one of the sources.
func (cfg *StructuredConfig) validate() error {
	if cfg.CAPI.AccessToken == "" || cfg.CAPI.PixelID == "" {
		return fmt.Errorf("%w: access token and pixel id are required", ErrInvalidCAPIConfigs)
	}
	if cfg.CAPI.BaseURL == "" || cfg.CAPI.APIVersion == "" {
		return fmt.Errorf("%w: base url and api version are required", ErrInvalidCAPIConfigs)
	}
	if cfg.CAPI.Timeout <= 0 || cfg.CAPI.CompressThreshold < 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidCAPIConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxBodyBytes <= 0 || cfg.Server.MaxEvents <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.RateLimit.Requests <= 0 || cfg.RateLimit.Window <= 0 || cfg.RateLimit.MaxClients <= 0 {
		return ErrInvalidRateLimitConfigs
	}

	if cfg.FailedEvents.Path == "" {
		return ErrInvalidFailedEventsConfigs
	}

	switch cfg.App.Env {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Env)
	}

	return nil
}
