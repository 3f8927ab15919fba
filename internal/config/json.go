package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the on-disk JSON layout.
type StructuredJSONConfig struct {
	App struct {
		Env      string `json:"env"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress       string `json:"http_address"`
		MaxBodyBytes      int64  `json:"max_body_bytes"`
		MaxEvents         int    `json:"max_events"`
		FallbackSourceURL string `json:"fallback_source_url"`
		TrustProxyHeaders bool   `json:"trust_proxy_headers"`
	} `json:"server,omitempty"`

	CAPI struct {
		AccessToken       string   `json:"access_token"`
		PixelID           string   `json:"pixel_id"`
		BaseURL           string   `json:"base_url"`
		APIVersion        string   `json:"api_version"`
		Timeout           Duration `json:"timeout"`
		CompressThreshold int      `json:"compress_threshold"`
	} `json:"capi,omitempty"`

	RateLimit struct {
		Requests   int      `json:"requests"`
		Window     Duration `json:"window"`
		MaxClients int      `json:"max_clients"`
		RedisURL   string   `json:"redis_url"`
	} `json:"rate_limit,omitempty"`

	FailedEvents struct {
		Path string `json:"path"`
	} `json:"failed_events,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Env:      jsonCfg.App.Env,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			MaxBodyBytes:      jsonCfg.Server.MaxBodyBytes,
			MaxEvents:         jsonCfg.Server.MaxEvents,
			FallbackSourceURL: jsonCfg.Server.FallbackSourceURL,
			TrustProxyHeaders: jsonCfg.Server.TrustProxyHeaders,
		},
		CAPI: CAPI{
			AccessToken:       jsonCfg.CAPI.AccessToken,
			PixelID:           jsonCfg.CAPI.PixelID,
			BaseURL:           jsonCfg.CAPI.BaseURL,
			APIVersion:        jsonCfg.CAPI.APIVersion,
			Timeout:           time.Duration(jsonCfg.CAPI.Timeout),
			CompressThreshold: jsonCfg.CAPI.CompressThreshold,
		},
		RateLimit: RateLimit{
			Requests:   jsonCfg.RateLimit.Requests,
			Window:     time.Duration(jsonCfg.RateLimit.Window),
			MaxClients: jsonCfg.RateLimit.MaxClients,
			RedisURL:   jsonCfg.RateLimit.RedisURL,
		},
		FailedEvents: FailedEvents{
			Path: jsonCfg.FailedEvents.Path,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
