package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func credentials() *StructuredConfig {
	return &StructuredConfig{CAPI: CAPI{AccessToken: "token", PixelID: "pixel"}}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder(nil)
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that credentials are required.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder(nil).build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidCAPIConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_DefaultsFillGaps verifies that defaults complete a config that
// only carries credentials.
func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, credentials())
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 20, cfg.Server.MaxEvents)
	assert.Equal(t, "https://graph.facebook.com", cfg.CAPI.BaseURL)
	assert.Equal(t, "v19.0", cfg.CAPI.APIVersion)
	assert.Equal(t, 8*time.Second, cfg.CAPI.Timeout)
	assert.Equal(t, 2048, cfg.CAPI.CompressThreshold)
	assert.Equal(t, 30, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, EnvProduction, cfg.App.Env)
	assert.Equal(t, "failed_events.log", cfg.FailedEvents.Path)
}

// TestBuild_FirstSourceWins verifies that an earlier config is not
// overwritten by later ones.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder(nil)
	first := credentials()
	first.CAPI.Timeout = 3 * time.Second
	b.configs = append(b.configs,
		first,
		&StructuredConfig{CAPI: CAPI{Timeout: 9 * time.Second, APIVersion: "v21.0"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.CAPI.Timeout)
	assert.Equal(t, "v21.0", cfg.CAPI.APIVersion)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CAPI_PIXEL_ID": "env-pixel",
		"CAPI_TIMEOUT":  "2s",
	})

	b := newConfigBuilder(nil)
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-pixel", b.configs[0].CAPI.PixelID)
	assert.Equal(t, 2*time.Second, b.configs[0].CAPI.Timeout)
}

// TestWithFlags_ParsesArgs verifies that the builder's args reach the flag set.
func TestWithFlags_ParsesArgs(t *testing.T) {
	b := newConfigBuilder([]string{"-pixel-id", "flag-pixel", "-capi-timeout", "4s"})
	assert.Same(t, b, b.withFlags())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-pixel", b.configs[0].CAPI.PixelID)
	assert.Equal(t, 4*time.Second, b.configs[0].CAPI.Timeout)
}

// TestWithFlags_UnknownFlag verifies that bad args are recorded as an error.
func TestWithFlags_UnknownFlag(t *testing.T) {
	b := newConfigBuilder([]string{"-no-such-flag"})
	b.withFlags()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EnvBeatsFlags verifies the documented priority order.
func TestBuild_EnvBeatsFlags(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CAPI_ACCESS_TOKEN": "env-token",
		"CAPI_PIXEL_ID":     "env-pixel",
	})

	cfg, err := newConfigBuilder([]string{"-pixel-id", "flag-pixel", "-rate-limit", "5"}).
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()

	require.NoError(t, err)
	assert.Equal(t, "env-pixel", cfg.CAPI.PixelID)
	assert.Equal(t, 5, cfg.RateLimit.Requests)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.CAPI.PixelID = "json-pixel"
	payload.RateLimit.Window = Duration(15 * time.Second)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-pixel", b.configs[1].CAPI.PixelID)
	assert.Equal(t, 15*time.Second, b.configs[1].RateLimit.Window)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		b := newConfigBuilder(nil)
		b.configs = append(b.configs, credentials())
		b.withDefaults()
		cfg, err := b.build()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{"valid", func(*StructuredConfig) {}, nil},
		{"missing token", func(c *StructuredConfig) { c.CAPI.AccessToken = "" }, ErrInvalidCAPIConfigs},
		{"missing pixel", func(c *StructuredConfig) { c.CAPI.PixelID = "" }, ErrInvalidCAPIConfigs},
		{"zero timeout", func(c *StructuredConfig) { c.CAPI.Timeout = 0 }, ErrInvalidCAPIConfigs},
		{"zero max events", func(c *StructuredConfig) { c.Server.MaxEvents = 0 }, ErrInvalidServerConfigs},
		{"zero rate", func(c *StructuredConfig) { c.RateLimit.Requests = 0 }, ErrInvalidRateLimitConfigs},
		{"empty log path", func(c *StructuredConfig) { c.FailedEvents.Path = "" }, ErrInvalidFailedEventsConfigs},
		{"unknown env", func(c *StructuredConfig) { c.App.Env = "staging" }, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApp_IsDevelopment(t *testing.T) {
	assert.True(t, App{Env: EnvDevelopment}.IsDevelopment())
	assert.False(t, App{Env: EnvProduction}.IsDevelopment())
}
