package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_UnmarshalKeepsUnknownFields(t *testing.T) {
	raw := []byte(`{"event_name":"PageView","event_time":1700000000,"opt_out":false,"data_processing_options":["LDU"]}`)

	var e Event
	require.NoError(t, json.Unmarshal(raw, &e))

	assert.Equal(t, "PageView", e.EventName)
	assert.Equal(t, int64(1700000000), e.EventTime)
	require.Contains(t, e.Extra, "opt_out")
	require.Contains(t, e.Extra, "data_processing_options")
	assert.NotContains(t, e.Extra, "event_name")
}

func TestEvent_MarshalWritesExtraBack(t *testing.T) {
	e := Event{
		EventName: "Lead",
		EventID:   "evt_1",
		Extra:     map[string]json.RawMessage{"opt_out": json.RawMessage(`true`)},
	}

	b, err := json.Marshal(e)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, "Lead", out["event_name"])
	assert.Equal(t, "evt_1", out["event_id"])
	assert.Equal(t, true, out["opt_out"])
}

func TestEvent_ExtraCannotShadowKnownField(t *testing.T) {
	e := Event{
		EventName: "Lead",
		Extra:     map[string]json.RawMessage{"event_name": json.RawMessage(`"Purchase"`), "x": json.RawMessage(`1`)},
	}

	b, err := json.Marshal(e)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, "Lead", out["event_name"])
}

func TestEvent_MarshalWithoutExtraOmitsEmpty(t *testing.T) {
	b, err := json.Marshal(Event{EventName: "PageView"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"event_name":"PageView"}`, string(b))
}

func TestEvent_SettersAllocateMaps(t *testing.T) {
	var e Event
	e.SetUserData(UserDataFBP, "fb.1.1.1")
	e.SetCustomData(CustomDataSessionID, "abc")

	v, ok := e.UserString(UserDataFBP)
	assert.True(t, ok)
	assert.Equal(t, "fb.1.1.1", v)

	s, ok := e.CustomString(CustomDataSessionID)
	assert.True(t, ok)
	assert.Equal(t, "abc", s)

	_, ok = e.UserString("missing")
	assert.False(t, ok)
}

func TestEvent_UnmarshalEventTime(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{name: "integer", raw: `{"event_time":1700000000}`, want: 1700000000},
		{name: "fractional from Date.now()/1000", raw: `{"event_time":1700000000.789}`, want: 1700000000},
		{name: "exponent", raw: `{"event_time":1.7e9}`, want: 1700000000},
		{name: "absent", raw: `{"event_name":"Lead"}`, want: 0},
		{name: "null", raw: `{"event_time":null}`, want: 0},
		{name: "not a number", raw: `{"event_time":"soon"}`, wantErr: true},
		{name: "out of range", raw: `{"event_time":1e300}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Event
			err := json.Unmarshal([]byte(tt.raw), &e)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.EventTime)
			assert.NotContains(t, e.Extra, "event_time")
		})
	}
}
