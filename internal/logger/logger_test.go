package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/actuallystonmai/basket-gateway/internal/correlation"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONWithService(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "debug", Format: "json", Service: "basket-gateway", Writer: &buf})

	l.Info().Str("k", "v").Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["message"])
	assert.Equal(t, "basket-gateway", line["service"])
	assert.Equal(t, "v", line["k"])
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestCWithoutRequestIDReturnsRoot(t *testing.T) {
	assert.Same(t, Get(), C(context.Background()))
}

func TestCAddsRequestID(t *testing.T) {
	ctx := correlation.WithID(context.Background(), "req-1")
	assert.NotSame(t, Get(), C(ctx))
}
