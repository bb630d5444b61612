package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_EmitsRoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput("test-role", &buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.NotEmpty(t, entry["time"])
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	// must not panic, must not write anywhere
	l.Error().Msg("swallowed")
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput("ctx-role", &buf)

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from ctx")

	assert.Contains(t, buf.String(), `"ctx-role"`)
	assert.Contains(t, buf.String(), "from ctx")
}

func TestFromRequest_UsesRequestContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput("req-role", &buf)

	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(l.WithContext(r.Context()))

	FromRequest(r).Info().Msg("from request")

	assert.Contains(t, buf.String(), "from request")
}
