package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTags_ScanNull(t *testing.T) {
	var tags Tags
	require.NoError(t, tags.Scan(nil))
	require.NotNil(t, tags)
	assert.Len(t, tags, 0)
}

func TestTags_ScanBytes(t *testing.T) {
	var tags Tags
	require.NoError(t, tags.Scan([]byte(`["sales","email"]`)))
	assert.Equal(t, Tags{"sales", "email"}, tags)
}

func TestTags_ScanString(t *testing.T) {
	var tags Tags
	require.NoError(t, tags.Scan(`["code"]`))
	assert.Equal(t, Tags{"code"}, tags)
}

func TestTags_ScanUnsupportedType(t *testing.T) {
	var tags Tags
	require.Error(t, tags.Scan(42))
}

func TestTags_ValueNilIsEmptyArray(t *testing.T) {
	var tags Tags
	v, err := tags.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)
}

func TestTags_ValueRoundTrip(t *testing.T) {
	v, err := Tags{"a", "b"}.Value()
	require.NoError(t, err)

	var back Tags
	require.NoError(t, back.Scan(v))
	assert.Equal(t, Tags{"a", "b"}, back)
}
