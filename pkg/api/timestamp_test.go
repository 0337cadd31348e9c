package api

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp_BackendVariants(t *testing.T) {
	want := time.Date(2025, 6, 1, 12, 34, 56, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{"canonical z", "2025-06-01T12:34:56Z"},
		{"numeric offset", "2025-06-01T12:34:56+00:00"},
		{"compact offset", "2025-06-01T12:34:56+0000"},
		{"space separator", "2025-06-01 12:34:56+00:00"},
		{"space compact offset", "2025-06-01 12:34:56+0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "got %v", got)
		})
	}
}

func TestParseTimestamp_Fractional(t *testing.T) {
	got, err := ParseTimestamp("2025-06-01T12:34:56.123456+00:00")
	require.NoError(t, err)
	assert.Equal(t, 123456000, got.Nanosecond())
}

func TestParseTimestamp_Unsupported(t *testing.T) {
	_, err := ParseTimestamp("June 1st 2025")
	assert.Error(t, err)
}

func TestFormatTimestamp_NormalizesToZ(t *testing.T) {
	cet := time.FixedZone("CET", 3600)
	in := time.Date(2025, 6, 1, 13, 0, 0, 0, cet)

	got := FormatTimestamp(in)
	assert.Equal(t, "2025-06-01T12:00:00Z", got)
}

func TestTimestamp_UnmarshalNullAndEmpty(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
	assert.True(t, ts.IsZero())
}

func TestTimestamp_RoundTrip(t *testing.T) {
	in := Timestamp{Time: time.Date(2025, 6, 1, 12, 34, 56, 0, time.UTC)}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-01T12:34:56Z"`, string(data))

	var out Timestamp
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, out.Equal(in.Time))
}
