package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// timestampLayouts lists the formats the backend has been observed to emit.
// PostgREST renders timestamptz with a numeric offset (+00:00), some proxies
// rewrite it to +0000, and older rows carry a space separator.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z0700",
}

// Timestamp is a time.Time that tolerates the backend's timestamp variants on
// decode and always renders the canonical Z-suffixed UTC form on encode.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t as a wire timestamp.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp parses a backend timestamp string.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp format: %q", s)
}

// FormatTimestamp renders t in the canonical Z-suffixed UTC form used in
// query filters. Offsets like +00:00 are prone to mangling by intermediate
// proxies on some cellular networks, so everything is normalized to Z before
// it is placed in a URL.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(FormatTimestamp(t.Time))
}
