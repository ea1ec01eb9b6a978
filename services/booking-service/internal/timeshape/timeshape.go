package timeshape

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// The store accumulated several timestamp encodings over time: RFC3339
// strings, separate date + clock strings, {seconds,nanoseconds} objects, and
// numeric epoch millis. Everything is normalized to time.Time at the data
// access boundary; none of the legacy shapes leak past it.

var ErrUnrecognized = errors.New("unrecognized timestamp shape")

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// Seconds is a pointer so an absent field is distinguishable from a stored
// epoch-zero instant.
type secondsShape struct {
	Seconds     *int64 `json:"seconds"`
	Nanoseconds int64  `json:"nanoseconds"`
}

// Normalize decodes one persisted timestamp value into a UTC time.Time.
func Normalize(raw json.RawMessage) (time.Time, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return time.Time{}, ErrUnrecognized
	}

	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, fmt.Errorf("%w: %s", ErrUnrecognized, trimmed)
		}
		return FromString(s)
	}

	if strings.HasPrefix(trimmed, "{") {
		var obj secondsShape
		if err := json.Unmarshal(raw, &obj); err != nil || obj.Seconds == nil {
			return time.Time{}, fmt.Errorf("%w: %s", ErrUnrecognized, trimmed)
		}
		return time.Unix(*obj.Seconds, obj.Nanoseconds).UTC(), nil
	}

	var millis int64
	if err := json.Unmarshal(raw, &millis); err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrUnrecognized, trimmed)
	}
	return time.UnixMilli(millis).UTC(), nil
}

// FromString parses an RFC3339 timestamp or a bare calendar date.
func FromString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(dateLayout, s, time.UTC); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, s)
}

// Combine resolves a "2006-01-02" date and a "15:04" clock into one UTC
// instant.
func Combine(date, clock string) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, strings.TrimSpace(date), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", date)
	}
	c, err := time.Parse(clockLayout, strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q", clock)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour(), c.Minute(), 0, 0, time.UTC), nil
}
