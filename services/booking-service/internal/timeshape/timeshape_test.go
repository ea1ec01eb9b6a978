package timeshape

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNormalizeAllShapesAgree(t *testing.T) {
	want := time.Date(2025, 5, 25, 10, 0, 0, 0, time.UTC)

	shapes := map[string]json.RawMessage{
		"rfc3339":      json.RawMessage(`"2025-05-25T10:00:00Z"`),
		"seconds":      json.RawMessage(`{"seconds":1748167200,"nanoseconds":0}`),
		"epoch millis": json.RawMessage(`1748167200000`),
	}
	for name, raw := range shapes {
		got, err := Normalize(raw)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !got.Equal(want) {
			t.Fatalf("%s: got %s, want %s", name, got, want)
		}
	}

	combined, err := Combine("2025-05-25", "10:00")
	if err != nil {
		t.Fatalf("combine: %v", err)
	}
	if !combined.Equal(want) {
		t.Fatalf("combine: got %s, want %s", combined, want)
	}
}

func TestNormalizeBareDate(t *testing.T) {
	got, err := Normalize(json.RawMessage(`"2025-05-25"`))
	if err != nil {
		t.Fatalf("bare date: %v", err)
	}
	if !got.Equal(time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("bare date normalized to %s", got)
	}
}

func TestNormalizeEpochZeroSeconds(t *testing.T) {
	got, err := Normalize(json.RawMessage(`{"seconds":0,"nanoseconds":500000000}`))
	if err != nil {
		t.Fatalf("epoch zero: %v", err)
	}
	if !got.Equal(time.Date(1970, 1, 1, 0, 0, 0, 500000000, time.UTC)) {
		t.Fatalf("epoch zero normalized to %s", got)
	}
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	for _, raw := range []string{``, `null`, `"soon"`, `{"sec":1}`, `true`} {
		if _, err := Normalize(json.RawMessage(raw)); !errors.Is(err, ErrUnrecognized) {
			t.Fatalf("expected ErrUnrecognized for %q, got %v", raw, err)
		}
	}
}

func TestCombineRejectsBadClock(t *testing.T) {
	if _, err := Combine("2025-05-25", "25:99"); err == nil {
		t.Fatal("expected invalid clock to be rejected")
	}
	if _, err := Combine("25/05/2025", "10:00"); err == nil {
		t.Fatal("expected invalid date to be rejected")
	}
}
