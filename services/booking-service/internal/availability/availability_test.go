package availability

import (
	"testing"
	"time"

	"github.com/randevuapp/randevu/services/booking-service/internal/directory"
)

func TestWithinHours(t *testing.T) {
	// 2025-05-26 is a Monday.
	monday10 := time.Date(2025, 5, 26, 10, 0, 0, 0, time.UTC)
	hours := map[string]directory.DayHours{
		"monday": {Open: "09:00", Close: "18:00"},
	}

	cases := []struct {
		name  string
		hours map[string]directory.DayHours
		start time.Time
		end   time.Time
		want  bool
	}{
		{"inside window", hours, monday10, monday10.Add(time.Hour), true},
		{"exact window", hours, monday10.Add(-time.Hour), monday10.Add(8 * time.Hour), true},
		{"before opening", hours, monday10.Add(-2 * time.Hour), monday10, false},
		{"past closing", hours, monday10.Add(7 * time.Hour), monday10.Add(9 * time.Hour), false},
		{"closed day", hours, monday10.Add(24 * time.Hour), monday10.Add(25 * time.Hour), false},
		{"no declared hours", nil, monday10, monday10.Add(time.Hour), true},
		{"inverted interval", hours, monday10, monday10.Add(-time.Hour), false},
		{"bad clock value", map[string]directory.DayHours{"monday": {Open: "nine", Close: "18:00"}}, monday10, monday10.Add(time.Hour), false},
	}

	for _, tc := range cases {
		if got := WithinHours(tc.hours, tc.start, tc.end); got != tc.want {
			t.Fatalf("%s: WithinHours = %v, want %v", tc.name, got, tc.want)
		}
	}
}
