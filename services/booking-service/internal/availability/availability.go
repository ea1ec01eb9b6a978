package availability

import (
	"strings"
	"time"

	"github.com/randevuapp/randevu/services/booking-service/internal/directory"
)

// WithinHours reports whether the interval [start, end) fits inside the
// shop's declared opening window on the start day. A shop with no declared
// hours accepts any time; a declared schedule with the weekday missing means
// the shop is closed that day.
func WithinHours(hours map[string]directory.DayHours, start, end time.Time) bool {
	if len(hours) == 0 {
		return true
	}
	if !end.After(start) {
		return false
	}

	day := strings.ToLower(start.UTC().Weekday().String())
	window, ok := hours[day]
	if !ok {
		return false
	}

	open, err := clockOn(start, window.Open)
	if err != nil {
		return false
	}
	closing, err := clockOn(start, window.Close)
	if err != nil {
		return false
	}
	if !closing.After(open) {
		return false
	}
	return !start.Before(open) && !end.After(closing)
}

func clockOn(day time.Time, clock string) (time.Time, error) {
	c, err := time.Parse("15:04", strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, err
	}
	d := day.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, time.UTC), nil
}
