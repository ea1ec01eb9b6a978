package handlers

import (
	"testing"

	"github.com/randevuapp/randevu/services/marketplace-service/internal/model"
)

func TestValidWorkingHours(t *testing.T) {
	cases := []struct {
		name string
		ws   model.WeekSchedule
		want bool
	}{
		{"empty schedule", model.WeekSchedule{}, true},
		{"nil schedule", nil, true},
		{"normal day", model.WeekSchedule{"monday": {Open: "09:00", Close: "18:00"}}, true},
		{"uppercase day key", model.WeekSchedule{"Monday": {Open: "09:00", Close: "18:00"}}, true},
		{"unknown day", model.WeekSchedule{"funday": {Open: "09:00", Close: "18:00"}}, false},
		{"open after close", model.WeekSchedule{"monday": {Open: "18:00", Close: "09:00"}}, false},
		{"missing close", model.WeekSchedule{"monday": {Open: "09:00"}}, false},
	}

	for _, tc := range cases {
		if got := validWorkingHours(tc.ws); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
