package lifecycle

import (
	"errors"
	"testing"
)

func TestTransitionChain(t *testing.T) {
	steps := []struct {
		from Status
		to   Status
	}{
		{PendingUserConfirmation, PendingBusinessConfirmation},
		{PendingBusinessConfirmation, Confirmed},
		{Confirmed, Completed},
	}
	for _, s := range steps {
		if err := Transition(s.from, s.to); err != nil {
			t.Fatalf("expected %s -> %s to be allowed: %v", s.from, s.to, err)
		}
	}
}

func TestTransitionRejectsBackwards(t *testing.T) {
	err := Transition(Completed, Confirmed)
	if err == nil {
		t.Fatal("expected completed -> confirmed to be rejected")
	}
	var invalid *InvalidTransitionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTransitionError, got %T", err)
	}
	if invalid.From != Completed || invalid.To != Confirmed {
		t.Fatalf("unexpected error detail: %v", invalid)
	}
}

func TestTransitionSkippingStates(t *testing.T) {
	if err := Transition(PendingUserConfirmation, Confirmed); err == nil {
		t.Fatal("expected skipping business confirmation to be rejected")
	}
	if err := Transition(PendingBusinessConfirmation, Completed); err == nil {
		t.Fatal("expected completing an unconfirmed appointment to be rejected")
	}
}

func TestCancelFromNonTerminal(t *testing.T) {
	for _, from := range []Status{PendingUserConfirmation, PendingBusinessConfirmation, Confirmed} {
		if err := Transition(from, Canceled); err != nil {
			t.Fatalf("expected cancel from %s to be allowed: %v", from, err)
		}
	}
}

func TestCancelFromTerminal(t *testing.T) {
	if err := Transition(Completed, Canceled); err == nil {
		t.Fatal("expected cancel of a completed appointment to be rejected")
	}
	if err := Transition(Canceled, Canceled); err == nil {
		t.Fatal("expected transition out of canceled to be rejected")
	}
}

func TestTransitionUnknownTarget(t *testing.T) {
	if err := Transition(Confirmed, Status("archived")); err == nil {
		t.Fatal("expected unknown target status to be rejected")
	}
}

func TestNormalizeLegacyValues(t *testing.T) {
	cases := map[string]Status{
		"pending":                       PendingUserConfirmation,
		"scheduled":                     PendingBusinessConfirmation,
		"cancelled":                     Canceled,
		"confirmed":                     Confirmed,
		"completed":                     Completed,
		"pending_user_confirmation":     PendingUserConfirmation,
		"pending_business_confirmation": PendingBusinessConfirmation,
	}
	for raw, want := range cases {
		got, err := Normalize(raw)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("Normalize(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestNormalizeRejectsUnknownValues(t *testing.T) {
	for _, raw := range []string{"", "archived", "PENDING", "done"} {
		if _, err := Normalize(raw); !errors.Is(err, ErrUnknownStatus) {
			t.Fatalf("expected ErrUnknownStatus for %q, got %v", raw, err)
		}
	}
}
