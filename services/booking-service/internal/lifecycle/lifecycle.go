package lifecycle

import (
	"errors"
	"fmt"
)

// Status is the appointment state. All status writes go through Transition;
// nothing else mutates the status column.
type Status string

const (
	PendingUserConfirmation     Status = "pending_user_confirmation"
	PendingBusinessConfirmation Status = "pending_business_confirmation"
	Confirmed                   Status = "confirmed"
	Completed                   Status = "completed"
	Canceled                    Status = "canceled"
)

// InvalidTransitionError reports a requested status change the state machine
// does not allow.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid appointment transition %s -> %s", e.From, e.To)
}

// ErrUnknownStatus reports a persisted status string outside the current and
// legacy vocabularies.
var ErrUnknownStatus = errors.New("unknown appointment status")

// Normalize maps legacy persisted status strings onto the current state set.
// Legacy values are rewritten on read and never written back; anything
// outside the known vocabularies is an error rather than a guess.
func Normalize(raw string) (Status, error) {
	switch Status(raw) {
	case PendingUserConfirmation, PendingBusinessConfirmation, Confirmed, Completed, Canceled:
		return Status(raw), nil
	}
	switch raw {
	case "pending":
		return PendingUserConfirmation, nil
	case "scheduled":
		return PendingBusinessConfirmation, nil
	case "cancelled":
		return Canceled, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
}

// Valid reports whether s is a status the API accepts as a transition target.
func Valid(s Status) bool {
	switch s {
	case PendingUserConfirmation, PendingBusinessConfirmation, Confirmed, Completed, Canceled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible from s.
func IsTerminal(s Status) bool {
	return s == Completed || s == Canceled
}

// Transition validates moving an appointment from current to requested.
// The machine is forward-only: cancellation is reachable from any
// non-terminal state, everything else follows the confirmation chain.
func Transition(current, requested Status) error {
	if !Valid(requested) {
		return &InvalidTransitionError{From: current, To: requested}
	}
	if requested == Canceled {
		if IsTerminal(current) {
			return &InvalidTransitionError{From: current, To: requested}
		}
		return nil
	}
	allowed := map[Status]Status{
		PendingUserConfirmation:     PendingBusinessConfirmation,
		PendingBusinessConfirmation: Confirmed,
		Confirmed:                   Completed,
	}
	if next, ok := allowed[current]; ok && next == requested {
		return nil
	}
	return &InvalidTransitionError{From: current, To: requested}
}
