package booking

import (
	"errors"
	"fmt"
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	// StatusCanceled is terminal and never produced by the engine; it is
	// recognized so bookings canceled elsewhere are rejected from transitions
	// the same way as approved or rejected ones.
	StatusCanceled Status = "CANCELED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s.IsValid() && s != StatusWaiting
}

// State is a classification filter for listing a user's bookings, from either
// the booker's or the owner's viewpoint.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

var ErrUnknownState = errors.New("unknown state")

// ParseState accepts the six recognized filter values, case-sensitively.
// The empty string defaults to ALL.
func ParseState(v string) (State, error) {
	if v == "" {
		return StateAll, nil
	}
	switch s := State(v); s {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownState, v)
	}
}
