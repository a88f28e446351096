package checkout

import (
	"errors"
	"fmt"
)

type State int

const (
	Draft State = iota
	Validating
	Submitting
	Succeeded
	Rejected
	Failed
)

var stateNames = map[State]string{
	Draft:      "draft",
	Validating: "validating",
	Submitting: "submitting",
	Succeeded:  "succeeded",
	Rejected:   "rejected",
	Failed:     "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

var ErrIllegalTransition = errors.New("illegal checkout transition")

var transitions = map[State][]State{
	Draft:      {Validating},
	Validating: {Submitting, Rejected},
	Submitting: {Succeeded, Failed},
	Rejected:   {Draft, Validating},
	Failed:     {Draft, Validating},
}

func (s State) CanTransitionTo(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Editable reports whether the draft may still change in this state.
func (s State) Editable() bool {
	return s == Draft || s == Rejected || s == Failed
}
