package dfa

import (
	"errors"
	"fmt"
)

// Common DFA validation errors. Construction itself never returns an error
// (the caller is trusted to supply a consistent table, per the transition
// table's ownership contract); these are surfaced only by the optional
// Validate method, a defensive, non-breaking extension a caller may invoke
// before trusting a table built by hand.
var (
	ErrDestinationNotInStates = errors.New("dfa: transition destination not in state set")
	ErrAcceptingNotInStates   = errors.New("dfa: accepting state not in state set")
)

// ValidationError wraps a validation failure with the offending state so a
// caller can report where a hand-built table went wrong.
type ValidationError struct {
	State StateID
	Err   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("dfa: state %d: %v", e.State, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
