// Package nfa implements the nondeterministic finite automaton: a
// transition table whose destinations are state sets, memoized
// depth-first-search acceptance, and subset construction to a DFA.
package nfa

import (
	"errors"
	"fmt"
)

// ErrEmptyDestination indicates a transition was built with a destination
// set that has no members — forbidden per the data model (absent key
// already means "no transition"; an empty set would be a redundant, and
// ambiguous, second way to say the same thing).
var ErrEmptyDestination = errors.New("nfa: transition has an empty destination set")

// ValidationError wraps a validation failure with the offending state.
type ValidationError struct {
	State StateID
	Err   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("nfa: state %d: %v", e.State, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
