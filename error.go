package automaton

import "fmt"

// StateLimitError indicates that subset construction produced a DFA
// larger than the Config.MaxStates bound.
type StateLimitError struct {
	Pattern string
	Limit   int
	Got     int
}

// Error implements the error interface.
func (e *StateLimitError) Error() string {
	return fmt.Sprintf("automaton: compile %q: %d states exceeds limit %d", e.Pattern, e.Got, e.Limit)
}
