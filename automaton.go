// Package automaton compiles a small regular-expression language over a
// single-byte alphabet into a minimal DFA, by driving the
// regex -> enfa -> nfa -> dfa pipeline in the four subpackages:
//
//	regex.Compile   pattern string -> *enfa.ENFA   (shunting-yard + Thompson)
//	(*enfa.ENFA).ToNFA                -> *nfa.NFA  (epsilon-closure folding)
//	(*nfa.NFA).ToDFA                  -> *dfa.DFA  (subset construction)
//	(*dfa.DFA).Minimize               -> *dfa.DFA  (unreachable-pruning + Hopcroft)
//
// Example:
//
//	d, err := automaton.Compile("a*b")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(d.Accepts([]byte("aaab"))) // true
package automaton

import (
	"github.com/coregx/automaton/dfa"
	"github.com/coregx/automaton/regex"
)

// Config controls the optional post-processing stages run after subset
// construction. The zero Config runs neither stage.
type Config struct {
	// Minimize runs DFA minimization (unreachable-state pruning followed
	// by Hopcroft partition refinement) on the constructed DFA.
	Minimize bool

	// Reorder renumbers the final DFA's states by BFS distance from the
	// start state, in sorted-symbol order. Cosmetic only: it never
	// changes the accepted language. If Minimize is also set, Reorder
	// runs after it.
	Reorder bool

	// MaxStates bounds the number of states of the DFA produced by
	// NFA-to-DFA subset construction: a larger DFA makes CompileWithConfig
	// return a *StateLimitError. Zero means unbounded. The check runs after
	// subset construction has finished, so it does not limit the time or
	// memory the construction itself uses.
	MaxStates int
}

// DefaultConfig returns the Config used by Compile: both Minimize and
// Reorder enabled, no MaxStates bound.
func DefaultConfig() Config {
	return Config{Minimize: true, Reorder: true}
}

// Compile compiles pattern into a minimized, BFS-reordered DFA, using
// DefaultConfig.
func Compile(pattern string) (*dfa.DFA, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if pattern fails to compile. It
// is intended for use with patterns known at compile time, such as
// package-level automaton variables.
func MustCompile(pattern string) *dfa.DFA {
	d, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return d
}

// CompileWithConfig compiles pattern into a DFA, running only the stages
// cfg enables.
func CompileWithConfig(pattern string, cfg Config) (*dfa.DFA, error) {
	e, err := regex.Compile(pattern)
	if err != nil {
		return nil, err
	}

	n := e.ToNFA()
	d := n.ToDFA()

	if cfg.MaxStates > 0 && d.StateCount() > cfg.MaxStates {
		return nil, &StateLimitError{Pattern: pattern, Limit: cfg.MaxStates, Got: d.StateCount()}
	}

	if cfg.Minimize {
		d = d.Minimize()
	}
	if cfg.Reorder {
		d = d.Reorder()
	}

	return d, nil
}
