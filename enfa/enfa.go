// Package enfa implements the ε-NFA: a transition table with both
// terminal (symbol-consuming) and ε (no-input) edges, a per-state ε-closure
// cache computed once at construction, two-mode acceptance, and conversion
// to a plain NFA.
package enfa

import (
	"github.com/coregx/automaton/fa"
	"github.com/coregx/automaton/internal/conv"
	"github.com/coregx/automaton/internal/sparse"
)

// StateID identifies a state within one ε-NFA.
type StateID = fa.StateID

// Symbol is a single input byte.
type Symbol = byte

// TransRecord is the per-state transition record: a terminal map for
// symbol-consuming edges and an ε set for no-input edges. Both shapes live
// in one record (rather than an inheritance hierarchy or dynamic dispatch)
// since every state may have either, both, or neither.
type TransRecord struct {
	Terminal map[Symbol]map[StateID]struct{}
	Epsilon  map[StateID]struct{}
}

// Table maps a source state to its TransRecord.
type Table map[StateID]TransRecord

// ENFA is the ε-NFA: a transition table, start state, and accepting set.
type ENFA struct {
	table  Table
	start  StateID
	accept map[StateID]struct{}

	alphabet map[Symbol]struct{}
	states   map[StateID]struct{}
	closure  map[StateID]map[StateID]struct{}
}

// New constructs an ε-NFA from a transition table, start state, and
// accepting set, without copying them. The alphabet, full state set, and
// ε-closure cache are all derived once, here, and cached for the lifetime
// of the value.
func New(table Table, start StateID, accept map[StateID]struct{}) *ENFA {
	e := &ENFA{table: table, start: start, accept: accept}
	e.alphabet = deriveAlphabet(table)
	e.states = deriveStates(table, start, accept)
	e.closure = computeClosures(table, e.states)
	return e
}

func deriveAlphabet(table Table) map[Symbol]struct{} {
	alphabet := make(map[Symbol]struct{})
	for _, rec := range table {
		for sym := range rec.Terminal {
			alphabet[sym] = struct{}{}
		}
	}
	return alphabet
}

func deriveStates(table Table, start StateID, accept map[StateID]struct{}) map[StateID]struct{} {
	states := make(map[StateID]struct{})
	for s, rec := range table {
		states[s] = struct{}{}
		for _, dsts := range rec.Terminal {
			for d := range dsts {
				states[d] = struct{}{}
			}
		}
		for d := range rec.Epsilon {
			states[d] = struct{}{}
		}
	}
	states[start] = struct{}{}
	for s := range accept {
		states[s] = struct{}{}
	}
	return states
}

// computeClosures computes, for every state in states, the set of states
// reachable by zero or more ε-transitions (always including the state
// itself). It reuses already-computed closures encountered mid-BFS, so a
// state's closure is never recomputed once known.
func computeClosures(table Table, states map[StateID]struct{}) map[StateID]map[StateID]struct{} {
	closures := make(map[StateID]map[StateID]struct{}, len(states))
	if len(states) == 0 {
		return closures
	}

	var maxID StateID
	for s := range states {
		if s > maxID {
			maxID = s
		}
	}
	visited := sparse.NewSparseSet(conv.IntToUint32(int(maxID) + 1))

	for s := range states {
		if _, done := closures[s]; done {
			continue
		}
		closures[s] = bfsClosure(table, closures, visited, s)
	}
	return closures
}

func bfsClosure(table Table, closures map[StateID]map[StateID]struct{}, visited *sparse.SparseSet, start StateID) map[StateID]struct{} {
	visited.Clear()
	visited.Insert(uint32(start))
	result := map[StateID]struct{}{start: {}}
	queue := []StateID{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cached, ok := closures[cur]; ok && cur != start {
			for s := range cached {
				if visited.Insert(uint32(s)) {
					result[s] = struct{}{}
				}
			}
			continue
		}

		for next := range table[cur].Epsilon {
			if visited.Insert(uint32(next)) {
				result[next] = struct{}{}
				queue = append(queue, next)
			}
		}
	}
	return result
}

// Start returns the start state.
func (e *ENFA) Start() StateID { return e.start }

// Alphabet returns the set of symbols appearing on terminal transitions.
func (e *ENFA) Alphabet() map[Symbol]struct{} { return e.alphabet }

// States returns the full derived state set.
func (e *ENFA) States() map[StateID]struct{} { return e.states }

// StateCount returns the number of states.
func (e *ENFA) StateCount() int { return len(e.states) }

// IsAccepting reports whether s is an accepting state.
func (e *ENFA) IsAccepting(s StateID) bool {
	_, ok := e.accept[s]
	return ok
}

// Closure returns the cached ε-closure of s (always including s itself). A
// state with no cached entry has no ε-moves and its closure is just {s}.
func (e *ENFA) Closure(s StateID) map[StateID]struct{} {
	if c, ok := e.closure[s]; ok {
		return c
	}
	return map[StateID]struct{}{s: {}}
}

// Accepts runs a two-mode DFS: canEpsilon tracks whether an ε-move may be
// taken from the current position. Consuming a symbol re-enables it;
// taking an ε-move (to any state in the current state's closure) disables
// it for that immediate continuation, which keeps the search from
// re-exploring the same closure forever on a cyclic ε-graph. At the end of
// input, acceptance holds if the current state or anything in its closure
// is accepting.
func (e *ENFA) Accepts(w []byte) bool {
	var dfs func(state StateID, pos int, canEpsilon bool) bool
	dfs = func(state StateID, pos int, canEpsilon bool) bool {
		if pos == len(w) {
			if e.IsAccepting(state) {
				return true
			}
			for s := range e.closure[state] {
				if e.IsAccepting(s) {
					return true
				}
			}
			return false
		}

		if rec, ok := e.table[state]; ok {
			if nexts, ok := rec.Terminal[w[pos]]; ok {
				for next := range nexts {
					if dfs(next, pos+1, true) {
						return true
					}
				}
			}
		}

		if canEpsilon {
			for next := range e.closure[state] {
				if dfs(next, pos, false) {
					return true
				}
			}
		}
		return false
	}

	return dfs(e.start, 0, true)
}
