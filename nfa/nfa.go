package nfa

import "github.com/coregx/automaton/fa"

// StateID identifies a state within one NFA.
type StateID = fa.StateID

// Symbol is a single input byte.
type Symbol = byte

// Table is a partial mapping (StateID, Symbol) -> set of StateID. An absent
// key is equivalent to an empty destination set; an explicit empty set is
// forbidden (see ErrEmptyDestination) to keep the two cases from diverging.
type Table map[StateID]map[Symbol]map[StateID]struct{}

// NFA is the tuple (T, s, F): a transition table yielding state sets, a
// start state, and a set of accepting states.
type NFA struct {
	table  Table
	start  StateID
	accept map[StateID]struct{}

	alphabet map[Symbol]struct{}
	states   map[StateID]struct{}
}

// New constructs an NFA from a transition table, start state, and accepting
// set, without copying them. The alphabet and full state set are derived
// once and cached.
func New(table Table, start StateID, accept map[StateID]struct{}) *NFA {
	n := &NFA{table: table, start: start, accept: accept}
	n.alphabet = deriveAlphabet(table)
	n.states = deriveStates(table, start, accept)
	return n
}

func deriveAlphabet(table Table) map[Symbol]struct{} {
	alphabet := make(map[Symbol]struct{})
	for _, row := range table {
		for sym := range row {
			alphabet[sym] = struct{}{}
		}
	}
	return alphabet
}

func deriveStates(table Table, start StateID, accept map[StateID]struct{}) map[StateID]struct{} {
	states := make(map[StateID]struct{})
	for s, row := range table {
		states[s] = struct{}{}
		for _, dsts := range row {
			for d := range dsts {
				states[d] = struct{}{}
			}
		}
	}
	states[start] = struct{}{}
	for s := range accept {
		states[s] = struct{}{}
	}
	return states
}

// Start returns the start state.
func (n *NFA) Start() StateID { return n.start }

// Alphabet returns the set of symbols appearing in the transition table.
func (n *NFA) Alphabet() map[Symbol]struct{} { return n.alphabet }

// States returns the full derived state set.
func (n *NFA) States() map[StateID]struct{} { return n.states }

// StateCount returns the number of states.
func (n *NFA) StateCount() int { return len(n.states) }

// IsAccepting reports whether s is an accepting state.
func (n *NFA) IsAccepting(s StateID) bool {
	_, ok := n.accept[s]
	return ok
}

// Validate rejects a table built with an explicit empty destination set,
// the one construction mistake the data model singles out as forbidden.
func (n *NFA) Validate() error {
	for s, row := range n.table {
		for _, dsts := range row {
			if len(dsts) == 0 {
				return &ValidationError{State: s, Err: ErrEmptyDestination}
			}
		}
	}
	return nil
}

// dfsKey identifies one (state, remaining-suffix-position) pair for the
// memo table backing Accepts.
type dfsKey struct {
	state StateID
	pos   int
}

// Accepts performs a memoized depth-first search over (state, suffix
// position) pairs. A pair once explored and failed is never revisited,
// which bounds the search to StateCount()*(len(w)+1) pairs and guarantees
// termination. It succeeds as soon as any branch consumes all of w while
// resting on an accepting state.
func (n *NFA) Accepts(w []byte) bool {
	failed := make(map[dfsKey]struct{})

	var dfs func(state StateID, pos int) bool
	dfs = func(state StateID, pos int) bool {
		key := dfsKey{state, pos}
		if _, seen := failed[key]; seen {
			return false
		}
		if pos == len(w) {
			if n.IsAccepting(state) {
				return true
			}
			failed[key] = struct{}{}
			return false
		}

		row, ok := n.table[state]
		if !ok {
			failed[key] = struct{}{}
			return false
		}
		nexts, ok := row[w[pos]]
		if !ok {
			failed[key] = struct{}{}
			return false
		}

		for next := range nexts {
			if dfs(next, pos+1) {
				return true
			}
		}
		failed[key] = struct{}{}
		return false
	}

	return dfs(n.start, 0)
}
