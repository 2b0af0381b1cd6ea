// Package dfa implements the deterministic finite automaton: a transition
// table, acceptance, unreachable-state pruning, Hopcroft minimization, and
// BFS renumbering.
//
// A DFA owns its table and derived caches exclusively; every operation that
// transforms a DFA returns a freshly built, independent value rather than
// mutating the receiver.
package dfa

import (
	"sort"

	"github.com/coregx/automaton/fa"
)

// StateID identifies a state within one DFA.
type StateID = fa.StateID

// Symbol is a single input byte. The five bytes reserved by the regex
// compiler (*, +, #, (, )) are ordinary symbols as far as the DFA itself is
// concerned — the reservation is a regex-syntax rule, not a DFA invariant.
type Symbol = byte

// Table is a partial mapping (StateID, Symbol) -> StateID, represented as
// a map of per-state transition rows. A row is a Go map keyed by Symbol, so
// determinism (at most one destination per symbol) is structural.
type Table map[StateID]map[Symbol]StateID

// DFA is the tuple (T, s, F): a transition table, a start state, and a set
// of accepting states.
type DFA struct {
	table  Table
	start  StateID
	accept map[StateID]struct{}

	alphabet map[Symbol]struct{}
	states   map[StateID]struct{}
}

// New constructs a DFA from a transition table, start state, and accepting
// set. The table, start, and accept set are not copied; the caller must not
// mutate them afterward. The alphabet and full state set are derived once,
// here, and cached for the lifetime of the value.
func New(table Table, start StateID, accept map[StateID]struct{}) *DFA {
	d := &DFA{
		table:  table,
		start:  start,
		accept: accept,
	}
	d.alphabet = deriveAlphabet(table)
	d.states = deriveStates(table, start, accept)
	return d
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
		for _, dst := range row {
			states[dst] = struct{}{}
		}
	}
	states[start] = struct{}{}
	for s := range accept {
		states[s] = struct{}{}
	}
	return states
}

// Start returns the start state.
func (d *DFA) Start() StateID { return d.start }

// Alphabet returns the set of symbols appearing in the transition table.
func (d *DFA) Alphabet() map[Symbol]struct{} { return d.alphabet }

// States returns the full set of states: keys and values of the table, the
// start state, and the accepting states.
func (d *DFA) States() map[StateID]struct{} { return d.states }

// StateCount returns the number of states.
func (d *DFA) StateCount() int { return len(d.states) }

// IsAccepting reports whether s is an accepting state.
func (d *DFA) IsAccepting(s StateID) bool {
	_, ok := d.accept[s]
	return ok
}

// Validate performs the defensive, non-breaking checks the construction
// contract trusts callers to have already satisfied: every destination must
// be a declared state (a source row of the table, the start state, or an
// accepting state), so a transition into a state known only as that
// transition's target is reported as dangling.
func (d *DFA) Validate() error {
	declared := make(map[StateID]struct{}, len(d.table)+len(d.accept)+1)
	for s := range d.table {
		declared[s] = struct{}{}
	}
	declared[d.start] = struct{}{}
	for s := range d.accept {
		declared[s] = struct{}{}
	}
	for s, row := range d.table {
		for _, dst := range row {
			if _, ok := declared[dst]; !ok {
				return &ValidationError{State: s, Err: ErrDestinationNotInStates}
			}
		}
	}
	for s := range d.accept {
		if _, ok := d.states[s]; !ok {
			return &ValidationError{State: s, Err: ErrAcceptingNotInStates}
		}
	}
	return nil
}

// Accepts walks the transition table from the start state consuming w byte
// by byte, failing fast on a missing transition. It accepts iff the state
// reached after consuming all of w is an accepting state.
func (d *DFA) Accepts(w []byte) bool {
	cur := d.start
	for _, sym := range w {
		row, ok := d.table[cur]
		if !ok {
			return false
		}
		next, ok := row[sym]
		if !ok {
			return false
		}
		cur = next
	}
	return d.IsAccepting(cur)
}

// toGraph builds the fa.Graph view of the table for use by graph utilities.
// The returned graph is discarded by the caller once the traversal is done.
func (d *DFA) toGraph() fa.Graph {
	g := fa.NewGraph()
	for s, row := range d.table {
		for _, dst := range row {
			g.AddEdge(s, dst)
		}
	}
	return g
}

// RemoveUnreachable returns a DFA whose state set is the intersection of
// the states forward-reachable from the start state and the states
// backward-reachable from the accepting set. The start state is always
// retained, even when it has no path to an accepting state, so the result
// remains well-formed and accepts exactly the same language. Transitions
// into a pruned state are dropped along with the state itself.
func (d *DFA) RemoveUnreachable() *DFA {
	graph := d.toGraph()
	reverse := fa.Reverse(graph)

	acceptSeeds := make([]StateID, 0, len(d.accept))
	for s := range d.accept {
		acceptSeeds = append(acceptSeeds, s)
	}

	forward := fa.Reachable(graph, []StateID{d.start})
	backward := fa.Reachable(reverse, acceptSeeds)
	live := fa.Intersect(forward, backward)
	live[d.start] = struct{}{} // for s, it may not be alive, but it must exist, so use s anyway.

	table := make(Table)
	for s, row := range d.table {
		if _, ok := live[s]; !ok {
			continue
		}
		newRow := make(map[Symbol]StateID)
		for sym, dst := range row {
			if _, ok := live[dst]; !ok {
				continue
			}
			newRow[sym] = dst
		}
		table[s] = newRow
	}

	accept := make(map[StateID]struct{})
	for s := range d.accept {
		if _, ok := live[s]; ok {
			accept[s] = struct{}{}
		}
	}

	return New(table, d.start, accept)
}

// Reorder renumbers states 0, 1, 2, ... in BFS order from the start state,
// visiting a state's outgoing symbols in a fixed (sorted) order. Purely
// cosmetic: it does not change the accepted language.
func (d *DFA) Reorder() *DFA {
	newID := map[StateID]StateID{d.start: 0}
	oldOf := map[StateID]StateID{0: d.start}
	next := StateID(1)

	table := make(Table)
	for cur := StateID(0); cur < next; cur++ {
		old := oldOf[cur]
		row, ok := d.table[old]
		if !ok {
			continue
		}

		symbols := make([]Symbol, 0, len(row))
		for sym := range row {
			symbols = append(symbols, sym)
		}
		sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

		newRow := make(map[Symbol]StateID)
		for _, sym := range symbols {
			dst := row[sym]
			if _, seen := newID[dst]; !seen {
				newID[dst] = next
				oldOf[next] = dst
				next++
			}
			newRow[sym] = newID[dst]
		}
		table[cur] = newRow
	}

	accept := make(map[StateID]struct{})
	for s := range d.accept {
		if mapped, ok := newID[s]; ok {
			accept[mapped] = struct{}{}
		}
	}

	return New(table, newID[d.start], accept)
}
