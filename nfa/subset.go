package nfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/coregx/automaton/dfa"
)

// sortedStates returns the members of set in ascending order, giving a
// canonical, reproducible iteration order over a state set.
func sortedStates(set map[StateID]struct{}) []StateID {
	out := make([]StateID, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// subsetKey canonicalizes a (sorted) state slice into a map key, since Go
// forbids slices as map keys directly.
func subsetKey(sorted []StateID) string {
	var sb strings.Builder
	for i, s := range sorted {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(s), 10))
	}
	return sb.String()
}

// symbolsOf returns the symbols appearing in rows for the given states,
// in ascending order.
func (n *NFA) symbolsOf(states []StateID) []Symbol {
	seen := make(map[Symbol]struct{})
	for _, s := range states {
		for sym := range n.table[s] {
			seen[sym] = struct{}{}
		}
	}
	symbols := make([]Symbol, 0, len(seen))
	for sym := range seen {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols
}

// ToDFA converts n to an equivalent DFA via subset construction: a BFS over
// subsets of NFA states, starting from {start}. For the current subset U
// and each symbol c in U's alphabet, the destination subset is the union of
// δ(q, c) over q in U; a non-empty, previously unseen destination subset is
// enqueued and assigned a fresh DFA state id in discovery order, which
// makes the resulting ids reproducible for a given NFA. An empty
// destination subset is simply not recorded as a transition, matching the
// DFA's "absent key means no transition" convention — there is no need for
// an explicit dead state.
//
// The new start state is the id of {start}; a subset-state is accepting iff
// the subset it represents intersects the NFA's accepting set.
func (n *NFA) ToDFA() *dfa.DFA {
	startSubset := sortedStates(map[StateID]struct{}{n.start: {}})
	subsetID := map[string]StateID{subsetKey(startSubset): 0}
	queue := [][]StateID{startSubset}
	var nextID StateID = 1

	table := dfa.Table{}
	accept := map[StateID]struct{}{}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curID := subsetID[subsetKey(cur)]

		for _, s := range cur {
			if n.IsAccepting(s) {
				accept[curID] = struct{}{}
				break
			}
		}

		row := make(map[Symbol]StateID)
		for _, sym := range n.symbolsOf(cur) {
			union := make(map[StateID]struct{})
			for _, s := range cur {
				for d := range n.table[s][sym] {
					union[d] = struct{}{}
				}
			}
			if len(union) == 0 {
				continue
			}

			dstSubset := sortedStates(union)
			key := subsetKey(dstSubset)
			id, seen := subsetID[key]
			if !seen {
				id = nextID
				nextID++
				subsetID[key] = id
				queue = append(queue, dstSubset)
			}
			row[sym] = id
		}
		table[curID] = row
	}

	return dfa.New(table, 0, accept)
}
