package enfa

import "github.com/coregx/automaton/nfa"

// ToNFA converts e to an equivalent NFA using the ε-closure cache: for
// every state q, for every p in ε-closure(q), for every terminal
// transition (c, R) out of p, R is unioned into q's new c-transition, and
// then the ε-closure of each r in R is unioned into that same destination
// set. The new start state is e's start state; the new accepting set is
// every state whose ε-closure intersects the original accepting set —
// equivalently, every state backward-reachable from the original
// accepting set over ε-edges alone.
func (e *ENFA) ToNFA() *nfa.NFA {
	table := make(nfa.Table, len(e.states))

	for q := range e.states {
		row := make(map[Symbol]map[StateID]struct{})

		for p := range e.Closure(q) {
			rec, ok := e.table[p]
			if !ok {
				continue
			}
			for c, dsts := range rec.Terminal {
				dest, ok := row[c]
				if !ok {
					dest = make(map[StateID]struct{})
					row[c] = dest
				}
				for r := range dsts {
					dest[r] = struct{}{}
					for closed := range e.Closure(r) {
						dest[closed] = struct{}{}
					}
				}
			}
		}

		if len(row) > 0 {
			table[q] = row
		}
	}

	accept := make(map[StateID]struct{})
	for q := range e.states {
		for s := range e.Closure(q) {
			if e.IsAccepting(s) {
				accept[q] = struct{}{}
				break
			}
		}
	}

	return nfa.New(table, e.start, accept)
}
