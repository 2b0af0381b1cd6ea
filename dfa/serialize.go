package dfa

import (
	"fmt"
	"sort"
	"strings"
)

// sortedSymbols returns the alphabet in ascending byte order, for
// deterministic serialization.
func (d *DFA) sortedSymbols() []Symbol {
	symbols := make([]Symbol, 0, len(d.alphabet))
	for sym := range d.alphabet {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols
}

func (d *DFA) sortedStates() []StateID {
	states := make([]StateID, 0, len(d.states))
	for s := range d.states {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return states
}

// TableString renders the DFA as a tab-aligned transition table: a header
// row of the alphabet's symbols, then one row per state marked "(s)" if it
// is the start state and "(e)" if it is accepting, followed by the
// destination state (or "#" if the transition is absent) for each symbol.
//
// This is external-collaborator-facing (a pretty-printer, not part of the
// core's tested contract); the exact byte layout follows the original
// tooling this toolkit was distilled from so downstream formatting stays
// compatible.
func (d *DFA) TableString() string {
	var sb strings.Builder
	symbols := d.sortedSymbols()

	sb.WriteString("\t\t")
	for _, sym := range symbols {
		sb.WriteString("\t")
		sb.WriteByte(sym)
	}
	sb.WriteString("\n")

	for _, s := range d.sortedStates() {
		if s == d.start {
			sb.WriteString("(s)")
		}
		sb.WriteString("\t")
		if d.IsAccepting(s) {
			sb.WriteString("(e)")
		}
		sb.WriteString("\t")
		fmt.Fprintf(&sb, "q%d", s)

		for _, sym := range symbols {
			sb.WriteString("\t")
			if dst, ok := d.table[s][sym]; ok {
				fmt.Fprintf(&sb, "q%d", dst)
			} else {
				sb.WriteString("#")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// GrammarString renders the DFA as a right-linear grammar: one line
// "q<i>-><sym>q<j>" per transition whose destination has outgoing
// transitions of its own, and one line "q<i>-><sym>" for each transition
// whose destination is accepting.
func (d *DFA) GrammarString() string {
	var sb strings.Builder

	for _, s := range d.sortedStates() {
		row, ok := d.table[s]
		if !ok {
			continue
		}
		symbols := make([]Symbol, 0, len(row))
		for sym := range row {
			symbols = append(symbols, sym)
		}
		sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

		for _, sym := range symbols {
			dst := row[sym]
			if len(d.table[dst]) == 0 {
				continue
			}
			fmt.Fprintf(&sb, "q%d->%cq%d\n", s, sym, dst)
		}
		for _, sym := range symbols {
			dst := row[sym]
			if !d.IsAccepting(dst) {
				continue
			}
			fmt.Fprintf(&sb, "q%d->%c\n", s, sym)
		}
	}

	return sb.String()
}
