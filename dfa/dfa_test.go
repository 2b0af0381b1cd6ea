package dfa

import "testing"

// buildABStar builds a DFA for a*b* over {a, b}: q0 loops on a, moves to q1
// on b, q1 loops on b. Both q0 and q1 accept.
func buildABStar() *DFA {
	table := Table{
		0: {'a': 0, 'b': 1},
		1: {'b': 1},
	}
	return New(table, 0, map[StateID]struct{}{0: {}, 1: {}})
}

func TestDFAAccepts(t *testing.T) {
	d := buildABStar()

	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"a", true},
		{"abb", true},
		{"aaabbb", true},
		{"ba", false},
		{"bba", false},
		{"ac", false},
	}
	for _, tc := range cases {
		if got := d.Accepts([]byte(tc.in)); got != tc.want {
			t.Errorf("Accepts(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDFAStatesAndAlphabet(t *testing.T) {
	d := buildABStar()
	if d.StateCount() != 2 {
		t.Errorf("expected 2 states, got %d", d.StateCount())
	}
	if len(d.Alphabet()) != 2 {
		t.Errorf("expected alphabet of size 2, got %d", len(d.Alphabet()))
	}
}

func TestDFAValidate(t *testing.T) {
	d := buildABStar()
	if err := d.Validate(); err != nil {
		t.Errorf("expected valid DFA, got %v", err)
	}

	bad := New(Table{0: {'a': 99}}, 0, nil)
	if err := bad.Validate(); err == nil {
		t.Error("expected validation error for dangling transition")
	}
}

// TestRemoveUnreachablePreservesLanguage builds a DFA with a dead branch
// (state 2, reachable from start but with no path to an accepting state)
// and an unreachable branch (state 3, has no incoming edge at all), then
// checks acceptance is unchanged and state 3 is gone.
func TestRemoveUnreachablePreservesLanguage(t *testing.T) {
	table := Table{
		0: {'a': 1, 'b': 2},
		1: {}, // accepting dead end
		2: {'c': 2}, // dead: no path to an accepting state
		3: {'a': 1}, // unreachable from start
	}
	d := New(table, 0, map[StateID]struct{}{1: {}})

	pruned := d.RemoveUnreachable()

	for _, w := range []string{"", "a", "b", "bc", "bcc"} {
		if got, want := pruned.Accepts([]byte(w)), d.Accepts([]byte(w)); got != want {
			t.Errorf("Accepts(%q): pruned=%v original=%v", w, got, want)
		}
	}
	if _, ok := pruned.States()[3]; ok {
		t.Error("state 3 should have been pruned (unreachable)")
	}
	if _, ok := pruned.States()[0]; !ok {
		t.Error("start state must be retained even though it's always present")
	}
}

// TestRemoveUnreachableRetainsDeadStart checks that a start state with no
// path at all to any accepting state is still retained so the DFA is
// well-formed (accepts nothing, but doesn't vanish).
func TestRemoveUnreachableRetainsDeadStart(t *testing.T) {
	table := Table{0: {'a': 0}}
	d := New(table, 0, nil)

	pruned := d.RemoveUnreachable()
	if _, ok := pruned.States()[0]; !ok {
		t.Fatal("start state must be retained even when dead")
	}
	if pruned.Accepts([]byte("aaa")) {
		t.Error("a DFA with no accepting states should accept nothing")
	}
}

func TestReorderPreservesLanguage(t *testing.T) {
	d := buildABStar()
	reordered := d.Reorder()

	for _, w := range []string{"", "a", "abb", "ba", "bba"} {
		if got, want := reordered.Accepts([]byte(w)), d.Accepts([]byte(w)); got != want {
			t.Errorf("Accepts(%q): reordered=%v original=%v", w, got, want)
		}
	}
	if reordered.Start() != 0 {
		t.Errorf("expected reordered start state 0, got %d", reordered.Start())
	}
}

func TestReorderIdempotent(t *testing.T) {
	d := buildABStar()
	once := d.Reorder()
	twice := once.Reorder()

	if once.StateCount() != twice.StateCount() {
		t.Fatalf("state count changed: %d vs %d", once.StateCount(), twice.StateCount())
	}
	for s := range once.States() {
		row1, row2 := once.table[s], twice.table[s]
		if len(row1) != len(row2) {
			t.Errorf("state %d: transition count changed", s)
		}
		for sym, dst := range row1 {
			if row2[sym] != dst {
				t.Errorf("state %d symbol %c: %d vs %d", s, sym, dst, row2[sym])
			}
		}
	}
}

func TestMinimizePreservesLanguage(t *testing.T) {
	// States 0 and 1 both move to the accepting state 2 on 'b' and are
	// indistinguishable.
	table := Table{
		0: {'a': 1, 'b': 2},
		1: {'a': 1, 'b': 2},
		2: {'a': 2, 'b': 2},
	}
	d := New(table, 0, map[StateID]struct{}{2: {}})

	min := d.Minimize()

	for _, w := range []string{"", "a", "b", "ab", "aab", "ba"} {
		if got, want := min.Accepts([]byte(w)), d.Accepts([]byte(w)); got != want {
			t.Errorf("Accepts(%q): min=%v original=%v", w, got, want)
		}
	}
	// states 0 and 1 are equivalent (identical transitions and acceptance).
	if min.StateCount() != 2 {
		t.Errorf("expected minimized DFA to merge equivalent states, got %d states", min.StateCount())
	}
}

func TestMinimizeIdempotent(t *testing.T) {
	table := Table{
		0: {'a': 1, 'b': 2},
		1: {'a': 1, 'b': 2},
		2: {'a': 2, 'b': 2},
	}
	d := New(table, 0, map[StateID]struct{}{2: {}})

	once := d.Minimize()
	twice := once.Minimize()
	if once.StateCount() != twice.StateCount() {
		t.Errorf("minimize should be idempotent up to renaming: %d vs %d", once.StateCount(), twice.StateCount())
	}
}

func TestMinimizeEmptyAcceptingSet(t *testing.T) {
	table := Table{0: {'a': 0}}
	d := New(table, 0, nil)

	min := d.Minimize()
	if min.Accepts([]byte("aaa")) {
		t.Error("DFA with no accepting states must still accept nothing after minimize")
	}
}

func TestMinimizeEmptyNonAcceptingSet(t *testing.T) {
	table := Table{0: {'a': 0}}
	d := New(table, 0, map[StateID]struct{}{0: {}})

	min := d.Minimize()
	if !min.Accepts([]byte("aaa")) {
		t.Error("DFA where every state accepts must still accept every string after minimize")
	}
}

func TestTableStringAndGrammarString(t *testing.T) {
	d := buildABStar()
	table := d.TableString()
	if table == "" {
		t.Error("expected non-empty table string")
	}
	grammar := d.GrammarString()
	if grammar == "" {
		t.Error("expected non-empty grammar string")
	}
}
