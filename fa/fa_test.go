package fa

import "testing"

func buildGraph(edges map[StateID][]StateID) Graph {
	g := NewGraph()
	for u, vs := range edges {
		for _, v := range vs {
			g.AddEdge(u, v)
		}
	}
	return g
}

func TestReverse(t *testing.T) {
	g := buildGraph(map[StateID][]StateID{
		0: {1, 2},
		1: {2},
	})

	rev := Reverse(g)

	if _, ok := rev[1][0]; !ok {
		t.Error("expected reversed edge 1 -> 0")
	}
	if _, ok := rev[2][0]; !ok {
		t.Error("expected reversed edge 2 -> 0")
	}
	if _, ok := rev[2][1]; !ok {
		t.Error("expected reversed edge 2 -> 1")
	}
	if _, ok := rev[0]; ok {
		t.Error("state 0 is only ever a source; should not be a key in the reversed graph")
	}
}

func TestReachableIncludesSeeds(t *testing.T) {
	g := buildGraph(map[StateID][]StateID{
		0: {1},
	})

	r := Reachable(g, []StateID{5})
	if _, ok := r[5]; !ok {
		t.Error("a seed with no outgoing edges must still appear in the result")
	}
	if len(r) != 1 {
		t.Errorf("expected exactly the seed, got %v", r)
	}
}

func TestReachableTransitive(t *testing.T) {
	g := buildGraph(map[StateID][]StateID{
		0: {1},
		1: {2},
		2: {3},
	})

	r := Reachable(g, []StateID{0})
	for _, want := range []StateID{0, 1, 2, 3} {
		if _, ok := r[want]; !ok {
			t.Errorf("expected %d to be reachable", want)
		}
	}
	if len(r) != 4 {
		t.Errorf("expected 4 reachable states, got %d", len(r))
	}
}

func TestReachableCycle(t *testing.T) {
	g := buildGraph(map[StateID][]StateID{
		0: {1},
		1: {0},
	})

	r := Reachable(g, []StateID{0})
	if len(r) != 2 {
		t.Errorf("expected termination with 2 states on a cycle, got %d", len(r))
	}
}

func TestIntersect(t *testing.T) {
	a := map[StateID]struct{}{0: {}, 1: {}, 2: {}}
	b := map[StateID]struct{}{1: {}, 2: {}, 3: {}}

	got := Intersect(a, b)
	if len(got) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(got))
	}
	if _, ok := got[1]; !ok {
		t.Error("expected 1 in intersection")
	}
	if _, ok := got[2]; !ok {
		t.Error("expected 2 in intersection")
	}
}

func TestIntersectEmpty(t *testing.T) {
	a := map[StateID]struct{}{0: {}}
	b := map[StateID]struct{}{1: {}}
	if got := Intersect(a, b); len(got) != 0 {
		t.Errorf("expected empty intersection, got %v", got)
	}
}
