// Package fa provides the StateID type shared by the dfa, nfa, and enfa
// packages, and the state-set graph utilities used by the dfa package:
// reversing a directed graph of state ids, and computing forward
// reachability from a seed set of states.
//
// A Graph is built on demand from an automaton's transition table and
// discarded once the traversal it backs is done; it is never part of an
// automaton's persistent representation.
package fa

// StateID is an opaque, non-negative state identifier. It is unique within
// one automaton but carries no meaning across automata: conversions and
// minimization are free to reassign ids.
type StateID uint32

// Graph is a directed graph view over state ids, mapping each source state
// to the set of states it has an edge to.
type Graph map[StateID]map[StateID]struct{}

// NewGraph returns an empty graph.
func NewGraph() Graph {
	return make(Graph)
}

// AddEdge records an edge u -> v, creating u's adjacency set if needed.
func (g Graph) AddEdge(u, v StateID) {
	if g[u] == nil {
		g[u] = make(map[StateID]struct{})
	}
	g[u][v] = struct{}{}
}

// Reverse returns a new graph with every edge reversed. A vertex that only
// ever appears as a source in g need not appear as a key in the result.
func Reverse(g Graph) Graph {
	rev := NewGraph()
	for u, vs := range g {
		for v := range vs {
			if rev[v] == nil {
				rev[v] = make(map[StateID]struct{})
			}
			rev[v][u] = struct{}{}
		}
	}
	return rev
}

// Reachable performs a forward BFS over g starting from every state in seeds
// and returns every state reached, including the seeds themselves (even a
// seed with no outgoing edges is present in the result). Iteration order of
// the traversal is unspecified but the result is always the same set.
func Reachable(g Graph, seeds []StateID) map[StateID]struct{} {
	result := make(map[StateID]struct{}, len(seeds))
	queue := make([]StateID, 0, len(seeds))

	for _, s := range seeds {
		if _, ok := result[s]; !ok {
			result[s] = struct{}{}
			queue = append(queue, s)
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for v := range g[cur] {
			if _, ok := result[v]; !ok {
				result[v] = struct{}{}
				queue = append(queue, v)
			}
		}
	}

	return result
}

// Intersect returns the smaller-driven intersection of two state sets: it
// walks whichever set is smaller and keeps members present in the other,
// which is strictly less work than walking both sets regardless of which is
// smaller.
func Intersect(a, b map[StateID]struct{}) map[StateID]struct{} {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}

	res := make(map[StateID]struct{}, len(small))
	for s := range small {
		if _, ok := large[s]; ok {
			res[s] = struct{}{}
		}
	}
	return res
}
