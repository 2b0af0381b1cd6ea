// Package sparse provides a sparse set data structure for efficient membership
// testing over a small, known universe of non-negative integers.
//
// A sparse set supports O(1) insertion, removal, membership testing, and
// clearing while preserving insertion order for iteration. It is the
// visited-set structure used by the ε-closure BFS in the enfa package, where
// the universe is bounded by the automaton's largest state id.
package sparse

// SparseSet is a set of uint32 values in the range [0, capacity) that
// supports O(1) Insert/Contains/Remove/Clear.
//
// It maintains a dense array (for fast iteration in insertion order) and a
// sparse array (mapping a value to its index in dense). Membership test
// cross-checks both arrays, so stale entries left behind by Clear never
// produce a false positive.
type SparseSet struct {
	sparse []uint32
	dense  []uint32
	size   uint32
}

// NewSparseSet creates a new sparse set over [0, capacity). A capacity of
// zero defaults to 64.
func NewSparseSet(capacity uint32) *SparseSet {
	if capacity == 0 {
		capacity = 64
	}
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Capacity returns the largest value (exclusive) this set can hold without
// a Resize.
func (s *SparseSet) Capacity() uint32 {
	return uint32(len(s.sparse))
}

// Insert adds value to the set and reports whether it was newly inserted.
// Panics if value >= Capacity().
func (s *SparseSet) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
	return true
}

// Contains reports whether value is in the set.
func (s *SparseSet) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Remove removes value from the set. A no-op if value is absent.
func (s *SparseSet) Remove(value uint32) {
	if !s.Contains(value) {
		return
	}
	idx := s.sparse[value]
	last := s.dense[s.size-1]
	s.dense[idx] = last
	s.sparse[last] = idx
	s.size--
	s.dense = s.dense[:s.size]
}

// Clear empties the set in O(1).
func (s *SparseSet) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Len returns the number of elements in the set.
func (s *SparseSet) Len() int {
	return int(s.size)
}

// Size is an alias for Len, matching the naming used by callers that treat
// the set as a bounded collection rather than a sequence.
func (s *SparseSet) Size() int {
	return s.Len()
}

// IsEmpty reports whether the set has no elements.
func (s *SparseSet) IsEmpty() bool {
	return s.size == 0
}

// Values returns the elements in insertion order. The slice is valid only
// until the next mutation of s.
func (s *SparseSet) Values() []uint32 {
	return s.dense[:s.size]
}

// Iter calls f for each value in the set, in insertion order.
func (s *SparseSet) Iter(f func(uint32)) {
	for i := uint32(0); i < s.size; i++ {
		f(s.dense[i])
	}
}

// Resize changes the set's capacity. Growing preserves existing elements;
// resizing to the current capacity or smaller clears the set.
func (s *SparseSet) Resize(capacity uint32) {
	if capacity == 0 {
		capacity = 64
	}
	if capacity <= uint32(len(s.sparse)) {
		s.Clear()
		s.sparse = make([]uint32, capacity)
		return
	}
	grown := make([]uint32, capacity)
	copy(grown, s.sparse)
	s.sparse = grown
}

// Clone returns an independent copy of the set.
func (s *SparseSet) Clone() *SparseSet {
	c := &SparseSet{
		sparse: make([]uint32, len(s.sparse)),
		dense:  make([]uint32, len(s.dense)),
		size:   s.size,
	}
	copy(c.sparse, s.sparse)
	copy(c.dense, s.dense)
	return c
}

// MemoryUsage returns an approximate byte count for the set's backing
// arrays, useful for size-budget diagnostics on large automata.
func (s *SparseSet) MemoryUsage() int {
	return len(s.sparse)*4 + cap(s.dense)*4
}

// SparseSets is a pair of sparse sets over the same universe, for BFS
// traversals that need a "current frontier" and "next frontier" pair
// without reallocating per round.
type SparseSets struct {
	Set1 *SparseSet
	Set2 *SparseSet
}

// NewSparseSets creates a pair of sparse sets with the given shared capacity.
func NewSparseSets(capacity uint32) *SparseSets {
	return &SparseSets{
		Set1: NewSparseSet(capacity),
		Set2: NewSparseSet(capacity),
	}
}

// Swap exchanges Set1 and Set2, used to advance a frontier to the next
// round without copying.
func (ss *SparseSets) Swap() {
	ss.Set1, ss.Set2 = ss.Set2, ss.Set1
}

// Clear empties both sets.
func (ss *SparseSets) Clear() {
	ss.Set1.Clear()
	ss.Set2.Clear()
}

// Resize resizes both sets to the given capacity.
func (ss *SparseSets) Resize(capacity uint32) {
	ss.Set1.Resize(capacity)
	ss.Set2.Resize(capacity)
}

// MemoryUsage returns the combined approximate byte usage of both sets.
func (ss *SparseSets) MemoryUsage() int {
	return ss.Set1.MemoryUsage() + ss.Set2.MemoryUsage()
}
