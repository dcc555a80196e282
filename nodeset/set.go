package nodeset

import "github.com/katalvlaran/pmgraph/graph"

type entry struct {
	gen uint32
	pos int
}

// Set is a dense set of graph.NodeDescriptor values. The zero value is
// not usable; construct one with New.
type Set struct {
	gen   uint32
	index map[int]entry
	dense []graph.NodeDescriptor
}

// New creates an empty Set. sizeHint preallocates the backing map and
// slice, mirroring a typical query's working-set size; 0 is a valid hint.
func New(sizeHint int) *Set {
	return &Set{
		gen:   1,
		index: make(map[int]entry, sizeHint),
		dense: make([]graph.NodeDescriptor, 0, sizeHint),
	}
}

// Clear empties the set in O(1), regardless of how many nodes were
// selected since the last clear.
func (s *Set) Clear() {
	s.gen++
	s.dense = s.dense[:0]
}

// Empty reports whether the set currently has no members.
func (s *Set) Empty() bool { return len(s.dense) == 0 }

// Size reports the set's current member count.
func (s *Set) Size() int { return len(s.dense) }

// IsMember reports whether u is currently selected.
func (s *Set) IsMember(u graph.NodeDescriptor) bool {
	e, ok := s.index[*u]
	return ok && e.gen == s.gen
}

// Select adds u to the set. It is a no-op if u is already a member.
func (s *Set) Select(u graph.NodeDescriptor) {
	if s.IsMember(u) {
		return
	}
	s.index[*u] = entry{gen: s.gen, pos: len(s.dense)}
	s.dense = append(s.dense, u)
}

// Members returns the set's current members. The returned slice is
// owned by Set and is invalidated by the next Select or Clear call.
func (s *Set) Members() []graph.NodeDescriptor { return s.dense }
