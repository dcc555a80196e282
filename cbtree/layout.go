package cbtree

// Layout maps the breadth-first index space of a complete binary tree
// (root = 1, a node's children are 2*i and 2*i+1) onto a linear pool of
// a given height. Two layouts ship with this package: HeapLayout, the
// direct bfsIndex-1 mapping, and VEBLayout, a recursive van Emde Boas
// split that keeps each root-to-leaf path within a small number of
// cache lines for large trees.
type Layout interface {
	// Build returns order such that order[bfsIndex] is the 0-based pool
	// slot for the node with the given 1-based bfsIndex, for a tree of
	// the given height. order has length numNodes(height)+1; order[0]
	// is unused.
	Build(height uint) []uint32
}

func numNodes(height uint) uint32 {
	return uint32(1<<(height+1)) - 1
}

// HeapLayout is the textbook array-backed binary heap layout: the node
// with bfsIndex i lives at pool slot i-1. Parent/child pool slots differ
// by a small constant offset only within a single level.
type HeapLayout struct{}

func (HeapLayout) Build(height uint) []uint32 {
	n := numNodes(height)
	order := make([]uint32, n+1)
	for i := uint32(1); i <= n; i++ {
		order[i] = i - 1
	}
	return order
}

// VEBLayout lays the tree out so that it recursively splits at the
// middle level: the top half (from the root down to height/2) is stored
// contiguously, followed by the bottom halves of each of its leaves,
// each laid out the same way. This keeps any root-to-leaf traversal
// touching O(log(block size)) cache lines instead of O(height), the
// same cache-locality goal as the original implementation's
// ExplicitVebStorage scheme.
type VEBLayout struct{}

func (VEBLayout) Build(height uint) []uint32 {
	n := numNodes(height)
	order := make([]uint32, n+1)
	var next uint32
	var place func(rootBfs uint32, h uint)
	place = func(rootBfs uint32, h uint) {
		if h == 0 {
			order[rootBfs] = next
			next++
			return
		}
		topH := h / 2
		bottomH := h - topH - 1
		place(rootBfs, topH)
		numBottom := uint32(1) << (topH + 1)
		base := rootBfs << (topH + 1)
		for i := uint32(0); i < numBottom; i++ {
			place(base+i, bottomH)
		}
	}
	place(1, height)
	return order
}
