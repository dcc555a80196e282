// Package cbtree implements a generic complete binary tree with a
// pluggable physical layout.
//
// A Tree of height h has exactly 2^(h+1)-1 nodes, addressed
// by a one-based breadth-first index (the root is bfsIndex 1; node i's
// children are 2i and 2i+1). The tree does not grow or shrink node-by-node:
// IncreaseHeight and DecreaseHeight reallocate the whole backing pool and
// copy every node across in a single depth-first pass, the same bulk
// operation pqueue and pma use when their own capacity crosses a
// power-of-two boundary.
//
// Two layouts are provided: HeapLayout, the ordinary array-backed binary
// heap layout, and VEBLayout, a recursive van Emde Boas split that
// improves cache locality for large trees at the cost of a slower
// parent/child step. pqueue defaults to HeapLayout; pma's internal
// density tree defaults to VEBLayout, mirroring the layout choices made
// by the structures this package was modeled on.
//
// Complexity:
//
//	– Left/Right/Up, IsLeaf, IsRightChild, Depth, Height: O(1) for
//	  HeapLayout; O(log height) for VEBLayout's child-step arithmetic
//	  (O(1) here, since this rewrite precomputes a full bfsIndex→pool
//	  table rather than deriving each step analytically).
//	– IncreaseHeight / DecreaseHeight: O(n) where n is the new node count.
package cbtree
