package cbtree

import "github.com/katalvlaran/pmgraph/bitutil"

// Node is a cursor onto a single node of a Tree, identified by its
// breadth-first index. Node values are cheap to copy; none of its
// methods allocate.
type Node[T any] struct {
	t        *Tree[T]
	bfsIndex uint32
	depth    uint32
}

// BfsIndex returns the node's one-based breadth-first index (the root is 1).
func (n Node[T]) BfsIndex() uint32 { return n.bfsIndex }

// Depth returns the node's distance from the root (the root has depth 0).
func (n Node[T]) Depth() uint32 { return n.depth }

// Height returns the node's distance from the leaves (a leaf has height 0).
func (n Node[T]) Height() uint32 { return uint32(n.t.height) - n.depth }

// HorizontalIndex returns the node's index among the other nodes on the
// same level (the leftmost node on a level has horizontal index 0).
func (n Node[T]) HorizontalIndex() uint32 { return n.bfsIndex - (1 << n.depth) }

// PoolIndex returns the node's 0-based slot in the tree's backing pool.
func (n Node[T]) PoolIndex() uint32 { return n.t.order[n.bfsIndex] }

// Value returns a pointer to the node's data, valid until the next
// IncreaseHeight/DecreaseHeight on the owning tree.
func (n Node[T]) Value() *T { return &n.t.pool[n.t.order[n.bfsIndex]] }

// IsLeaf reports whether this node is at the tree's maximum depth.
func (n Node[T]) IsLeaf() bool { return n.depth == uint32(n.t.height) }

// IsRoot reports whether this node is the tree's root.
func (n Node[T]) IsRoot() bool { return n.depth == 0 }

// IsRightChild reports whether this node is its parent's right child.
func (n Node[T]) IsRightChild() bool { return n.bfsIndex&1 == 1 }

// IsToTheLeftOf reports whether this leaf's ancestor at other's level
// lies to the left of other. It panics if n is not a leaf.
func (n Node[T]) IsToTheLeftOf(other Node[T]) bool {
	if !n.IsLeaf() {
		panic("cbtree: IsToTheLeftOf called on a non-leaf node")
	}
	return (n.bfsIndex >> other.Height()) < other.bfsIndex
}

// Left moves the cursor to this node's left child. It does not check
// whether the node is already a leaf.
func (n *Node[T]) Left() {
	n.bfsIndex <<= 1
	n.depth++
}

// Right moves the cursor to this node's right child. It does not check
// whether the node is already a leaf.
func (n *Node[T]) Right() {
	n.bfsIndex = (n.bfsIndex << 1) + 1
	n.depth++
}

// Up moves the cursor to this node's parent. It does not check whether
// the node is already the root.
func (n *Node[T]) Up() {
	n.bfsIndex >>= 1
	n.depth--
}

// SetAtBfsIndex repositions the cursor at the given one-based bfsIndex.
func (n *Node[T]) SetAtBfsIndex(bfsIndex uint32) {
	n.bfsIndex = bfsIndex
	n.depth = uint32(bitutil.FloorLog2(uint(bfsIndex)))
}

// SetAtPos repositions the cursor at the node on the given height level
// with the given horizontal index on that level.
func (n *Node[T]) SetAtPos(height, horizontalPosition uint32) {
	n.SetAtBfsIndex((uint32(1) << (uint32(n.t.height) - height)) + horizontalPosition)
}

// SetAtRoot repositions the cursor at the tree's root.
func (n *Node[T]) SetAtRoot() {
	n.bfsIndex = 1
	n.depth = 0
}
