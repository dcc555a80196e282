package pma

import (
	"github.com/katalvlaran/pmgraph/bitutil"
	"github.com/katalvlaran/pmgraph/cbtree"
)

// pmaTreeData is the payload of one density-tree node: how many elements
// live in the subtree rooted here, and how many of those live in its
// left child (the "offset" used to route a virtual element index to a
// pool slot without storing per-node counts twice).
type pmaTreeData struct {
	cardinality    uint32
	offsetElements uint32
}

// densityTree tracks, for every node of an implicit complete binary tree
// over the PMA's buckets, how full that subtree is, and the density
// bounds a subtree of a given height must stay within before a
// rearrangement is required. It is a direct port of the density
// bookkeeping structure used by the array this package implements.
type densityTree struct {
	tree       *cbtree.Tree[pmaTreeData]
	leafSize   uint32
	maxDensity []float64 // indexed by node height (0 = leaf)
	minDensity []float64
}

// stream receives the bucket-sized runs of values a rearrangement lays
// down, in left-to-right order over the range being rearranged.
type stream interface {
	setAt(writehead uint32)
	writeOut(n uint32)
	emptyOut(n uint32)
}

func newDensityTree(treeHeight uint, leafSize uint32, cardinality uint32, minEmptiness, maxFullness float64) *densityTree {
	d := &densityTree{}
	d.reset(treeHeight, leafSize, cardinality, minEmptiness, maxFullness)
	return d
}

func (d *densityTree) reset(treeHeight uint, leafSize uint32, cardinality uint32, minEmptiness, maxFullness float64) {
	d.tree = cbtree.New[pmaTreeData](treeHeight, pmaTreeData{}, cbtree.VEBLayout{})
	d.leafSize = leafSize
	root := d.tree.Root()
	root.Value().cardinality = cardinality

	d.maxDensity = make([]float64, treeHeight+1)
	d.minDensity = make([]float64, treeHeight+1)
	for h := uint(0); h < treeHeight; h++ {
		d.maxDensity[h] = maxFullness + (0.9-maxFullness)*float64(h)/float64(treeHeight)
		d.minDensity[h] = minEmptiness - (minEmptiness-0.1)*float64(h)/float64(treeHeight)
	}
	d.maxDensity[treeHeight] = 0.9
	d.minDensity[treeHeight] = 0.1
}

func (d *densityTree) root() cbtree.Node[pmaTreeData] { return d.tree.Root() }

func (d *densityTree) capacity(u cbtree.Node[pmaTreeData]) uint32 {
	return d.leafSize << u.Height()
}

func (d *densityTree) affordsElementInsertionAt(u cbtree.Node[pmaTreeData]) bool {
	v := u.Value()
	return float64(v.cardinality+1) <= d.maxDensity[u.Height()]*float64(d.capacity(u))
}

func (d *densityTree) affordsElementErasureAt(u cbtree.Node[pmaTreeData]) bool {
	v := u.Value()
	if v.cardinality == 0 {
		return false
	}
	return float64(v.cardinality-1) >= d.minDensity[u.Height()]*float64(d.capacity(u))
}

func (d *densityTree) affordsInsertion() bool { return d.affordsElementInsertionAt(d.root()) }
func (d *densityTree) affordsErasure() bool   { return d.affordsElementErasureAt(d.root()) }

func (d *densityTree) increaseCardinality(u cbtree.Node[pmaTreeData]) {
	changedParentOffset := false
	for !u.IsRoot() {
		u.Value().cardinality++
		if changedParentOffset {
			u.Value().offsetElements++
		}
		changedParentOffset = !u.IsRightChild()
		u.Up()
	}
	u.Value().cardinality++
	if changedParentOffset {
		u.Value().offsetElements++
	}
}

func (d *densityTree) decreaseCardinality(u cbtree.Node[pmaTreeData]) {
	changedParentOffset := false
	for !u.IsRoot() {
		u.Value().cardinality--
		if changedParentOffset {
			u.Value().offsetElements--
		}
		changedParentOffset = !u.IsRightChild()
		u.Up()
	}
	u.Value().cardinality--
	if changedParentOffset {
		u.Value().offsetElements--
	}
}

func (d *densityTree) findEmptiestNode() cbtree.Node[pmaTreeData] {
	u := d.root()
	for !u.IsLeaf() {
		v := u.Value()
		if v.offsetElements <= v.cardinality>>1 {
			u.Left()
		} else {
			u.Right()
		}
	}
	return u
}

func (d *densityTree) findNodeContainingElement(elementIndex uint32) cbtree.Node[pmaTreeData] {
	u := d.root()
	var aggregateOffset uint32
	for !u.IsLeaf() {
		v := u.Value()
		if elementIndex < aggregateOffset+v.offsetElements {
			u.Left()
		} else {
			aggregateOffset += v.offsetElements
			u.Right()
		}
	}
	return u
}

// findIndexContainingElement is findNodeContainingElement followed by
// the step into the leaf: it returns the pool index of the live element
// with the given rank.
func (d *densityTree) findIndexContainingElement(elementIndex uint32) uint32 {
	u := d.root()
	var aggregateOffset uint32
	for !u.IsLeaf() {
		v := u.Value()
		if elementIndex < aggregateOffset+v.offsetElements {
			u.Left()
		} else {
			aggregateOffset += v.offsetElements
			u.Right()
		}
	}
	return d.getIndexUnderNode(u) + elementIndex - aggregateOffset
}

func (d *densityTree) getIndexUnderNode(u cbtree.Node[pmaTreeData]) uint32 {
	return d.capacity(u) * u.HorizontalIndex()
}

func (d *densityTree) getNodeOverIndex(index uint32) cbtree.Node[pmaTreeData] {
	u := d.root()
	u.SetAtPos(0, index/d.leafSize)
	return u
}

func (d *densityTree) getParentForErasure(u cbtree.Node[pmaTreeData]) cbtree.Node[pmaTreeData] {
	for !u.IsRoot() && !d.affordsElementErasureAt(u) {
		u.Up()
	}
	return u
}

func (d *densityTree) getParentForInsertion(u cbtree.Node[pmaTreeData]) cbtree.Node[pmaTreeData] {
	for !d.affordsElementInsertionAt(u) {
		u.Up()
	}
	return u
}

func (d *densityTree) getRange(u cbtree.Node[pmaTreeData]) (lo, hi uint32) {
	lo = d.capacity(u) * u.HorizontalIndex()
	return lo, lo + d.capacity(u)
}

// rearrangeOver redistributes the cardinality of the subtree rooted at
// u evenly across its leaves and streams the actual values out through
// stream, in left to right order. When sparse is non-nil, the subtree
// containing sparse is biased to receive the extra (odd) element at
// every split, matching the original's sparse-node-aware variant used
// right after a single insertion creates an overflow.
func (d *densityTree) rearrangeOver(u cbtree.Node[pmaTreeData], sparse *cbtree.Node[pmaTreeData], st stream) {
	st.setAt(u.HorizontalIndex() * d.capacity(u))
	type frame struct{ node cbtree.Node[pmaTreeData] }
	stack := []frame{{u}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := f.node
		if !n.IsLeaf() {
			card := n.Value().cardinality
			remainder := bitutil.ModulusPow2(uint(card), 2)
			base := card >> 1

			right := n
			right.Right()
			var leftCard uint32
			if sparse != nil && sparse.IsToTheLeftOf(right) {
				right.Value().cardinality = base + uint32(remainder)
				leftCard = base
			} else {
				right.Value().cardinality = base
				leftCard = base + uint32(remainder)
			}
			stack = append(stack, frame{right})

			right.Up()
			right.Value().offsetElements = leftCard

			left := right
			left.Left()
			left.Value().cardinality = leftCard
			stack = append(stack, frame{left})
		} else {
			n.Value().offsetElements = 0
			if n.Value().cardinality > 0 {
				st.writeOut(n.Value().cardinality)
			}
			st.emptyOut(d.capacity(n) - n.Value().cardinality)
		}
	}
}

// compressOver is rearrangeOver's even split, used when redistributing
// after a bulk copy (Reserve) where no single element is "sparse".
func (d *densityTree) compressOver(u cbtree.Node[pmaTreeData], st stream) {
	d.rearrangeOver(u, nil, st)
}
