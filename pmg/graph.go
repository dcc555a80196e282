package pmg

import (
	"iter"

	"github.com/katalvlaran/pmgraph/graph"
	"github.com/katalvlaran/pmgraph/pma"
)

// neverLess backs the three pma.Array instances a Graph is built from.
// None of them are ever searched by value — nodes and edges are
// addressed exclusively by pool index and descriptor — so the
// comparator required by pma.New is never actually invoked.
func neverLess[T any](a, b T) bool {
	panic("pmg: internal pools are positional, not value-ordered")
}

// Graph is a Packed Memory Graph over node payloads V and edge payloads
// E. It implements graph.Surface[V, E].
type Graph[V, E any] struct {
	nodes   *pma.Array[nodeCell[V]]
	edges   *pma.Array[edgeCell[E]]
	inEdges *pma.Array[inEdgeCell]

	lastPushedNode, currentPushedNode int
}

var _ graph.Surface[int, int] = (*Graph[int, int])(nil)

// New creates an empty Packed Memory Graph.
func New[V, E any]() *Graph[V, E] {
	g := &Graph[V, E]{
		lastPushedNode:    noIndex,
		currentPushedNode: noIndex,
	}

	emptyNode := nodeCell[V]{firstEdge: noIndex, lastEdge: noIndex, firstInEdge: noIndex, lastInEdge: noIndex}
	emptyEdge := edgeCell[E]{target: noIndex, inEdge: noIndex}
	emptyInEdge := inEdgeCell{source: noIndex, edge: noIndex}

	g.nodes = pma.New[nodeCell[V]](neverLess[nodeCell[V]], emptyNode)
	g.edges = pma.New[edgeCell[E]](neverLess[edgeCell[E]], emptyEdge)
	g.inEdges = pma.New[inEdgeCell](neverLess[inEdgeCell], emptyInEdge)

	g.nodes.RegisterObserver(&nodeObserver[V, E]{g: g})
	g.edges.RegisterObserver(&edgeObserver[V, E]{g: g, lastChangedNode: noIndex})
	g.inEdges.RegisterObserver(&inEdgeObserver[V, E]{g: g, lastChangedNode: noIndex})
	return g
}

func (g *Graph[V, E]) mutateNode(pos int, fn func(*nodeCell[V])) {
	nd := g.nodes.At(pos)
	fn(&nd)
	g.nodes.Set(pos, nd)
}

func (g *Graph[V, E]) mutateEdge(pos int, fn func(*edgeCell[E])) {
	e := g.edges.At(pos)
	fn(&e)
	g.edges.Set(pos, e)
}

func (g *Graph[V, E]) mutateInEdge(pos int, fn func(*inEdgeCell)) {
	k := g.inEdges.At(pos)
	fn(&k)
	g.inEdges.Set(pos, k)
}

// findNextNodeWithEdges walks occupied node-pool slots after pos via
// NextOccupied, which skips whole empty buckets in O(1) instead of
// testing every raw index, so this costs O(occupied nodes scanned), not
// O(g.nodes.Cap()).
func (g *Graph[V, E]) findNextNodeWithEdges(pos int) (int, bool) {
	for i, ok := g.nodes.NextOccupied(pos); ok; i, ok = g.nodes.NextOccupied(i) {
		if g.nodes.At(i).hasEdges() {
			return i, true
		}
	}
	return -1, false
}

func (g *Graph[V, E]) findPreviousNodeWithEdges(pos int) (int, bool) {
	for i, ok := g.nodes.PrevOccupied(pos); ok; i, ok = g.nodes.PrevOccupied(i) {
		if g.nodes.At(i).hasEdges() {
			return i, true
		}
	}
	return -1, false
}

func (g *Graph[V, E]) findNextNodeWithInEdges(pos int) (int, bool) {
	for i, ok := g.nodes.NextOccupied(pos); ok; i, ok = g.nodes.NextOccupied(i) {
		if g.nodes.At(i).hasInEdges() {
			return i, true
		}
	}
	return -1, false
}

func (g *Graph[V, E]) findPreviousNodeWithInEdges(pos int) (int, bool) {
	for i, ok := g.nodes.PrevOccupied(pos); ok; i, ok = g.nodes.PrevOccupied(i) {
		if g.nodes.At(i).hasInEdges() {
			return i, true
		}
	}
	return -1, false
}

// outEdgeIndices returns every edge-pool index in pos's forward star,
// in order.
func (g *Graph[V, E]) outEdgeIndices(pos int) []int {
	nd := g.nodes.At(pos)
	if !nd.hasEdges() {
		return nil
	}
	var out []int
	for i := nd.firstEdge; i != nd.lastEdge; {
		out = append(out, i)
		next, ok := g.edges.NextOccupied(i)
		if !ok {
			break
		}
		i = next
	}
	return out
}

// inEdgeIndices returns every in-edge-pool index in pos's backward
// star, in order.
func (g *Graph[V, E]) inEdgeIndices(pos int) []int {
	nd := g.nodes.At(pos)
	if !nd.hasInEdges() {
		return nil
	}
	var out []int
	for i := nd.firstInEdge; i != nd.lastInEdge; {
		out = append(out, i)
		next, ok := g.inEdges.NextOccupied(i)
		if !ok {
			break
		}
		i = next
	}
	return out
}

// setFirstEdge rewrites pos's firstEdge and keeps the previous node
// that owns edges (in node-pool order) pointing its own lastEdge bound
// at the new location.
func (g *Graph[V, E]) setFirstEdge(pos, addr int) {
	g.mutateNode(pos, func(n *nodeCell[V]) { n.firstEdge = addr })

	if addr != noIndex {
		if prev, ok := g.findPreviousNodeWithEdges(pos); ok {
			g.mutateNode(prev, func(n *nodeCell[V]) { n.lastEdge = addr })
		}
		return
	}

	g.mutateNode(pos, func(n *nodeCell[V]) { n.lastEdge = noIndex })
	prev, ok := g.findPreviousNodeWithEdges(pos)
	if !ok {
		return
	}
	if next, ok := g.findNextNodeWithEdges(prev); ok {
		bound := g.nodes.At(next).firstEdge
		g.mutateNode(prev, func(n *nodeCell[V]) { n.lastEdge = bound })
	} else {
		g.mutateNode(prev, func(n *nodeCell[V]) { n.lastEdge = noIndex })
	}
}

// setFirstInEdge is setFirstEdge's mirror image over the in-edge pool.
func (g *Graph[V, E]) setFirstInEdge(pos, addr int) {
	g.mutateNode(pos, func(n *nodeCell[V]) { n.firstInEdge = addr })

	if addr != noIndex {
		if prev, ok := g.findPreviousNodeWithInEdges(pos); ok {
			g.mutateNode(prev, func(n *nodeCell[V]) { n.lastInEdge = addr })
		}
		return
	}

	g.mutateNode(pos, func(n *nodeCell[V]) { n.lastInEdge = noIndex })
	prev, ok := g.findPreviousNodeWithInEdges(pos)
	if !ok {
		return
	}
	if next, ok := g.findNextNodeWithInEdges(prev); ok {
		bound := g.nodes.At(next).firstInEdge
		g.mutateNode(prev, func(n *nodeCell[V]) { n.lastInEdge = bound })
	} else {
		g.mutateNode(prev, func(n *nodeCell[V]) { n.lastInEdge = noIndex })
	}
}

// InsertNode adds a new node holding v, placed wherever the node pool's
// density tree has the most slack to absorb it.
func (g *Graph[V, E]) InsertNode(v V) graph.NodeDescriptor {
	desc := new(int)
	cell := nodeCell[V]{desc: desc, firstEdge: noIndex, lastEdge: noIndex, firstInEdge: noIndex, lastInEdge: noIndex, value: v}
	pos := g.nodes.InsertOptimal(cell)
	*desc = pos
	g.lastPushedNode, g.currentPushedNode = noIndex, noIndex
	return desc
}

// InsertNodeBefore adds a new node holding v, immediately before before
// in node-pool order.
func (g *Graph[V, E]) InsertNodeBefore(before graph.NodeDescriptor, v V) graph.NodeDescriptor {
	desc := new(int)
	cell := nodeCell[V]{desc: desc, firstEdge: noIndex, lastEdge: noIndex, firstInEdge: noIndex, lastInEdge: noIndex, value: v}
	pos := g.nodes.InsertBeforeFunc(func() int { return *before }, cell)
	*desc = pos
	g.lastPushedNode, g.currentPushedNode = noIndex, noIndex
	return desc
}

// EraseNode removes n along with every edge incident to it.
func (g *Graph[V, E]) EraseNode(n graph.NodeDescriptor) {
	pos := *n
	var incident []graph.EdgeDescriptor
	for _, i := range g.outEdgeIndices(pos) {
		incident = append(incident, g.edges.At(i).desc)
	}
	for _, i := range g.inEdgeIndices(pos) {
		incident = append(incident, g.edges.At(g.inEdges.At(i).edge).desc)
	}
	for _, ed := range incident {
		g.EraseEdge(ed)
	}
	g.nodes.Erase(*n)
	*n = noIndex
}

// HasNode reports whether n refers to a node currently in the graph.
func (g *Graph[V, E]) HasNode(n graph.NodeDescriptor) bool {
	return n != nil && *n >= 0 && *n < g.nodes.Cap() && g.nodes.IsOccupied(*n)
}

// HasEdge reports whether ed refers to an edge currently in the graph.
func (g *Graph[V, E]) HasEdge(ed graph.EdgeDescriptor) bool {
	return ed != nil && *ed >= 0 && *ed < g.edges.Cap() && g.edges.IsOccupied(*ed)
}

// InsertEdge adds a directed edge u->v, positioned so every node's
// forward/backward star stays contiguous in node-pool order.
func (g *Graph[V, E]) InsertEdge(u, v graph.NodeDescriptor, value E) graph.EdgeDescriptor {
	uPos, vPos := *u, *v
	if uPos == vPos {
		panic("pmg: self-loops are not supported")
	}

	desc := new(int)
	newEdge := edgeCell[E]{desc: desc, target: vPos, inEdge: noIndex, value: value}

	// When uPos already owns edges, its own lastEdge field already holds
	// exactly the bound findNextNodeWithEdges(uPos) would recompute (the
	// two are kept equal by setFirstEdge and the edge-pool observer
	// across every relocation), so the anchor is an O(1) field read
	// instead of a pool scan. Only a node's first edge ever needs the
	// scan.
	hadEdges := g.nodes.At(uPos).hasEdges()
	var ePos int
	switch {
	case hadEdges && g.nodes.At(uPos).lastEdge != noIndex:
		ePos = g.edges.InsertBeforeFunc(func() int { return g.nodes.At(uPos).lastEdge }, newEdge)
	case hadEdges:
		ePos = g.edges.PushBack(newEdge)
	default:
		if w, ok := g.findNextNodeWithEdges(uPos); ok {
			ePos = g.edges.InsertBeforeFunc(func() int { return g.nodes.At(w).firstEdge }, newEdge)
		} else {
			ePos = g.edges.PushBack(newEdge)
		}
	}
	*desc = ePos

	hadInEdges := g.nodes.At(vPos).hasInEdges()
	newInEdge := inEdgeCell{source: uPos, edge: ePos}
	var kPos int
	switch {
	case hadInEdges && g.nodes.At(vPos).lastInEdge != noIndex:
		kPos = g.inEdges.InsertBeforeFunc(func() int { return g.nodes.At(vPos).lastInEdge }, newInEdge)
	case hadInEdges:
		kPos = g.inEdges.PushBack(newInEdge)
	default:
		if w, ok := g.findNextNodeWithInEdges(vPos); ok {
			kPos = g.inEdges.InsertBeforeFunc(func() int { return g.nodes.At(w).firstInEdge }, newInEdge)
		} else {
			kPos = g.inEdges.PushBack(newInEdge)
		}
	}

	g.mutateEdge(ePos, func(e *edgeCell[E]) { e.inEdge = kPos })
	g.mutateInEdge(kPos, func(k *inEdgeCell) { k.edge = ePos })

	g.mutateNode(uPos, func(n *nodeCell[V]) { n.outDeg++ })
	if !hadEdges {
		g.setFirstEdge(uPos, ePos)
		if w, ok := g.findNextNodeWithEdges(uPos); ok {
			bound := g.nodes.At(w).firstEdge
			g.mutateNode(uPos, func(n *nodeCell[V]) { n.lastEdge = bound })
		}
	}

	g.mutateNode(vPos, func(n *nodeCell[V]) { n.inDeg++ })
	if !hadInEdges {
		g.setFirstInEdge(vPos, kPos)
		if w, ok := g.findNextNodeWithInEdges(vPos); ok {
			bound := g.nodes.At(w).firstInEdge
			g.mutateNode(vPos, func(n *nodeCell[V]) { n.lastInEdge = bound })
		}
	}

	return desc
}

// PushEdge appends a directed edge u->v to the end of the edge pool,
// amortized O(1) as long as callers group pushes by a shared tail node
// (mirroring the access pattern most graph loaders actually produce).
func (g *Graph[V, E]) PushEdge(u, v graph.NodeDescriptor, value E) graph.EdgeDescriptor {
	uPos, vPos := *u, *v
	if uPos == vPos {
		panic("pmg: self-loops are not supported")
	}
	if uPos != g.currentPushedNode {
		g.lastPushedNode = g.currentPushedNode
		g.currentPushedNode = uPos
	}

	desc := new(int)
	newEdge := edgeCell[E]{desc: desc, target: vPos, inEdge: noIndex, value: value}
	ePos := g.edges.PushBack(newEdge)
	*desc = ePos

	// vHadInEdges lets the anchor below reuse vPos's own lastInEdge field
	// (kept current by setFirstInEdge and the in-edge pool observer) in
	// O(1) instead of rescanning via findNextNodeWithInEdges; only a
	// node's first in-edge ever needs the scan.
	vHadInEdges := g.nodes.At(vPos).hasInEdges()
	newInEdge := inEdgeCell{source: uPos, edge: ePos}
	var kPos int
	switch {
	case vHadInEdges && g.nodes.At(vPos).lastInEdge != noIndex:
		kPos = g.inEdges.InsertBeforeFunc(func() int { return g.nodes.At(vPos).lastInEdge }, newInEdge)
	case vHadInEdges:
		kPos = g.inEdges.PushBack(newInEdge)
	default:
		if w, ok := g.findNextNodeWithInEdges(vPos); ok {
			kPos = g.inEdges.InsertBeforeFunc(func() int { return g.nodes.At(w).firstInEdge }, newInEdge)
		} else {
			kPos = g.inEdges.PushBack(newInEdge)
		}
	}

	g.mutateEdge(ePos, func(e *edgeCell[E]) { e.inEdge = kPos })
	g.mutateInEdge(kPos, func(k *inEdgeCell) { k.edge = ePos })

	uHadEdges := g.nodes.At(uPos).hasEdges()
	g.mutateNode(uPos, func(n *nodeCell[V]) { n.outDeg++ })
	if !uHadEdges {
		g.mutateNode(uPos, func(n *nodeCell[V]) { n.firstEdge = ePos })
		if g.lastPushedNode != noIndex && g.lastPushedNode != uPos {
			g.mutateNode(g.lastPushedNode, func(n *nodeCell[V]) { n.lastEdge = ePos })
		}
	}

	g.mutateNode(vPos, func(n *nodeCell[V]) { n.inDeg++ })
	if !vHadInEdges {
		g.mutateNode(vPos, func(n *nodeCell[V]) { n.firstInEdge = kPos })
		if prev, ok := g.findPreviousNodeWithInEdges(vPos); ok {
			g.mutateNode(prev, func(n *nodeCell[V]) { n.lastInEdge = kPos })
		}
		if next, ok := g.findNextNodeWithInEdges(vPos); ok {
			bound := g.nodes.At(next).firstInEdge
			g.mutateNode(vPos, func(n *nodeCell[V]) { n.lastInEdge = bound })
		}
	}

	return desc
}

// EraseEdge removes ed.
func (g *Graph[V, E]) EraseEdge(ed graph.EdgeDescriptor) {
	ePos := *ed
	e := g.edges.At(ePos)
	kPos := e.inEdge
	k := g.inEdges.At(kPos)
	uPos, vPos := k.source, e.target

	if g.nodes.At(uPos).firstEdge == ePos {
		if next, ok := g.edges.NextOccupied(ePos); ok && next != g.nodes.At(uPos).lastEdge {
			g.setFirstEdge(uPos, next)
		} else {
			g.setFirstEdge(uPos, noIndex)
		}
	}
	if g.nodes.At(vPos).firstInEdge == kPos {
		if next, ok := g.inEdges.NextOccupied(kPos); ok && next != g.nodes.At(vPos).lastInEdge {
			g.setFirstInEdge(vPos, next)
		} else {
			g.setFirstInEdge(vPos, noIndex)
		}
	}

	g.mutateNode(uPos, func(n *nodeCell[V]) { n.outDeg-- })
	g.mutateNode(vPos, func(n *nodeCell[V]) { n.inDeg-- })

	g.edges.Erase(ePos)
	g.inEdges.Erase(kPos)
}

// Source returns an edge's tail node.
func (g *Graph[V, E]) Source(ed graph.EdgeDescriptor) graph.NodeDescriptor {
	e := g.edges.At(*ed)
	k := g.inEdges.At(e.inEdge)
	return g.nodes.At(k.source).desc
}

// Target returns an edge's head node.
func (g *Graph[V, E]) Target(ed graph.EdgeDescriptor) graph.NodeDescriptor {
	return g.nodes.At(g.edges.At(*ed).target).desc
}

// NodeValue returns a node's payload.
func (g *Graph[V, E]) NodeValue(n graph.NodeDescriptor) V { return g.nodes.At(*n).value }

// SetNodeValue overwrites a node's payload.
func (g *Graph[V, E]) SetNodeValue(n graph.NodeDescriptor, v V) {
	g.mutateNode(*n, func(nd *nodeCell[V]) { nd.value = v })
}

// EdgeValue returns an edge's payload.
func (g *Graph[V, E]) EdgeValue(ed graph.EdgeDescriptor) E { return g.edges.At(*ed).value }

// SetEdgeValue overwrites an edge's payload.
func (g *Graph[V, E]) SetEdgeValue(ed graph.EdgeDescriptor, v E) {
	g.mutateEdge(*ed, func(e *edgeCell[E]) { e.value = v })
}

// Nodes iterates every node currently in the graph, in node-pool order.
func (g *Graph[V, E]) Nodes() iter.Seq[graph.NodeDescriptor] {
	return func(yield func(graph.NodeDescriptor) bool) {
		g.nodes.ForEach(func(_ int, v nodeCell[V]) bool {
			return yield(v.desc)
		})
	}
}

// OutEdges iterates every edge leaving n, in forward-star order.
func (g *Graph[V, E]) OutEdges(n graph.NodeDescriptor) iter.Seq[graph.EdgeDescriptor] {
	return func(yield func(graph.EdgeDescriptor) bool) {
		for _, i := range g.outEdgeIndices(*n) {
			if !yield(g.edges.At(i).desc) {
				return
			}
		}
	}
}

// InEdges iterates every edge entering n.
func (g *Graph[V, E]) InEdges(n graph.NodeDescriptor) iter.Seq[graph.EdgeDescriptor] {
	return func(yield func(graph.EdgeDescriptor) bool) {
		for _, i := range g.inEdgeIndices(*n) {
			k := g.inEdges.At(i)
			if !yield(g.edges.At(k.edge).desc) {
				return
			}
		}
	}
}

// OutDegree, InDegree, and Degree are O(1): each node carries a running
// count updated by InsertEdge/PushEdge/EraseEdge.
func (g *Graph[V, E]) OutDegree(n graph.NodeDescriptor) int { return g.nodes.At(*n).outDeg }
func (g *Graph[V, E]) InDegree(n graph.NodeDescriptor) int  { return g.nodes.At(*n).inDeg }
func (g *Graph[V, E]) Degree(n graph.NodeDescriptor) int {
	nd := g.nodes.At(*n)
	return nd.outDeg + nd.inDeg
}

// NumNodes reports the graph's current node count.
func (g *Graph[V, E]) NumNodes() int { return g.nodes.Len() }

// NumEdges reports the graph's current edge count.
func (g *Graph[V, E]) NumEdges() int { return g.edges.Len() }

// Clear removes every node and edge.
func (g *Graph[V, E]) Clear() {
	g.nodes.Clear()
	g.edges.Clear()
	g.inEdges.Clear()
	g.lastPushedNode, g.currentPushedNode = noIndex, noIndex
}

// Compress repacks all three backing pools as densely as their density
// bounds allow.
func (g *Graph[V, E]) Compress() {
	g.nodes.Compress()
	g.edges.Compress()
	g.inEdges.Compress()
}

// Reserve hints at the eventual size of the graph.
func (g *Graph[V, E]) Reserve(numNodes, numEdges int) {
	g.nodes.Reserve(numNodes)
	g.edges.Reserve(numEdges)
	g.inEdges.Reserve(numEdges)
}

// ChooseNode returns an arbitrary live node, or ok=false if the graph
// has none.
func (g *Graph[V, E]) ChooseNode() (graph.NodeDescriptor, bool) {
	v, _, ok := g.nodes.ChooseCell()
	if !ok {
		return nil, false
	}
	return v.desc, true
}
