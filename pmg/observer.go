package pmg

// nodeObserver keeps every outgoing and incoming edge's cross-reference
// to its endpoint node current as the node pool relocates entries, and
// keeps the node's own NodeDescriptor pointing at the right slot.
type nodeObserver[V, E any] struct {
	g *Graph[V, E]
}

func (o *nodeObserver[V, E]) Move(src, dst int, node nodeCell[V]) {
	if node.hasEdges() {
		for i := node.firstEdge; i != node.lastEdge; {
			e := o.g.edges.At(i)
			o.g.mutateInEdge(e.inEdge, func(k *inEdgeCell) { k.source = dst })
			next, ok := o.g.edges.NextOccupied(i)
			if !ok {
				break
			}
			i = next
		}
	}
	if node.hasInEdges() {
		for i := node.firstInEdge; i != node.lastInEdge; {
			k := o.g.inEdges.At(i)
			o.g.mutateEdge(k.edge, func(e *edgeCell[E]) { e.target = dst })
			next, ok := o.g.inEdges.NextOccupied(i)
			if !ok {
				break
			}
			i = next
		}
	}
	*node.desc = dst
}

func (o *nodeObserver[V, E]) Reset() {}

// edgeObserver keeps each in-edge record's back-pointer to its edge
// current, and, when the relocated edge was its tail node's first
// outgoing edge, fixes up that node's firstEdge/lastEdge bookkeeping.
type edgeObserver[V, E any] struct {
	g               *Graph[V, E]
	lastChangedNode int
}

func (o *edgeObserver[V, E]) Move(src, dst int, edge edgeCell[E]) {
	if src == dst {
		return
	}
	if edge.desc != nil {
		*edge.desc = dst
	}
	if edge.inEdge == noIndex {
		return
	}
	o.g.mutateInEdge(edge.inEdge, func(k *inEdgeCell) { k.edge = dst })

	u := o.g.inEdges.At(edge.inEdge).source
	un := o.g.nodes.At(u)
	if un.firstEdge == src && u != o.lastChangedNode {
		o.g.setFirstEdge(u, dst)
		o.lastChangedNode = u
	}
}

func (o *edgeObserver[V, E]) Reset() { o.lastChangedNode = noIndex }

// inEdgeObserver is the mirror image of edgeObserver for the in-edge
// pool: it keeps the matching edge's back-pointer current, and fixes up
// the head node's firstInEdge/lastInEdge bookkeeping when needed.
type inEdgeObserver[V, E any] struct {
	g               *Graph[V, E]
	lastChangedNode int
}

func (o *inEdgeObserver[V, E]) Move(src, dst int, inEdge inEdgeCell) {
	if src == dst {
		return
	}
	if inEdge.edge == noIndex {
		return
	}
	o.g.mutateEdge(inEdge.edge, func(e *edgeCell[E]) { e.inEdge = dst })

	v := o.g.edges.At(inEdge.edge).target
	vn := o.g.nodes.At(v)
	if vn.firstInEdge == src && v != o.lastChangedNode {
		o.g.setFirstInEdge(v, dst)
		o.lastChangedNode = v
	}
}

func (o *inEdgeObserver[V, E]) Reset() { o.lastChangedNode = noIndex }
