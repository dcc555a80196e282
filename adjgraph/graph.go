package adjgraph

import (
	"iter"

	"github.com/katalvlaran/pmgraph/graph"
)

// InsertNode adds a new node holding v at the end of iteration order.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) InsertNode(v V) graph.NodeDescriptor {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	id := g.nextNodeID
	g.nextNodeID++
	desc := new(int)
	*desc = id
	g.nodes[id] = &nodeEntry[V]{desc: desc, value: v}
	g.order = append(g.order, id)
	return desc
}

// InsertNodeBefore adds a new node holding v immediately before before in
// iteration order. Complexity: O(n) to shift the order slice.
func (g *Graph[V, E]) InsertNodeBefore(before graph.NodeDescriptor, v V) graph.NodeDescriptor {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	id := g.nextNodeID
	g.nextNodeID++
	desc := new(int)
	*desc = id
	g.nodes[id] = &nodeEntry[V]{desc: desc, value: v}

	pos := len(g.order)
	if before != nil {
		for i, x := range g.order {
			if x == *before {
				pos = i
				break
			}
		}
	}
	g.order = append(g.order, 0)
	copy(g.order[pos+1:], g.order[pos:])
	g.order[pos] = id
	return desc
}

// EraseNode removes n along with every edge incident to it.
// Complexity: O(deg(n)) for the edges, plus O(n) to drop n from the
// node order.
func (g *Graph[V, E]) EraseNode(n graph.NodeDescriptor) {
	nd := g.nodes[*n]
	for _, id := range append([]int(nil), nd.out...) {
		g.EraseEdge(g.edges[id].desc)
	}
	for _, id := range append([]int(nil), nd.in...) {
		g.EraseEdge(g.edges[id].desc)
	}

	g.muNodes.Lock()
	delete(g.nodes, *n)
	g.order = removeID(g.order, *n)
	g.muNodes.Unlock()
}

// HasNode reports whether n refers to a node currently in the graph.
func (g *Graph[V, E]) HasNode(n graph.NodeDescriptor) bool {
	if n == nil {
		return false
	}
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	_, ok := g.nodes[*n]
	return ok
}

// HasEdge reports whether ed refers to an edge currently in the graph.
func (g *Graph[V, E]) HasEdge(ed graph.EdgeDescriptor) bool {
	if ed == nil {
		return false
	}
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	_, ok := g.edges[*ed]
	return ok
}

// InsertEdge adds a directed edge u->v. Unlike pmg, self-loops (u == v)
// and parallel edges are both permitted, since neither a forward-star
// contiguity invariant nor a density tree constrains this representation.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) InsertEdge(u, v graph.NodeDescriptor, value E) graph.EdgeDescriptor {
	g.muEdges.Lock()
	id := g.nextEdgeID
	g.nextEdgeID++
	desc := new(int)
	*desc = id
	g.edges[id] = &edgeEntry[E]{desc: desc, source: *u, target: *v, value: value}
	g.muEdges.Unlock()

	g.muNodes.Lock()
	g.nodes[*u].out = append(g.nodes[*u].out, id)
	g.nodes[*v].in = append(g.nodes[*v].in, id)
	g.muNodes.Unlock()
	return desc
}

// PushEdge is equivalent to InsertEdge here: without pmg's forward-star
// contiguity invariant, there is no separate amortized-append fast path.
func (g *Graph[V, E]) PushEdge(u, v graph.NodeDescriptor, value E) graph.EdgeDescriptor {
	return g.InsertEdge(u, v, value)
}

// EraseEdge removes ed. Complexity: O(deg(source) + deg(target)).
func (g *Graph[V, E]) EraseEdge(ed graph.EdgeDescriptor) {
	g.muEdges.Lock()
	e, ok := g.edges[*ed]
	if !ok {
		g.muEdges.Unlock()
		return
	}
	delete(g.edges, *ed)
	g.muEdges.Unlock()

	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	if src, ok := g.nodes[e.source]; ok {
		src.out = removeID(src.out, *ed)
	}
	if tgt, ok := g.nodes[e.target]; ok {
		tgt.in = removeID(tgt.in, *ed)
	}
}

// Source returns an edge's tail node.
func (g *Graph[V, E]) Source(ed graph.EdgeDescriptor) graph.NodeDescriptor {
	return g.nodes[g.edges[*ed].source].desc
}

// Target returns an edge's head node.
func (g *Graph[V, E]) Target(ed graph.EdgeDescriptor) graph.NodeDescriptor {
	return g.nodes[g.edges[*ed].target].desc
}

// NodeValue returns a node's payload.
func (g *Graph[V, E]) NodeValue(n graph.NodeDescriptor) V { return g.nodes[*n].value }

// SetNodeValue overwrites a node's payload.
func (g *Graph[V, E]) SetNodeValue(n graph.NodeDescriptor, v V) {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	g.nodes[*n].value = v
}

// EdgeValue returns an edge's payload.
func (g *Graph[V, E]) EdgeValue(ed graph.EdgeDescriptor) E { return g.edges[*ed].value }

// SetEdgeValue overwrites an edge's payload.
func (g *Graph[V, E]) SetEdgeValue(ed graph.EdgeDescriptor, v E) {
	g.muEdges.Lock()
	defer g.muEdges.Unlock()
	g.edges[*ed].value = v
}

// Nodes iterates every node currently in the graph, in insertion order
// (or InsertNodeBefore order, where used).
func (g *Graph[V, E]) Nodes() iter.Seq[graph.NodeDescriptor] {
	return func(yield func(graph.NodeDescriptor) bool) {
		for _, id := range g.order {
			if nd, ok := g.nodes[id]; ok {
				if !yield(nd.desc) {
					return
				}
			}
		}
	}
}

// OutEdges iterates every edge leaving n, in insertion order.
func (g *Graph[V, E]) OutEdges(n graph.NodeDescriptor) iter.Seq[graph.EdgeDescriptor] {
	return func(yield func(graph.EdgeDescriptor) bool) {
		for _, id := range g.nodes[*n].out {
			if !yield(g.edges[id].desc) {
				return
			}
		}
	}
}

// InEdges iterates every edge entering n, in insertion order.
func (g *Graph[V, E]) InEdges(n graph.NodeDescriptor) iter.Seq[graph.EdgeDescriptor] {
	return func(yield func(graph.EdgeDescriptor) bool) {
		for _, id := range g.nodes[*n].in {
			if !yield(g.edges[id].desc) {
				return
			}
		}
	}
}

// OutDegree, InDegree, and Degree are O(1): each node's adjacency slices
// carry their own length.
func (g *Graph[V, E]) OutDegree(n graph.NodeDescriptor) int { return len(g.nodes[*n].out) }
func (g *Graph[V, E]) InDegree(n graph.NodeDescriptor) int  { return len(g.nodes[*n].in) }
func (g *Graph[V, E]) Degree(n graph.NodeDescriptor) int {
	nd := g.nodes[*n]
	return len(nd.out) + len(nd.in)
}

// NumNodes reports the graph's current node count.
func (g *Graph[V, E]) NumNodes() int { return len(g.nodes) }

// NumEdges reports the graph's current edge count.
func (g *Graph[V, E]) NumEdges() int { return len(g.edges) }

// Clear removes every node and edge.
func (g *Graph[V, E]) Clear() {
	g.muNodes.Lock()
	g.muEdges.Lock()
	defer g.muNodes.Unlock()
	defer g.muEdges.Unlock()

	g.nodes = make(map[int]*nodeEntry[V])
	g.edges = make(map[int]*edgeEntry[E])
	g.order = nil
	g.nextNodeID, g.nextEdgeID = 0, 0
}

// Compress is a no-op: a map-backed adjacency list has no packed layout
// to repack, matching the original's own no-op compress() for this
// representation.
func (g *Graph[V, E]) Compress() {}

// Reserve hints at the eventual size of the graph by preallocating the
// backing maps; it is a no-op once either map is non-empty.
func (g *Graph[V, E]) Reserve(numNodes, numEdges int) {
	g.muNodes.Lock()
	if len(g.nodes) == 0 && numNodes > 0 {
		g.nodes = make(map[int]*nodeEntry[V], numNodes)
		g.order = make([]int, 0, numNodes)
	}
	g.muNodes.Unlock()

	g.muEdges.Lock()
	if len(g.edges) == 0 && numEdges > 0 {
		g.edges = make(map[int]*edgeEntry[E], numEdges)
	}
	g.muEdges.Unlock()
}

// ChooseNode returns an arbitrary live node, or ok=false if the graph has
// none.
func (g *Graph[V, E]) ChooseNode() (graph.NodeDescriptor, bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	if len(g.order) == 0 {
		return nil, false
	}
	id := g.order[g.rnd.Intn(len(g.order))]
	return g.nodes[id].desc, true
}
