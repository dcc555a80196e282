package graph

import "iter"

// NodeDescriptor is a stable, comparable handle to a node. The zero
// value (nil) never refers to a live node.
type NodeDescriptor = *int

// EdgeDescriptor is a stable, comparable handle to an edge, symmetrical
// with NodeDescriptor.
type EdgeDescriptor = *int

// Surface is the public operation set shared by pmg.Graph and
// adjgraph.Graph: every shortest-path engine in dijkstra and
// multicriteria is written against Surface, not against either concrete
// implementation, so the two can be swapped (and cross-checked against
// each other in tests) freely.
type Surface[V, E any] interface {
	// InsertNode adds a new node carrying value v and returns its
	// descriptor.
	InsertNode(v V) NodeDescriptor
	// InsertNodeBefore adds a new node immediately before an existing
	// one in iteration order.
	InsertNodeBefore(before NodeDescriptor, v V) NodeDescriptor
	// EraseNode removes a node and every edge incident to it.
	EraseNode(n NodeDescriptor)
	// HasNode reports whether n refers to a node currently in the graph.
	HasNode(n NodeDescriptor) bool

	// InsertEdge adds a directed edge u->v carrying value e, inserted in
	// the position InsertEdge's ordering contract specifies (see the
	// concrete implementation's documentation).
	InsertEdge(u, v NodeDescriptor, e E) EdgeDescriptor
	// PushEdge appends a directed edge u->v to the end of u's outgoing
	// adjacency and v's incoming adjacency.
	PushEdge(u, v NodeDescriptor, e E) EdgeDescriptor
	// EraseEdge removes an edge.
	EraseEdge(ed EdgeDescriptor)
	// HasEdge reports whether ed refers to an edge currently in the graph.
	HasEdge(ed EdgeDescriptor) bool

	// Source returns an edge's tail node.
	Source(ed EdgeDescriptor) NodeDescriptor
	// Target returns an edge's head node.
	Target(ed EdgeDescriptor) NodeDescriptor

	// NodeValue returns a node's payload.
	NodeValue(n NodeDescriptor) V
	// SetNodeValue overwrites a node's payload.
	SetNodeValue(n NodeDescriptor, v V)
	// EdgeValue returns an edge's payload.
	EdgeValue(ed EdgeDescriptor) E
	// SetEdgeValue overwrites an edge's payload.
	SetEdgeValue(ed EdgeDescriptor, e E)

	// Nodes iterates every node currently in the graph.
	Nodes() iter.Seq[NodeDescriptor]
	// OutEdges iterates every edge leaving n, in forward-star order.
	OutEdges(n NodeDescriptor) iter.Seq[EdgeDescriptor]
	// InEdges iterates every edge entering n.
	InEdges(n NodeDescriptor) iter.Seq[EdgeDescriptor]

	// OutDegree, InDegree, and Degree are O(1).
	OutDegree(n NodeDescriptor) int
	InDegree(n NodeDescriptor) int
	Degree(n NodeDescriptor) int

	// NumNodes and NumEdges report the graph's current size.
	NumNodes() int
	NumEdges() int

	// Clear removes every node and edge.
	Clear()
	// Compress repacks underlying storage as densely as possible.
	Compress()
	// Reserve hints at the eventual size of the graph so the
	// implementation can preallocate.
	Reserve(numNodes, numEdges int)
	// ChooseNode returns an arbitrary live node, or ok=false if the
	// graph has none.
	ChooseNode() (NodeDescriptor, bool)
}
