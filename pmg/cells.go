package pmg

// noIndex marks the absence of a pool index (no edge, no in-edge, no
// previous/next node).
const noIndex = -1

// nodeCell is the element type stored in a Graph's node pool. firstEdge
// and lastEdge bound the node's forward star in the edge pool, as a
// half-open range [firstEdge, lastEdge); firstInEdge/lastInEdge do the
// same against the in-edge pool. outDeg/inDeg are maintained
// incrementally so degree queries are O(1) instead of a forward-star
// walk.
type nodeCell[V any] struct {
	desc *int

	firstEdge, lastEdge     int
	firstInEdge, lastInEdge int
	outDeg, inDeg           int

	value V
}

func (c nodeCell[V]) hasEdges() bool   { return c.firstEdge != noIndex }
func (c nodeCell[V]) hasInEdges() bool { return c.firstInEdge != noIndex }

// edgeCell is the element type stored in a Graph's outgoing-edge pool.
// target is the pool index, in the node pool, of the edge's head;
// inEdge is the pool index, in the in-edge pool, of this edge's
// matching in-edge record.
type edgeCell[E any] struct {
	desc   *int
	target int
	inEdge int
	value  E
}

// inEdgeCell is the element type stored in a Graph's incoming-edge
// pool. It carries no payload of its own: EdgeValue/SetEdgeValue always
// resolve through the matching edgeCell. source is the pool index, in
// the node pool, of the edge's tail; edge is the pool index, in the
// edge pool, of the matching edgeCell.
type inEdgeCell struct {
	source int
	edge   int
}
