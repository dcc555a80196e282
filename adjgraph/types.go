package adjgraph

import (
	"math/rand"
	"sync"

	"github.com/katalvlaran/pmgraph/graph"
)

// nodeEntry holds one node's payload and the IDs of its incident edges,
// in insertion order.
type nodeEntry[V any] struct {
	desc *int
	value V
	out  []int
	in   []int
}

// edgeEntry holds one directed edge's endpoints (by node ID) and payload.
type edgeEntry[E any] struct {
	desc           *int
	source, target int
	value          E
}

// Graph is a conventional adjacency-list graph over node payloads V and
// edge payloads E. It implements graph.Surface[V, E]. Separate RWMutex
// locks for nodes and edges+adjacency keep read-heavy traversal cheap
// while still serializing concurrent mutation, mirroring the locking
// granularity core.Graph uses for its own vertex/edge maps.
type Graph[V, E any] struct {
	muNodes sync.RWMutex
	nodes   map[int]*nodeEntry[V]
	order   []int

	muEdges sync.RWMutex
	edges   map[int]*edgeEntry[E]

	nextNodeID int
	nextEdgeID int

	rnd *rand.Rand
}

var _ graph.Surface[int, int] = (*Graph[int, int])(nil)

// New creates an empty adjacency-list graph.
func New[V, E any]() *Graph[V, E] {
	return &Graph[V, E]{
		nodes: make(map[int]*nodeEntry[V]),
		edges: make(map[int]*edgeEntry[E]),
		rnd:   rand.New(rand.NewSource(1)),
	}
}

func removeID(ids []int, id int) []int {
	for i, x := range ids {
		if x == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
