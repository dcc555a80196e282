package arcflags

import (
	"github.com/katalvlaran/pmgraph/dijkstra"
	"github.com/katalvlaran/pmgraph/graph"
)

// EdgeFlags maps each edge to the set of cells it can lie on a shortest
// path toward, one bit per cell (see Partition.Mask).
type EdgeFlags map[graph.EdgeDescriptor]uint32

// Preprocess computes EdgeFlags for every edge in g under part. For
// each cell, it finds that cell's boundary nodes (members reached by an
// edge crossing in from another cell), then runs one backward search
// toward a virtual sink joined to every boundary node by a zero-weight
// edge — collapsing "distance to the nearest boundary node of this
// cell" into a single-target search instead of one per boundary node.
// An edge u->v is flagged for the cell when v itself belongs to the
// cell (it delivers a path there directly), or when it lies on some
// node's shortest path to that virtual sink, i.e.
// dist(u) == weight(u,v) + dist(v).
//
// zeroNode and zeroEdge construct placeholder payloads for the virtual
// sink node and its incoming edges; they are inserted and removed again
// before Preprocess returns, and never observed by the caller.
func Preprocess[V, E any](g graph.Surface[V, E], part *Partition, coord func(V) (x, y float64), weight func(E) int64, zeroNode func() V, zeroEdge func() E) (EdgeFlags, error) {
	flags := make(EdgeFlags)

	cellOf := make(map[graph.NodeDescriptor]int)
	buckets := make(map[int][]graph.NodeDescriptor)
	for n := range g.Nodes() {
		x, y := coord(g.NodeValue(n))
		c := part.Cell(x, y)
		cellOf[n] = c
		buckets[c] = append(buckets[c], n)
	}

	for cell, members := range buckets {
		boundary := boundaryNodes[V, E](g, cellOf, cell, members)
		mask := part.Mask(cell)

		var dist map[graph.NodeDescriptor]int64
		if len(boundary) > 0 {
			var err error
			dist, err = distanceToNearest[V, E](g, boundary, weight, zeroNode, zeroEdge)
			if err != nil {
				return nil, err
			}
		}

		for n := range g.Nodes() {
			for ed := range g.OutEdges(n) {
				v := g.Target(ed)
				if cellOf[v] == cell {
					flags[ed] |= mask
					continue
				}
				du, okU := dist[n]
				dv, okV := dist[v]
				if okU && okV && du == weight(g.EdgeValue(ed))+dv {
					flags[ed] |= mask
				}
			}
		}
	}
	return flags, nil
}

// boundaryNodes returns members of cell reached by an edge entering
// from a different cell — the gateways a path must pass through to
// reach the cell from outside.
func boundaryNodes[V, E any](g graph.Surface[V, E], cellOf map[graph.NodeDescriptor]int, cell int, members []graph.NodeDescriptor) []graph.NodeDescriptor {
	var out []graph.NodeDescriptor
	for _, u := range members {
		for ed := range g.InEdges(u) {
			if cellOf[g.Source(ed)] != cell {
				out = append(out, u)
				break
			}
		}
	}
	return out
}

func distanceToNearest[V, E any](g graph.Surface[V, E], boundary []graph.NodeDescriptor, weight func(E) int64, zeroNode func() V, zeroEdge func() E) (map[graph.NodeDescriptor]int64, error) {
	sink := g.InsertNode(zeroNode())
	defer g.EraseNode(sink)
	for _, b := range boundary {
		g.InsertEdge(b, sink, zeroEdge())
	}

	eng := dijkstra.NewEngine[V, E](g)
	if err := dijkstra.BuildTreeBackward[V, E](eng, sink, dijkstra.WithWeight(weight)); err != nil {
		return nil, err
	}

	out := make(map[graph.NodeDescriptor]int64)
	for n := range g.Nodes() {
		if n == sink {
			continue
		}
		out[n] = eng.Dist(n)
	}
	return out, nil
}
