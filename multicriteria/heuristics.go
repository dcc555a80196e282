package multicriteria

import (
	"math"

	"github.com/katalvlaran/pmgraph/dijkstra"
	"github.com/katalvlaran/pmgraph/graph"
)

// BlindHeuristic always estimates zero remaining cost, reducing
// NAMOAStarQuery to the plain label-setting search BuildTree performs.
type BlindHeuristic struct {
	numCriteria int
}

// NewBlindHeuristic returns a zero heuristic over vectors with the
// given number of criteria.
func NewBlindHeuristic(numCriteria int) BlindHeuristic {
	return BlindHeuristic{numCriteria: numCriteria}
}

// Value implements Heuristic.
func (h BlindHeuristic) Value(graph.NodeDescriptor) Criteria {
	return NewCriteria(h.numCriteria)
}

const earthRadiusMiles = 3963.19

// greatCircleDistance returns the great-circle distance in thousandths
// of a mile (earthRadiusMiles times 1000) between two points given as (x, y) coordinates scaled by 1e5 degrees,
// matching the coordinate convention DIMACS road networks use.
func greatCircleDistance(x1, y1, x2, y2 float64) float64 {
	lat1, lon1 := x1/1e5*(math.Pi/180), y1/1e5*(math.Pi/180)
	lat2, lon2 := x2/1e5*(math.Pi/180), y2/1e5*(math.Pi/180)

	dLat := lat1 - lat2
	dLon := lon1 - lon2
	a := math.Pow(math.Sin(dLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMiles * c * 1000
}

// GreatCircleHeuristic estimates two criteria, distance and duration,
// from each node's straight-line great-circle distance to the target,
// the latter scaled by the fastest edge speed observed anywhere in the
// graph. It requires edge cost vectors whose first component is
// distance and second is duration.
type GreatCircleHeuristic[V, E any] struct {
	g        graph.Surface[V, E]
	coord    func(V) (x, y float64)
	target   graph.NodeDescriptor
	maxSpeed float64
}

// NewGreatCircleHeuristic scans every edge in g to find the fastest
// observed speed (distance/duration), then builds a heuristic rooted at
// t. coord extracts a node's coordinates from its payload.
func NewGreatCircleHeuristic[V, E any](g graph.Surface[V, E], t graph.NodeDescriptor, coord func(V) (x, y float64), weight func(E) Criteria) *GreatCircleHeuristic[V, E] {
	h := &GreatCircleHeuristic[V, E]{g: g, coord: coord, target: t}
	for n := range g.Nodes() {
		for ed := range g.OutEdges(n) {
			c := weight(g.EdgeValue(ed))
			if c[1] == 0 {
				continue
			}
			speed := float64(c[0]) / float64(c[1])
			if speed > h.maxSpeed {
				h.maxSpeed = speed
			}
		}
	}
	return h
}

// Value implements Heuristic.
func (h *GreatCircleHeuristic[V, E]) Value(n graph.NodeDescriptor) Criteria {
	ux, uy := h.coord(h.g.NodeValue(n))
	tx, ty := h.coord(h.g.NodeValue(h.target))
	dist := greatCircleDistance(ux, uy, tx, ty)
	duration := 0.0
	if h.maxSpeed > 0 {
		duration = dist / h.maxSpeed
	}
	return Criteria{int64(dist), int64(duration)}
}

// TCHeuristic computes, for each criterion independently, the true
// shortest-path distance to the target via a single-criterion backward
// Dijkstra tree — a consistent, tighter-than-great-circle heuristic at
// the cost of one full backward search per criterion.
type TCHeuristic struct {
	numCriteria int
	values      map[graph.NodeDescriptor]Criteria
}

// NewTCHeuristic runs one dijkstra.BuildTreeBackward per criterion,
// rooted at t, and caches the resulting per-node cost vectors.
func NewTCHeuristic[V, E any](g graph.Surface[V, E], t graph.NodeDescriptor, numCriteria int, weight func(E) Criteria) *TCHeuristic {
	per := make([]map[graph.NodeDescriptor]int64, numCriteria)
	for i := 0; i < numCriteria; i++ {
		idx := i
		eng := dijkstra.NewEngine[V, E](g)
		_ = dijkstra.BuildTreeBackward[V, E](eng, t, dijkstra.WithWeight(func(e E) int64 { return weight(e)[idx] }))
		m := make(map[graph.NodeDescriptor]int64)
		for n := range g.Nodes() {
			m[n] = eng.Dist(n)
		}
		per[i] = m
	}

	values := make(map[graph.NodeDescriptor]Criteria)
	for n := range g.Nodes() {
		c := NewCriteria(numCriteria)
		for i := 0; i < numCriteria; i++ {
			c[i] = per[i][n]
		}
		values[n] = c
	}
	return &TCHeuristic{numCriteria: numCriteria, values: values}
}

// Value implements Heuristic.
func (h *TCHeuristic) Value(n graph.NodeDescriptor) Criteria {
	if c, ok := h.values[n]; ok {
		return c
	}
	return NewCriteria(h.numCriteria)
}

// BoundedTCHeuristic is TCHeuristic restricted to nodes within a prior
// single-criterion bound from the target: backward search stops as
// soon as the frontier's minimum distance exceeds bound, trading
// heuristic precision (nodes outside the bound get the bound itself as
// their estimate) for a
// cheaper preprocessing pass when only a bounded neighborhood of the
// target will ever be explored.
type BoundedTCHeuristic struct {
	numCriteria int
	values      map[graph.NodeDescriptor]Criteria
}

// NewBoundedTCHeuristic builds a TCHeuristic-style cache for criterion
// 0 up to bound0 and criterion 1 up to bound1, both measured via a
// backward search from t.
func NewBoundedTCHeuristic[V, E any](g graph.Surface[V, E], t graph.NodeDescriptor, bound0, bound1 int64, weight func(E) Criteria) *BoundedTCHeuristic {
	values := make(map[graph.NodeDescriptor]Criteria)
	bounds := [2]int64{bound0, bound1}
	for i := 0; i < 2; i++ {
		idx := i
		eng := dijkstra.NewEngine[V, E](g)
		_ = dijkstra.BuildTreeBackward[V, E](eng, t,
			dijkstra.WithWeight(func(e E) int64 { return weight(e)[idx] }),
			dijkstra.WithMaxDistance[E](bounds[i]),
		)
		for n := range g.Nodes() {
			c, ok := values[n]
			if !ok {
				c = NewCriteria(2)
				values[n] = c
			}
			d := eng.Dist(n)
			if d > bounds[i] {
				d = bounds[i]
			}
			c[idx] = d
		}
	}
	return &BoundedTCHeuristic{numCriteria: 2, values: values}
}

// Value implements Heuristic.
func (h *BoundedTCHeuristic) Value(n graph.NodeDescriptor) Criteria {
	if c, ok := h.values[n]; ok {
		return c
	}
	return NewCriteria(h.numCriteria)
}
