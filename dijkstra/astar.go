package dijkstra

import (
	"github.com/katalvlaran/pmgraph/graph"
	"github.com/katalvlaran/pmgraph/pqueue"
)

// Heuristic estimates a node's remaining distance to a fixed (implicit)
// target. A* only finds true shortest paths if heuristic is admissible
// (never overestimates) and consistent (satisfies the triangle
// inequality along every edge) — see HasFeasiblePotentials.
type Heuristic = func(graph.NodeDescriptor) int64

// HasFeasiblePotentials reports whether heuristic is consistent over
// every edge currently in g: for edge u->v with weight w, it must hold
// that w - heuristic(u) + heuristic(v) >= 0. An inconsistent heuristic
// can make AStarQuery settle nodes out of true distance order.
func HasFeasiblePotentials[V, E any](g graph.Surface[V, E], heuristic Heuristic, weight func(E) int64) bool {
	for u := range g.Nodes() {
		pu := heuristic(u)
		for ed := range g.OutEdges(u) {
			v := g.Target(ed)
			pv := heuristic(v)
			if weight(g.EdgeValue(ed))-pu+pv < 0 {
				return false
			}
		}
	}
	return true
}

// AStarQuery runs a source-target search guided by heuristic, which must
// estimate each node's remaining distance to t. It reduces to ordinary
// Dijkstra when heuristic always returns 0.
func AStarQuery[V, E any](e *Engine[V, E], s, t graph.NodeDescriptor, heuristic Heuristic, opts ...Option[E]) (int64, []graph.NodeDescriptor, error) {
	if e.g == nil {
		return infDist, nil, ErrNilGraph
	}
	if s == nil || t == nil {
		return infDist, nil, ErrNilSource
	}
	if !e.g.HasNode(s) {
		return infDist, nil, ErrSourceNotFound
	}
	if !e.g.HasNode(t) {
		return infDist, nil, ErrTargetNotFound
	}
	cfg, err := resolveOptions(opts)
	if err != nil {
		return infDist, nil, err
	}
	if err := scanNonNegative[V, E](e.g, cfg.Weight); err != nil {
		return infDist, nil, err
	}

	e.reset()
	pq := pqueue.New[int64, graph.NodeDescriptor]()

	root := e.get(s)
	root.dist = 0
	pq.Insert(0, s, &root.handle)
	root.inQueue = true

	for !pq.Empty() {
		u := pq.MinItem()
		pq.PopMin()
		us := e.get(u)
		us.inQueue = false
		e.settle(u, us.dist)

		if u == t {
			break
		}

		potentialU := heuristic(u)
		for ed := range e.g.OutEdges(u) {
			w := cfg.Weight(e.g.EdgeValue(ed))
			if w >= cfg.InfEdgeThreshold {
				continue
			}
			v := e.g.Target(ed)
			potentialV := heuristic(v)
			reduced := w + potentialV - potentialU
			vs := e.get(v)
			newDist := us.dist + reduced
			if newDist > cfg.MaxDistance {
				continue
			}
			if newDist >= vs.dist {
				continue
			}
			vs.dist = newDist
			vs.link = u
			if vs.inQueue {
				pq.Decrease(newDist, &vs.handle)
			} else {
				pq.Insert(newDist, v, &vs.handle)
				vs.inQueue = true
			}
		}
	}

	if !e.found(t) {
		return infDist, nil, nil
	}

	// e.states holds reduced-cost sums, not true distances; recover the
	// true distance by walking the recorded path and summing real edge
	// weights, mirroring the original's post-pass over pred pointers.
	path := buildPath(e.states, e.gen, t)
	if len(path) == 0 {
		return infDist, nil, nil
	}
	var dist int64
	for i := 0; i+1 < len(path); i++ {
		dist += edgeWeight(e.g, path[i], path[i+1], cfg.Weight)
	}
	if !cfg.ReturnPath {
		return dist, nil, nil
	}
	return dist, path, nil
}

func edgeWeight[V, E any](g graph.Surface[V, E], u, v graph.NodeDescriptor, weight func(E) int64) int64 {
	for ed := range g.OutEdges(u) {
		if g.Target(ed) == v {
			return weight(g.EdgeValue(ed))
		}
	}
	return 0
}
