package dijkstra

import (
	"github.com/katalvlaran/pmgraph/graph"
	"github.com/katalvlaran/pmgraph/pqueue"
)

// BuildTree runs a full single-source search from s, settling every
// node reachable within opts' MaxDistance/InfEdgeThreshold bounds. After
// it returns, e.Dist(n) reports n's shortest distance from s, and, if
// WithReturnPath was set, Path(e, n) reconstructs the shortest s->n walk.
func BuildTree[V, E any](e *Engine[V, E], s graph.NodeDescriptor, opts ...Option[E]) error {
	if e.g == nil {
		return ErrNilGraph
	}
	if s == nil {
		return ErrNilSource
	}
	if !e.g.HasNode(s) {
		return ErrSourceNotFound
	}
	cfg, err := resolveOptions(opts)
	if err != nil {
		return err
	}
	if err := scanNonNegative[V, E](e.g, cfg.Weight); err != nil {
		return err
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

		if us.dist > cfg.MaxDistance {
			break
		}

		for ed := range e.g.OutEdges(u) {
			w := cfg.Weight(e.g.EdgeValue(ed))
			if w >= cfg.InfEdgeThreshold {
				continue
			}
			v := e.g.Target(ed)
			vs := e.get(v)
			newDist := us.dist + w
			if newDist > cfg.MaxDistance {
				continue
			}
			if newDist >= vs.dist {
				continue
			}
			vs.dist = newDist
			if cfg.ReturnPath {
				vs.link = u
			}
			if vs.inQueue {
				pq.Decrease(newDist, &vs.handle)
			} else {
				pq.Insert(newDist, v, &vs.handle)
				vs.inQueue = true
			}
		}
	}
	return nil
}

// Query runs a source-target search, stopping as soon as t is settled
// rather than exploring the whole reachable set. Returns t's shortest
// distance from s (infDist if unreachable) and, if WithReturnPath was
// set, the shortest s->t walk.
func Query[V, E any](e *Engine[V, E], s, t graph.NodeDescriptor, opts ...Option[E]) (int64, []graph.NodeDescriptor, error) {
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
		if us.dist > cfg.MaxDistance {
			return infDist, nil, nil
		}

		for ed := range e.g.OutEdges(u) {
			w := cfg.Weight(e.g.EdgeValue(ed))
			if w >= cfg.InfEdgeThreshold {
				continue
			}
			v := e.g.Target(ed)
			vs := e.get(v)
			newDist := us.dist + w
			if newDist > cfg.MaxDistance {
				continue
			}
			if newDist >= vs.dist {
				continue
			}
			vs.dist = newDist
			if cfg.ReturnPath {
				vs.link = u
			}
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
	dist := e.Dist(t)
	if !cfg.ReturnPath {
		return dist, nil, nil
	}
	return dist, buildPath(e.states, e.gen, t), nil
}

// Path reconstructs the shortest path to n found by the most recent
// BuildTree call on e, provided that call used WithReturnPath. Returns
// nil if n was unreached or no path data was recorded.
func Path[V, E any](e *Engine[V, E], n graph.NodeDescriptor) []graph.NodeDescriptor {
	if !e.found(n) {
		return nil
	}
	return buildPath(e.states, e.gen, n)
}
