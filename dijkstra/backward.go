package dijkstra

import (
	"github.com/katalvlaran/pmgraph/graph"
	"github.com/katalvlaran/pmgraph/pqueue"
)

// BuildTreeBackward runs a full search rooted at target t, walking
// in-edges instead of out-edges, so e.Dist(n) reports n's shortest
// distance *to* t rather than from a source. WithReturnPath records a
// successor pointer at each node (the next hop on the way to t), the
// mirror image of BuildTree's predecessor pointer.
func BuildTreeBackward[V, E any](e *Engine[V, E], t graph.NodeDescriptor, opts ...Option[E]) error {
	if e.g == nil {
		return ErrNilGraph
	}
	if t == nil {
		return ErrNilSource
	}
	if !e.g.HasNode(t) {
		return ErrTargetNotFound
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

	root := e.get(t)
	root.dist = 0
	pq.Insert(0, t, &root.handle)
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

		for ed := range e.g.InEdges(u) {
			w := cfg.Weight(e.g.EdgeValue(ed))
			if w >= cfg.InfEdgeThreshold {
				continue
			}
			v := e.g.Source(ed)
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

// QueryBackward runs a target-rooted search that stops as soon as s is
// settled, returning s's shortest distance to t and, if WithReturnPath
// was set, the shortest s->t walk (reconstructed by following successor
// pointers forward from s, the reverse of BuildTree's predecessor walk).
func QueryBackward[V, E any](e *Engine[V, E], s, t graph.NodeDescriptor, opts ...Option[E]) (int64, []graph.NodeDescriptor, error) {
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

	root := e.get(t)
	root.dist = 0
	pq.Insert(0, t, &root.handle)
	root.inQueue = true

	for !pq.Empty() {
		u := pq.MinItem()
		pq.PopMin()
		us := e.get(u)
		us.inQueue = false
		e.settle(u, us.dist)

		if u == s {
			break
		}
		if us.dist > cfg.MaxDistance {
			return infDist, nil, nil
		}

		for ed := range e.g.InEdges(u) {
			w := cfg.Weight(e.g.EdgeValue(ed))
			if w >= cfg.InfEdgeThreshold {
				continue
			}
			v := e.g.Source(ed)
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

	if !e.found(s) {
		return infDist, nil, nil
	}
	dist := e.Dist(s)
	if !cfg.ReturnPath {
		return dist, nil, nil
	}

	// link pointers run s -> ... -> t (successor direction); buildPath
	// walks link from its argument toward the root, which here means
	// starting at s and following successors, producing the path in
	// s->t order directly without the reversal BuildTree's predecessor
	// walk needs.
	var path []graph.NodeDescriptor
	for cur := s; cur != nil; {
		path = append(path, cur)
		st, ok := e.states[cur]
		if !ok || st.gen != e.gen || st.link == nil {
			break
		}
		cur = st.link
	}
	return dist, path, nil
}
