package dijkstra

import (
	"github.com/katalvlaran/pmgraph/graph"
	"github.com/katalvlaran/pmgraph/pqueue"
)

// BidirectionalQuery runs two simultaneous searches, one forward from s
// and one backward from t, alternating a step of each and tracking the
// best s->t distance seen whenever a relaxed edge reaches a node the
// other side has already reached. It
// stops once neither queue's minimum key can possibly improve on the
// best distance found so far.
//
// Unlike BuildTree/Query, this does not use an Engine: forward and
// backward distances must coexist per node at once, which the single
// generation-stamped scratch slot Engine gives each node cannot hold
// simultaneously, so this allocates its own pair of scratch maps.
func BidirectionalQuery[V, E any](g graph.Surface[V, E], s, t graph.NodeDescriptor, opts ...Option[E]) (int64, []graph.NodeDescriptor, error) {
	if g == nil {
		return infDist, nil, ErrNilGraph
	}
	if s == nil || t == nil {
		return infDist, nil, ErrNilSource
	}
	if !g.HasNode(s) {
		return infDist, nil, ErrSourceNotFound
	}
	if !g.HasNode(t) {
		return infDist, nil, ErrTargetNotFound
	}
	cfg, err := resolveOptions(opts)
	if err != nil {
		return infDist, nil, err
	}
	if err := scanNonNegative[V, E](g, cfg.Weight); err != nil {
		return infDist, nil, err
	}

	fwd := make(map[graph.NodeDescriptor]*state)
	bwd := make(map[graph.NodeDescriptor]*state)
	getF := func(n graph.NodeDescriptor) *state {
		st, ok := fwd[n]
		if !ok {
			st = &state{dist: infDist}
			fwd[n] = st
		}
		return st
	}
	getB := func(n graph.NodeDescriptor) *state {
		st, ok := bwd[n]
		if !ok {
			st = &state{dist: infDist}
			bwd[n] = st
		}
		return st
	}

	pqF := pqueue.New[int64, graph.NodeDescriptor]()
	pqB := pqueue.New[int64, graph.NodeDescriptor]()

	sf := getF(s)
	sf.dist = 0
	pqF.Insert(0, s, &sf.handle)
	sf.inQueue = true

	tb := getB(t)
	tb.dist = 0
	pqB.Insert(0, t, &tb.handle)
	tb.inQueue = true

	var best int64 = infDist
	var via graph.NodeDescriptor
	settled := 0

	searchForward := func() {
		if pqF.Empty() {
			return
		}
		u := pqF.MinItem()
		pqF.PopMin()
		us := getF(u)
		us.inQueue = false
		settled++

		for ed := range g.OutEdges(u) {
			w := cfg.Weight(g.EdgeValue(ed))
			if w >= cfg.InfEdgeThreshold {
				continue
			}
			v := g.Target(ed)
			vs := getF(v)
			newDist := us.dist + w
			if newDist < vs.dist {
				vs.dist = newDist
				vs.link = u
				if vs.inQueue {
					pqF.Decrease(newDist, &vs.handle)
				} else {
					pqF.Insert(newDist, v, &vs.handle)
					vs.inQueue = true
				}
			}
			if bv, ok := bwd[v]; ok && bv.dist != infDist && us.dist+w+bv.dist < best {
				best = us.dist + w + bv.dist
				via = v
			}
		}
	}

	searchBackward := func() {
		if pqB.Empty() {
			return
		}
		u := pqB.MinItem()
		pqB.PopMin()
		us := getB(u)
		us.inQueue = false
		settled++

		for ed := range g.InEdges(u) {
			w := cfg.Weight(g.EdgeValue(ed))
			if w >= cfg.InfEdgeThreshold {
				continue
			}
			v := g.Source(ed)
			vs := getB(v)
			newDist := us.dist + w
			if newDist < vs.dist {
				vs.dist = newDist
				vs.link = u
				if vs.inQueue {
					pqB.Decrease(newDist, &vs.handle)
				} else {
					pqB.Insert(newDist, v, &vs.handle)
					vs.inQueue = true
				}
			}
			if fv, ok := fwd[v]; ok && fv.dist != infDist && fv.dist+w+us.dist < best {
				best = fv.dist + w + us.dist
				via = v
			}
		}
	}

	for !pqF.Empty() || !pqB.Empty() {
		var curMin int64
		if !pqF.Empty() {
			curMin += pqF.MinKey()
		}
		if !pqB.Empty() {
			curMin += pqB.MinKey()
		}
		if curMin > best {
			break
		}
		searchForward()
		searchBackward()
	}

	if via == nil {
		return infDist, nil, nil
	}
	if !cfg.ReturnPath {
		return best, nil, nil
	}

	var fwdHalf []graph.NodeDescriptor
	for cur := via; cur != nil; {
		fwdHalf = append(fwdHalf, cur)
		st, ok := fwd[cur]
		if !ok || st.link == nil {
			break
		}
		cur = st.link
	}
	path := make([]graph.NodeDescriptor, len(fwdHalf))
	for i, n := range fwdHalf {
		path[len(fwdHalf)-1-i] = n
	}
	for cur := bwd[via].link; cur != nil; {
		path = append(path, cur)
		st, ok := bwd[cur]
		if !ok || st.link == nil {
			break
		}
		cur = st.link
	}
	return best, path, nil
}
