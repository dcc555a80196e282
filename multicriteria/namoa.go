package multicriteria

import "github.com/katalvlaran/pmgraph/graph"

// HasFeasiblePotentials reports whether heuristic is admissible and
// consistent over every edge currently in g: for edge u->v with cost
// vector c, every component of c + heuristic(v) must be at least the
// same component of heuristic(u), each criterion checked on its own.
// NAMOAStarQuery asserts this before searching, mirroring the reference
// implementation's own assertion.
func HasFeasiblePotentials[V, E any](g graph.Surface[V, E], heuristic Heuristic, weight func(E) Criteria) bool {
	for u := range g.Nodes() {
		hu := heuristic.Value(u)
		for ed := range g.OutEdges(u) {
			v := g.Target(ed)
			hv := heuristic.Value(v)
			sum := weight(g.EdgeValue(ed)).Add(hv)
			for i := range sum {
				if sum[i] < hu[i] {
					return false
				}
			}
		}
	}
	return true
}

// EdgeFilter reports whether an edge may be traversed at all during a
// search, independent of its cost. NAMOAStarQuery's default filter
// (nil) allows every edge; passing one built from arcflags.EdgeFlags
// restricts exploration to edges flagged for the target's cell.
type EdgeFilter = func(graph.EdgeDescriptor) bool

// NAMOAStarQuery runs a label-setting multi-objective search from s
// toward t, guided by heuristic. It returns every Pareto-optimal cost
// vector found at t; Engine.Path recovers the corresponding walk for
// any of them. heuristic must satisfy HasFeasiblePotentials for weight
// over e's graph, or the search can settle labels out of true-cost
// order. allow, if non-nil, is consulted before relaxing each edge —
// an edge arc-flags preprocessing ruled out for t's cell is skipped
// without being weighed at all.
func NAMOAStarQuery[V, E any](e *Engine[V, E], s, t graph.NodeDescriptor, heuristic Heuristic, weight func(E) Criteria, allow EdgeFilter) ([]Criteria, error) {
	if e.g == nil {
		return nil, ErrNilGraph
	}
	if s == nil || t == nil {
		return nil, ErrNilSource
	}
	if !e.g.HasNode(s) {
		return nil, ErrSourceNotFound
	}
	if !e.g.HasNode(t) {
		return nil, ErrTargetNotFound
	}
	if !HasFeasiblePotentials(e.g, heuristic, weight) {
		return nil, ErrInfeasibleHeuristic
	}

	e.reset()
	e.curWeight = weight
	pq := newLabelQueue()
	zero := NewCriteria(e.numCriteria)

	ss := e.get(s)
	startLabel := &Label{Cost: zero.Clone()}
	ss.labels = append(ss.labels, startLabel)
	e.generatedLabels = 1
	pq.Insert(zero.Add(heuristic.Value(s)), s, startLabel)

	for !pq.Empty() {
		minCriteria, u, _ := pq.MinItem()
		pq.PopMin()

		gu := minCriteria.Sub(heuristic.Value(u))

		if u == t {
			e.eraseAllDominatedLabels(t, gu, pq)
		}
		e.moveToClosed(u, gu)

		if e.isDominatedByNodeLabels(t, minCriteria) {
			continue
		}

		for ed := range e.g.OutEdges(u) {
			if allow != nil && !allow(ed) {
				continue
			}
			v := e.g.Target(ed)
			vs := e.get(v)

			gv := gu.Add(weight(e.g.EdgeValue(ed)))
			heuristicCost := gv.Add(heuristic.Value(v))

			if e.distanceExistsInNode(v, gv) {
				vs.labels = append(vs.labels, &Label{Cost: gv, Pred: u, predLabel: e.labelAt(u, gu)})
				e.generatedLabels++
				continue
			}

			if e.isDominatedByNodeLabels(v, gv) {
				continue
			}
			e.eraseDominatedLabels(v, gv, pq)
			if e.isDominatedByNodeLabels(t, heuristicCost) {
				continue
			}

			lbl := &Label{Cost: gv, Pred: u, predLabel: e.labelAt(u, gu)}
			vs.labels = append(vs.labels, lbl)
			e.generatedLabels++
			pq.Insert(heuristicCost, v, lbl)
		}
	}

	return e.Labels(t), nil
}

// labelAt returns u's label whose cost exactly matches want, or nil.
func (e *Engine[V, E]) labelAt(u graph.NodeDescriptor, want Criteria) *Label {
	ns, ok := e.scratch[u]
	if !ok || ns.gen != e.gen {
		return nil
	}
	for _, l := range ns.labels {
		if l.Cost.Equal(want) {
			return l
		}
	}
	return nil
}

func (e *Engine[V, E]) distanceExistsInNode(v graph.NodeDescriptor, gv Criteria) bool {
	for _, l := range e.get(v).labels {
		if l.Cost.Equal(gv) {
			return true
		}
	}
	return false
}

func (e *Engine[V, E]) isDominatedByNodeLabels(v graph.NodeDescriptor, gv Criteria) bool {
	for _, l := range e.get(v).labels {
		if l.Cost.Dominates(gv) {
			return true
		}
	}
	return false
}

func (e *Engine[V, E]) moveToClosed(u graph.NodeDescriptor, gu Criteria) {
	for _, l := range e.get(u).labels {
		if l.inQueue() && l.Cost.Equal(gu) {
			l.item = nil
		}
	}
}

// eraseDominatedLabels removes every label at v dominated by gv. A
// dominated label still waiting in the queue is pulled out directly; one
// already expanded (no longer in the queue) has already pushed its own
// successors into the search, so the pruning recurses forward along v's
// edges to catch labels those successors created that are also
// dominated by gv extended along the same edges.
func (e *Engine[V, E]) eraseDominatedLabels(v graph.NodeDescriptor, gv Criteria, pq *labelQueue) {
	vs := e.get(v)
	kept := vs.labels[:0]
	for _, l := range vs.labels {
		if !gv.Dominates(l.Cost) {
			kept = append(kept, l)
			continue
		}
		if l.inQueue() {
			pq.Remove(l)
		} else {
			for ed := range e.g.OutEdges(v) {
				w := e.g.Target(ed)
				e.eraseDominatedLabels(w, gv.Add(e.curWeight(e.g.EdgeValue(ed))), pq)
			}
		}
	}
	vs.labels = kept
}

func (e *Engine[V, E]) eraseAllDominatedLabels(t graph.NodeDescriptor, gv Criteria, pq *labelQueue) {
	for n := range e.g.Nodes() {
		if n == t {
			continue
		}
		ns, ok := e.scratch[n]
		if !ok || ns.gen != e.gen || len(ns.labels) == 0 {
			continue
		}
		e.eraseDominatedLabels(n, gv, pq)
	}
}
