package multicriteria

import "github.com/katalvlaran/pmgraph/graph"

// BuildTree runs a full label-setting multi-objective search rooted at
// s, generating at every reachable node the complete set of
// Pareto-optimal cost vectors from s. Unlike NAMOAStarQuery it has no
// heuristic and does no target-directed pruning, so it settles every
// node's full label set rather than stopping early — the plain
// multi-criteria analogue of dijkstra.BuildTree.
func BuildTree[V, E any](e *Engine[V, E], s graph.NodeDescriptor, weight func(E) Criteria) error {
	if e.g == nil {
		return ErrNilGraph
	}
	if s == nil {
		return ErrNilSource
	}
	if !e.g.HasNode(s) {
		return ErrSourceNotFound
	}

	e.reset()
	e.curWeight = weight
	pq := newLabelQueue()
	zero := NewCriteria(e.numCriteria)

	ss := e.get(s)
	startLabel := &Label{Cost: zero.Clone()}
	ss.labels = append(ss.labels, startLabel)
	e.generatedLabels = 1
	pq.Insert(zero.Clone(), s, startLabel)

	for !pq.Empty() {
		_, u, uLabel := pq.MinItem()
		pq.PopMin()

		for ed := range e.g.OutEdges(u) {
			v := e.g.Target(ed)
			vs := e.get(v)
			newCost := uLabel.Cost.Add(weight(e.g.EdgeValue(ed)))

			dominated := false
			for _, l := range vs.labels {
				if l.Cost.Dominates(newCost) {
					dominated = true
					break
				}
			}
			if dominated {
				continue
			}

			newLabel := &Label{Cost: newCost, Pred: u, predLabel: uLabel}
			e.generatedLabels++
			pq.Insert(newCost, v, newLabel)

			kept := vs.labels[:0]
			for _, l := range vs.labels {
				if !newCost.Dominates(l.Cost) {
					kept = append(kept, l)
				}
			}
			vs.labels = append(kept, newLabel)
		}
	}
	return nil
}
