package multicriteria

import "github.com/katalvlaran/pmgraph/graph"

type nodeScratch struct {
	gen    uint32
	labels []*Label
}

// Engine holds reusable label scratch for repeated multi-criteria
// queries against the same graph: each node's label set is kept behind
// a generation stamp, so starting a new query is an O(1) generation
// bump rather than an O(V) sweep clearing every node's labels.
type Engine[V, E any] struct {
	g           graph.Surface[V, E]
	numCriteria int
	gen         uint32
	scratch     map[graph.NodeDescriptor]*nodeScratch

	generatedLabels int
	curWeight       func(E) Criteria
}

// NewEngine creates a multi-criteria search engine bound to g, where
// every edge cost vector produced by weight has exactly numCriteria
// components.
func NewEngine[V, E any](g graph.Surface[V, E], numCriteria int) *Engine[V, E] {
	return &Engine[V, E]{
		g:           g,
		numCriteria: numCriteria,
		scratch:     make(map[graph.NodeDescriptor]*nodeScratch),
	}
}

// GeneratedLabels reports how many labels the most recent query created.
func (e *Engine[V, E]) GeneratedLabels() int { return e.generatedLabels }

func (e *Engine[V, E]) reset() {
	e.gen++
	e.generatedLabels = 0
}

func (e *Engine[V, E]) get(n graph.NodeDescriptor) *nodeScratch {
	ns, ok := e.scratch[n]
	if !ok {
		ns = &nodeScratch{}
		e.scratch[n] = ns
	}
	if ns.gen != e.gen {
		ns.gen = e.gen
		ns.labels = nil
	}
	return ns
}

// Labels returns the non-dominated cost vectors found at n by the most
// recent query, or nil if n was unreached.
func (e *Engine[V, E]) Labels(n graph.NodeDescriptor) []Criteria {
	ns, ok := e.scratch[n]
	if !ok || ns.gen != e.gen {
		return nil
	}
	out := make([]Criteria, len(ns.labels))
	for i, l := range ns.labels {
		out[i] = l.Cost
	}
	return out
}

// Path reconstructs the node sequence from the query's source to n for
// the label at n matching cost exactly, or nil if no such label exists.
func (e *Engine[V, E]) Path(n graph.NodeDescriptor, cost Criteria) []graph.NodeDescriptor {
	ns, ok := e.scratch[n]
	if !ok || ns.gen != e.gen {
		return nil
	}
	var lbl *Label
	for _, l := range ns.labels {
		if l.Cost.Equal(cost) {
			lbl = l
			break
		}
	}
	if lbl == nil {
		return nil
	}

	var rev []graph.NodeDescriptor
	cur := n
	for {
		rev = append(rev, cur)
		if lbl.Pred == nil {
			break
		}
		cur = lbl.Pred
		lbl = lbl.predLabel
	}

	path := make([]graph.NodeDescriptor, len(rev))
	for i, n := range rev {
		path[len(rev)-1-i] = n
	}
	return path
}
