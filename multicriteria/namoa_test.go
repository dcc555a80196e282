package multicriteria

import (
	"sort"
	"testing"

	"github.com/katalvlaran/pmgraph/adjgraph"
	"github.com/katalvlaran/pmgraph/graph"
)

func identityWeight(c Criteria) Criteria { return c }

// buildDiamond builds s->a->t and s->b->t with trade-off costs so
// neither route dominates the other: a is cheap on criterion 0 and
// dear on criterion 1, b is the reverse.
func buildDiamond() (*adjgraph.Graph[int, Criteria], graph.NodeDescriptor, graph.NodeDescriptor) {
	g := adjgraph.New[int, Criteria]()
	s := g.InsertNode(0)
	a := g.InsertNode(1)
	b := g.InsertNode(2)
	tt := g.InsertNode(3)

	g.InsertEdge(s, a, Criteria{1, 10})
	g.InsertEdge(s, b, Criteria{10, 1})
	g.InsertEdge(a, tt, Criteria{1, 1})
	g.InsertEdge(b, tt, Criteria{1, 1})
	return g, s, tt
}

func sortCriteria(cs []Criteria) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Less(cs[j]) })
}

func TestNAMOAStarFindsBothParetoOptimalRoutes(t *testing.T) {
	g, s, tt := buildDiamond()
	e := NewEngine[int, Criteria](g, 2)
	heuristic := NewBlindHeuristic(2)

	labels, err := NAMOAStarQuery[int, Criteria](e, s, tt, heuristic, identityWeight, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sortCriteria(labels)

	want := []Criteria{{2, 11}, {11, 2}}
	if len(labels) != len(want) {
		t.Fatalf("got %v, want %v", labels, want)
	}
	for i := range want {
		if !labels[i].Equal(want[i]) {
			t.Fatalf("got %v, want %v", labels, want)
		}
	}
}

func TestNAMOAStarPathReconstruction(t *testing.T) {
	g, s, tt := buildDiamond()
	e := NewEngine[int, Criteria](g, 2)
	heuristic := NewBlindHeuristic(2)

	_, err := NAMOAStarQuery[int, Criteria](e, s, tt, heuristic, identityWeight, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := e.Path(tt, Criteria{2, 11})
	if len(path) != 3 || path[0] != s || path[2] != tt {
		t.Fatalf("unexpected path: %v", path)
	}
}

func TestNAMOAStarRejectsInfeasibleHeuristic(t *testing.T) {
	g, s, tt := buildDiamond()
	e := NewEngine[int, Criteria](g, 2)
	// heuristic(s) overestimates far more than any outgoing edge can
	// bridge, violating consistency.
	badHeuristic := mapHeuristic{s: Criteria{100, 0}}

	_, err := NAMOAStarQuery[int, Criteria](e, s, tt, badHeuristic, identityWeight, nil)
	if err != ErrInfeasibleHeuristic {
		t.Fatalf("expected ErrInfeasibleHeuristic, got %v", err)
	}
}

type mapHeuristic map[graph.NodeDescriptor]Criteria

func (h mapHeuristic) Value(n graph.NodeDescriptor) Criteria {
	if c, ok := h[n]; ok {
		return c
	}
	return Criteria{0, 0}
}

func TestBuildTreeGeneratesFullParetoSet(t *testing.T) {
	g, s, tt := buildDiamond()
	e := NewEngine[int, Criteria](g, 2)

	if err := BuildTree[int, Criteria](e, s, identityWeight); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	labels := e.Labels(tt)
	sortCriteria(labels)
	want := []Criteria{{2, 11}, {11, 2}}
	if len(labels) != len(want) {
		t.Fatalf("got %v, want %v", labels, want)
	}
}
