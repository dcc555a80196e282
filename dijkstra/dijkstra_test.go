package dijkstra

import (
	"testing"

	"github.com/katalvlaran/pmgraph/adjgraph"
	"github.com/katalvlaran/pmgraph/graph"
)

func buildSample() (*adjgraph.Graph[string, int], map[string]*int) {
	g := adjgraph.New[string, int]()
	nodes := map[string]*int{
		"a": g.InsertNode("a"),
		"b": g.InsertNode("b"),
		"c": g.InsertNode("c"),
		"d": g.InsertNode("d"),
	}
	g.InsertEdge(nodes["a"], nodes["b"], 1)
	g.InsertEdge(nodes["a"], nodes["c"], 4)
	g.InsertEdge(nodes["b"], nodes["c"], 1)
	g.InsertEdge(nodes["c"], nodes["d"], 1)
	return g, nodes
}

func identityWeight(w int) int64 { return int64(w) }

func TestBuildTreeDistances(t *testing.T) {
	g, n := buildSample()
	e := NewEngine[string, int](g)
	if err := BuildTree(e, n["a"], WithWeight(identityWeight), WithReturnPath[int]()); err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if e.Dist(n["c"]) != 2 {
		t.Fatalf("dist(a,c) = %d, want 2 (via b)", e.Dist(n["c"]))
	}
	if e.Dist(n["d"]) != 3 {
		t.Fatalf("dist(a,d) = %d, want 3", e.Dist(n["d"]))
	}
	path := Path(e, n["d"])
	if len(path) != 4 || path[0] != n["a"] || path[3] != n["d"] {
		t.Fatalf("unexpected path to d: %v", path)
	}
}

func TestQueryStopsAtTarget(t *testing.T) {
	g, n := buildSample()
	e := NewEngine[string, int](g)
	dist, _, err := Query(e, n["a"], n["c"], WithWeight(identityWeight))
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if dist != 2 {
		t.Fatalf("Query(a,c) = %d, want 2", dist)
	}
}

func TestBackwardMatchesForward(t *testing.T) {
	g, n := buildSample()
	e := NewEngine[string, int](g)
	if err := BuildTreeBackward(e, n["d"], WithWeight(identityWeight)); err != nil {
		t.Fatalf("BuildTreeBackward failed: %v", err)
	}
	if e.Dist(n["a"]) != 3 {
		t.Fatalf("backward dist(a) = %d, want 3", e.Dist(n["a"]))
	}
}

func TestBidirectionalMatchesQuery(t *testing.T) {
	g, n := buildSample()
	dist, _, err := BidirectionalQuery[string, int](g, n["a"], n["d"], WithWeight(identityWeight))
	if err != nil {
		t.Fatalf("BidirectionalQuery failed: %v", err)
	}
	if dist != 3 {
		t.Fatalf("bidirectional dist(a,d) = %d, want 3", dist)
	}
}

func TestAStarWithZeroHeuristicMatchesDijkstra(t *testing.T) {
	g, n := buildSample()
	e := NewEngine[string, int](g)
	zeroHeuristic := func(_ graph.NodeDescriptor) int64 { return 0 }
	dist, _, err := AStarQuery[string, int](e, n["a"], n["d"], zeroHeuristic, WithWeight(identityWeight))
	if err != nil {
		t.Fatalf("AStarQuery failed: %v", err)
	}
	if dist != 3 {
		t.Fatalf("A* dist(a,d) = %d, want 3", dist)
	}
}

func TestQueryReportsUnreachable(t *testing.T) {
	g := buildDisconnected()
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	e := NewEngine[string, int](g)
	dist, _, err := Query(e, a, b, WithWeight(identityWeight))
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if dist != infDist {
		t.Fatalf("dist(a,b) = %d, want infDist for disconnected nodes", dist)
	}
}

func buildDisconnected() *adjgraph.Graph[string, int] {
	return adjgraph.New[string, int]()
}
