package pmg

import (
	"sort"
	"testing"
)

func collectTargets[V, E any](g *Graph[V, E], n *int) []int {
	var out []int
	for ed := range g.OutEdges(n) {
		out = append(out, *g.Target(ed))
	}
	sort.Ints(out)
	return out
}

func TestInsertEdgeBasicAdjacency(t *testing.T) {
	g := New[string, int]()
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	c := g.InsertNode("c")

	g.InsertEdge(a, b, 1)
	g.InsertEdge(a, c, 2)
	g.InsertEdge(b, c, 3)

	if g.OutDegree(a) != 2 {
		t.Fatalf("OutDegree(a) = %d, want 2", g.OutDegree(a))
	}
	if g.InDegree(c) != 2 {
		t.Fatalf("InDegree(c) = %d, want 2", g.InDegree(c))
	}
	if g.OutDegree(b) != 1 || g.InDegree(b) != 1 {
		t.Fatalf("b degrees wrong: out=%d in=%d", g.OutDegree(b), g.InDegree(b))
	}

	targets := collectTargets(g, a)
	if len(targets) != 2 || targets[0] != *b || targets[1] != *c {
		t.Fatalf("unexpected out-neighbors of a: %v (b=%d c=%d)", targets, *b, *c)
	}
}

func TestPushEdgeBuildsChainAdjacency(t *testing.T) {
	g := New[int, int]()
	nodes := make([]*int, 5)
	for i := range nodes {
		nodes[i] = g.InsertNode(i)
	}
	for i := 0; i < 4; i++ {
		g.PushEdge(nodes[i], nodes[i+1], i*10)
	}
	for i := 0; i < 4; i++ {
		if g.OutDegree(nodes[i]) != 1 {
			t.Fatalf("node %d out degree = %d, want 1", i, g.OutDegree(nodes[i]))
		}
	}
	if g.NumEdges() != 4 {
		t.Fatalf("NumEdges = %d, want 4", g.NumEdges())
	}
	for ed := range g.OutEdges(nodes[2]) {
		if *g.Target(ed) != *nodes[3] {
			t.Fatalf("node 2's out edge should target node 3")
		}
	}
}

func TestEraseEdgeUpdatesDegreesAndAdjacency(t *testing.T) {
	g := New[int, int]()
	a, b, c := g.InsertNode(0), g.InsertNode(1), g.InsertNode(2)
	eAB := g.InsertEdge(a, b, 1)
	g.InsertEdge(a, c, 2)

	g.EraseEdge(eAB)
	if g.OutDegree(a) != 1 {
		t.Fatalf("OutDegree(a) after erase = %d, want 1", g.OutDegree(a))
	}
	if g.InDegree(b) != 0 {
		t.Fatalf("InDegree(b) after erase = %d, want 0", g.InDegree(b))
	}
	targets := collectTargets(g, a)
	if len(targets) != 1 || targets[0] != *c {
		t.Fatalf("a should only point to c now, got %v", targets)
	}
}

func TestEraseNodeRemovesIncidentEdges(t *testing.T) {
	g := New[int, int]()
	a, b, c := g.InsertNode(0), g.InsertNode(1), g.InsertNode(2)
	g.InsertEdge(a, b, 1)
	g.InsertEdge(c, a, 2)

	g.EraseNode(a)
	if g.HasNode(a) {
		t.Fatalf("a should be gone")
	}
	if g.NumEdges() != 0 {
		t.Fatalf("NumEdges after erasing a = %d, want 0", g.NumEdges())
	}
	if g.OutDegree(c) != 0 {
		t.Fatalf("c's outgoing edge to a should be gone, OutDegree=%d", g.OutDegree(c))
	}
	if g.InDegree(b) != 0 {
		t.Fatalf("b's incoming edge from a should be gone, InDegree=%d", g.InDegree(b))
	}
}

func TestDescriptorsSurviveGrowth(t *testing.T) {
	g := New[int, int]()
	descs := make([]*int, 0, 300)
	for i := 0; i < 300; i++ {
		descs = append(descs, g.InsertNode(i))
	}
	for i, d := range descs {
		if !g.HasNode(d) {
			t.Fatalf("descriptor %d should still be live after growth", i)
		}
		if g.NodeValue(d) != i {
			t.Fatalf("descriptor %d resolved to wrong value %d after growth", i, g.NodeValue(d))
		}
	}
}

func TestChooseNodeOnEmptyGraph(t *testing.T) {
	g := New[int, int]()
	if _, ok := g.ChooseNode(); ok {
		t.Fatalf("ChooseNode on empty graph should report ok=false")
	}
	g.InsertNode(1)
	if _, ok := g.ChooseNode(); !ok {
		t.Fatalf("ChooseNode on non-empty graph should report ok=true")
	}
}
