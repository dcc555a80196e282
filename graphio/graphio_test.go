package graphio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/pmgraph/adjgraph"
	"github.com/katalvlaran/pmgraph/graph"
)

type point struct{ x, y float64 }

func coord(p point) (float64, float64) { return p.x, p.y }
func newPoint(x, y float64) point      { return point{x, y} }

func orderedNodes[V, E any](g graph.Surface[V, E]) []graph.NodeDescriptor {
	var out []graph.NodeDescriptor
	for n := range g.Nodes() {
		out = append(out, n)
	}
	return out
}

func TestDIMACS10RoundTrip(t *testing.T) {
	g := adjgraph.New[point, struct{}]()
	n0 := g.InsertNode(point{0, 0})
	n1 := g.InsertNode(point{10, 0})
	n2 := g.InsertNode(point{10, 10})
	g.InsertEdge(n0, n1, struct{}{})
	g.InsertEdge(n1, n0, struct{}{})
	g.InsertEdge(n1, n2, struct{}{})
	g.InsertEdge(n2, n1, struct{}{})

	dir := t.TempDir()
	graphPath := filepath.Join(dir, "g.graph")
	xyzPath := filepath.Join(dir, "g.xyz")

	if err := WriteDIMACS10[point, struct{}](g, graphPath, xyzPath, coord); err != nil {
		t.Fatalf("write: %v", err)
	}

	g2 := adjgraph.New[point, struct{}]()
	newEdge := func() struct{} { return struct{}{} }
	if err := ReadDIMACS10[point, struct{}](g2, graphPath, xyzPath, newPoint, newEdge); err != nil {
		t.Fatalf("read: %v", err)
	}

	if g2.NumNodes() != g.NumNodes() || g2.NumEdges() != g.NumEdges() {
		t.Fatalf("got %d nodes %d edges, want %d nodes %d edges",
			g2.NumNodes(), g2.NumEdges(), g.NumNodes(), g.NumEdges())
	}

	orig := orderedNodes[point, struct{}](g)
	got := orderedNodes[point, struct{}](g2)
	for i := range orig {
		if g.NodeValue(orig[i]) != g2.NodeValue(got[i]) {
			t.Fatalf("node %d coords mismatch: got %v, want %v", i, g2.NodeValue(got[i]), g.NodeValue(orig[i]))
		}
		if g.OutDegree(orig[i]) != g2.OutDegree(got[i]) {
			t.Fatalf("node %d out-degree mismatch", i)
		}
	}
}

func TestGMLRoundTrip(t *testing.T) {
	type props = map[string]string
	identity := func(p props) props { return p }

	g := adjgraph.New[props, props]()
	n0 := g.InsertNode(props{"label": "a"})
	n1 := g.InsertNode(props{"label": "b"})
	g.InsertEdge(n0, n1, props{"weight": "5"})

	path := filepath.Join(t.TempDir(), "g.gml")
	if err := WriteGML[props, props](g, path, identity, identity); err != nil {
		t.Fatalf("write: %v", err)
	}

	g2 := adjgraph.New[props, props]()
	if err := ReadGML[props, props](g2, path, identity, identity); err != nil {
		t.Fatalf("read: %v", err)
	}

	if g2.NumNodes() != 2 || g2.NumEdges() != 1 {
		t.Fatalf("got %d nodes %d edges", g2.NumNodes(), g2.NumEdges())
	}

	labels := make([]string, 0, 2)
	for n := range g2.Nodes() {
		labels = append(labels, g2.NodeValue(n)["label"])
	}
	if labels[0] != "a" || labels[1] != "b" {
		t.Fatalf("got labels %v, want [a b]", labels)
	}

	for n := range g2.Nodes() {
		for ed := range g2.OutEdges(n) {
			if w := g2.EdgeValue(ed)["weight"]; w != "5" {
				t.Fatalf("got edge weight %q, want 5", w)
			}
		}
	}
}

func TestDIMACS9RoundTrip(t *testing.T) {
	g := adjgraph.New[point, int64]()
	n0 := g.InsertNode(point{1, 1})
	n1 := g.InsertNode(point{2, 2})
	g.InsertEdge(n0, n1, 7)

	dir := t.TempDir()
	graphPath := filepath.Join(dir, "g.gr")
	coordPath := filepath.Join(dir, "g.co")
	weight := func(w int64) int64 { return w }

	if err := WriteDIMACS9[point, int64](g, graphPath, coordPath, coord, weight); err != nil {
		t.Fatalf("write: %v", err)
	}

	g2 := adjgraph.New[point, int64]()
	if err := ReadDIMACS9[point, int64](g2, graphPath, coordPath, newPoint, weight); err != nil {
		t.Fatalf("read: %v", err)
	}
	if g2.NumNodes() != 2 || g2.NumEdges() != 1 {
		t.Fatalf("got %d nodes %d edges", g2.NumNodes(), g2.NumEdges())
	}
	for n := range g2.Nodes() {
		for ed := range g2.OutEdges(n) {
			if g2.EdgeValue(ed) != 7 {
				t.Fatalf("got edge weight %d, want 7", g2.EdgeValue(ed))
			}
		}
	}
}

func TestTGFRoundTrip(t *testing.T) {
	g := adjgraph.New[point, float64]()
	n0 := g.InsertNode(point{0, 0})
	n1 := g.InsertNode(point{3, 4})
	g.InsertEdge(n0, n1, 1.5)

	dir := t.TempDir()
	nodePath := filepath.Join(dir, "g.nodes")
	edgePath := filepath.Join(dir, "g.edges")
	identity := func(w float64) float64 { return w }

	if err := WriteTGF[point, float64](g, nodePath, edgePath, coord, identity); err != nil {
		t.Fatalf("write: %v", err)
	}

	g2 := adjgraph.New[point, float64]()
	if err := ReadTGF[point, float64](g2, nodePath, edgePath, newPoint, identity); err != nil {
		t.Fatalf("read: %v", err)
	}
	if g2.NumNodes() != 2 || g2.NumEdges() != 1 {
		t.Fatalf("got %d nodes %d edges", g2.NumNodes(), g2.NumEdges())
	}
}

func TestWriteJSONProducesValidFile(t *testing.T) {
	g := adjgraph.New[point, int64]()
	n0 := g.InsertNode(point{0, 0})
	n1 := g.InsertNode(point{1, 1})
	g.InsertEdge(n0, n1, 3)

	path := filepath.Join(t.TempDir(), "g.json")
	err := WriteJSON[point, int64](g, path,
		func(p point) map[string]any { return map[string]any{"x": p.x, "y": p.y} },
		func(w int64) map[string]any { return map[string]any{"weight": w} },
	)
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected non-empty JSON output")
	}
}
