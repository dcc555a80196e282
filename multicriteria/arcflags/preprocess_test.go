package arcflags

import (
	"testing"

	"github.com/katalvlaran/pmgraph/adjgraph"
)

type point struct{ x, y float64 }

func coord(p point) (float64, float64) { return p.x, p.y }

func weight(w int64) int64 { return w }

func TestPreprocessFlagsShortestPathEdges(t *testing.T) {
	g := adjgraph.New[point, int64]()
	n0 := g.InsertNode(point{0, 0})
	n1 := g.InsertNode(point{60, 0})
	n2 := g.InsertNode(point{120, 0})

	e01 := g.InsertEdge(n0, n1, 10)
	e12 := g.InsertEdge(n1, n2, 10)

	part := NewPartition(0, 120, 0, 10, 2)

	flags, err := Preprocess[point, int64](g, part, coord, weight,
		func() point { return point{} },
		func() int64 { return 0 },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cell1 := part.Cell(120, 0)
	mask1 := part.Mask(cell1)
	if flags[e12]&mask1 == 0 {
		t.Fatalf("expected e12 flagged for n2's cell")
	}
	if flags[e01]&mask1 == 0 {
		t.Fatalf("expected e01 flagged for n2's cell, since it lies on the only path there")
	}

	filter := Filter(flags, part, 120, 0)
	if !filter(e12) {
		t.Fatalf("expected filter to allow e12")
	}
}
