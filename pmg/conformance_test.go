package pmg_test

import (
	"iter"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/pmgraph/adjgraph"
	"github.com/katalvlaran/pmgraph/graph"
	"github.com/katalvlaran/pmgraph/pmg"
)

// snapshot captures everything about a node's local neighborhood that
// the two implementations promise to agree on: degree counts and the
// multiset of neighbor values, independent of either side's internal
// storage order.
type snapshot struct {
	Value  int
	OutDeg int
	InDeg  int
	Out    []int
	In     []int
}

func takeSnapshot[E any](g graph.Surface[int, E], n graph.NodeDescriptor) snapshot {
	s := snapshot{
		Value:  g.NodeValue(n),
		OutDeg: g.OutDegree(n),
		InDeg:  g.InDegree(n),
	}
	for ed := range g.OutEdges(n) {
		s.Out = append(s.Out, g.NodeValue(g.Target(ed)))
	}
	for ed := range g.InEdges(n) {
		s.In = append(s.In, g.NodeValue(g.Source(ed)))
	}
	sort.Ints(s.Out)
	sort.Ints(s.In)
	return s
}

// TestPMGMatchesAdjgraphUnderRandomMutations drives an adjgraph.Graph
// and a pmg.Graph through the identical sequence of random
// insert/erase operations and asserts, after every step, that the two
// report the same size and the same per-node neighborhood for every
// node still alive on both sides. This is the "same public surface,
// compare element-for-element" promise every dijkstra/multicriteria
// algorithm relies on when it is written against graph.Surface instead
// of a concrete implementation.
func TestPMGMatchesAdjgraphUnderRandomMutations(t *testing.T) {
	ag := adjgraph.New[int, int]()
	pg := pmg.New[int, int]()

	// liveAG/livePG are parallel: liveAG[i] and livePG[i] are the
	// descriptors for the same logical node on each side. Erasing a
	// node swap-removes its slot from both slices together so the two
	// never drift out of correspondence.
	var liveAG, livePG []graph.NodeDescriptor
	nextValue := 0

	rng := rand.New(rand.NewSource(7))

	insertNode := func() {
		v := nextValue
		nextValue++
		liveAG = append(liveAG, ag.InsertNode(v))
		livePG = append(livePG, pg.InsertNode(v))
	}
	for i := 0; i < 6; i++ {
		insertNode()
	}

	const steps = 500
	for step := 0; step < steps; step++ {
		switch {
		case len(liveAG) < 2:
			insertNode()
		case rng.Intn(10) < 2:
			insertNode()
		case rng.Intn(10) < 5:
			// Insert an edge; pmg panics on self-loops (adjgraph
			// accepts them), so pick distinct endpoints.
			i := rng.Intn(len(liveAG))
			j := rng.Intn(len(liveAG))
			if i == j {
				continue
			}
			w := rng.Intn(1000)
			ag.InsertEdge(liveAG[i], liveAG[j], w)
			pg.InsertEdge(livePG[i], livePG[j], w)
		case rng.Intn(10) < 7:
			// Erase an arbitrary out-edge of some node, if it has one.
			// Both sides append a node's new edges to the end of its own
			// out-edge run in insertion order, so the k-th out-edge
			// encountered by iteration names the same logical edge on
			// both sides for any node whose out-edges were inserted
			// through nothing but InsertEdge/PushEdge in lockstep.
			i := rng.Intn(len(liveAG))
			agEdges := collectEdges(ag.OutEdges(liveAG[i]))
			pgEdges := collectEdges(pg.OutEdges(livePG[i]))
			if len(agEdges) == 0 || len(pgEdges) == 0 {
				continue
			}
			k := rng.Intn(len(agEdges))
			if k >= len(pgEdges) {
				k = len(pgEdges) - 1
			}
			ag.EraseEdge(agEdges[k])
			pg.EraseEdge(pgEdges[k])
		default:
			// Erase a node.
			i := rng.Intn(len(liveAG))
			ag.EraseNode(liveAG[i])
			pg.EraseNode(livePG[i])
			last := len(liveAG) - 1
			liveAG[i], liveAG[last] = liveAG[last], liveAG[i]
			livePG[i], livePG[last] = livePG[last], livePG[i]
			liveAG = liveAG[:last]
			livePG = livePG[:last]
		}

		if ag.NumNodes() != pg.NumNodes() {
			t.Fatalf("step %d: NumNodes diverged: adjgraph=%d pmg=%d", step, ag.NumNodes(), pg.NumNodes())
		}
		if ag.NumEdges() != pg.NumEdges() {
			t.Fatalf("step %d: NumEdges diverged: adjgraph=%d pmg=%d", step, ag.NumEdges(), pg.NumEdges())
		}
		for i := range liveAG {
			want := takeSnapshot[int](ag, liveAG[i])
			got := takeSnapshot[int](pg, livePG[i])
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("step %d: node %d snapshot mismatch (-adjgraph +pmg):\n%s", step, want.Value, diff)
			}
		}
	}
}

func collectEdges(seq iter.Seq[graph.EdgeDescriptor]) []graph.EdgeDescriptor {
	var out []graph.EdgeDescriptor
	for ed := range seq {
		out = append(out, ed)
	}
	return out
}
