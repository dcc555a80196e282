package dijkstra

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/pmgraph/graph"
)

const infDist = int64(math.MaxInt64)

// state is one node's scratch slot: current best distance, predecessor
// (or successor, for a backward search), and its live handle into the
// priority queue, if it currently has one.
type state struct {
	gen     uint32
	dist    int64
	link    graph.NodeDescriptor
	handle  uint32
	inQueue bool
}

// Engine holds reusable search scratch for repeated queries against the
// same graph, so a new BuildTree/Query call costs an O(1) generation
// bump rather than an O(V) sweep to reset every node's state.
type Engine[V, E any] struct {
	g       graph.Surface[V, E]
	gen     uint32
	states  map[graph.NodeDescriptor]*state
	settled int
	logger  *zerolog.Logger
}

// EngineOption configures an Engine at construction time.
type EngineOption[V, E any] func(*Engine[V, E])

// WithLogger attaches a zerolog.Logger that receives a Debug-level event
// each time a search settles a node. A nil logger (the default) means
// tracing is skipped entirely, so paying for it is opt-in.
func WithLogger[V, E any](logger zerolog.Logger) EngineOption[V, E] {
	return func(e *Engine[V, E]) { e.logger = &logger }
}

// NewEngine creates a search engine bound to g. The same Engine can
// drive any number of BuildTree/Query calls; each starts a fresh
// generation, ignoring state left over from the previous call.
func NewEngine[V, E any](g graph.Surface[V, E], opts ...EngineOption[V, E]) *Engine[V, E] {
	e := &Engine[V, E]{g: g, states: make(map[graph.NodeDescriptor]*state)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Settled reports how many nodes the most recent search extracted from
// the priority queue.
func (e *Engine[V, E]) Settled() int { return e.settled }

func (e *Engine[V, E]) reset() {
	e.gen++
	e.settled = 0
}

// settle records that u has been extracted from the priority queue with
// final distance dist, tracing it at Debug level if a logger is set.
func (e *Engine[V, E]) settle(u graph.NodeDescriptor, dist int64) {
	e.settled++
	if e.logger != nil {
		e.logger.Debug().Int64("dist", dist).Int("settled", e.settled).Msg("dijkstra: settled node")
	}
}

func (e *Engine[V, E]) get(n graph.NodeDescriptor) *state {
	st, ok := e.states[n]
	if !ok {
		st = &state{}
		e.states[n] = st
	}
	if st.gen != e.gen {
		st.gen = e.gen
		st.dist = infDist
		st.link = nil
		st.inQueue = false
	}
	return st
}

func (e *Engine[V, E]) found(n graph.NodeDescriptor) bool {
	st, ok := e.states[n]
	return ok && st.gen == e.gen
}

// Dist returns n's distance as settled by the most recent search, or
// infDist if n was never reached.
func (e *Engine[V, E]) Dist(n graph.NodeDescriptor) int64 {
	if !e.found(n) {
		return infDist
	}
	return e.states[n].dist
}

// scanNonNegative validates that opts.Weight never reports a negative
// cost over g's current edges, failing fast before any relaxation runs.
func scanNonNegative[V, E any](g graph.Surface[V, E], weight func(E) int64) error {
	for n := range g.Nodes() {
		for ed := range g.OutEdges(n) {
			if weight(g.EdgeValue(ed)) < 0 {
				return ErrNegativeWeight
			}
		}
	}
	return nil
}

func resolveOptions[E any](opts []Option[E]) (Options[E], error) {
	cfg := DefaultOptions[E]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Weight == nil {
		return cfg, ErrNoWeightFunc
	}
	return cfg, nil
}

// buildPath walks link pointers from n back to the search root,
// returning the nodes in root-to-n order.
func buildPath(states map[graph.NodeDescriptor]*state, gen uint32, n graph.NodeDescriptor) []graph.NodeDescriptor {
	var rev []graph.NodeDescriptor
	for cur := n; cur != nil; {
		rev = append(rev, cur)
		st, ok := states[cur]
		if !ok || st.gen != gen || st.link == nil {
			break
		}
		cur = st.link
	}
	path := make([]graph.NodeDescriptor, len(rev))
	for i, n := range rev {
		path[len(rev)-1-i] = n
	}
	return path
}
