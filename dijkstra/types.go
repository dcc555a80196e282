package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by this package's search entry points.
var (
	// ErrNilGraph indicates that a nil graph.Surface was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilSource indicates that the source NodeDescriptor is nil.
	ErrNilSource = errors.New("dijkstra: source node is nil")

	// ErrSourceNotFound indicates the source node is not in the graph.
	ErrSourceNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrTargetNotFound indicates the target node is not in the graph.
	ErrTargetNotFound = errors.New("dijkstra: target node not found in graph")

	// ErrNoWeightFunc indicates Options.Weight was never set.
	ErrNoWeightFunc = errors.New("dijkstra: no Weight function configured")

	// ErrNegativeWeight indicates the pre-search scan found an edge with
	// a negative weight; Dijkstra's non-negative-weight invariant does
	// not hold.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates InfEdgeThreshold was set to zero or
	// a negative value.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a search. E is the edge payload type of the graph
// being searched; Weight extracts a non-negative traversal cost from it.
type Options[E any] struct {
	Weight           func(E) int64
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option is a functional option for Options[E].
type Option[E any] func(*Options[E])

// WithWeight supplies the edge-weight extractor. Required: BuildTree and
// Query return ErrNoWeightFunc without it.
func WithWeight[E any](w func(E) int64) Option[E] {
	return func(o *Options[E]) { o.Weight = w }
}

// WithReturnPath enables predecessor tracking, so a query can return
// the shortest path it found.
func WithReturnPath[E any]() Option[E] {
	return func(o *Options[E]) { o.ReturnPath = true }
}

// WithMaxDistance caps exploration: nodes whose shortest distance would
// exceed max are never relaxed. Panics on a negative value.
func WithMaxDistance[E any](max int64) Option[E] {
	return func(o *Options[E]) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats any edge whose weight is at least
// threshold as impassable. Panics on a zero or negative value.
func WithInfEdgeThreshold[E any](threshold int64) Option[E] {
	return func(o *Options[E]) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap, no impassable
// threshold, and path reconstruction disabled.
func DefaultOptions[E any]() Options[E] {
	return Options[E]{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
