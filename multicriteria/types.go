package multicriteria

import (
	"errors"

	"github.com/katalvlaran/pmgraph/graph"
)

var (
	// ErrNilGraph is returned when the engine's graph is nil.
	ErrNilGraph = errors.New("multicriteria: graph is nil")
	// ErrNilSource is returned when a search's source or target
	// descriptor is nil.
	ErrNilSource = errors.New("multicriteria: source or target is nil")
	// ErrSourceNotFound is returned when the source descriptor does not
	// refer to a live node.
	ErrSourceNotFound = errors.New("multicriteria: source node not found")
	// ErrTargetNotFound is returned when the target descriptor does not
	// refer to a live node.
	ErrTargetNotFound = errors.New("multicriteria: target node not found")
	// ErrInfeasibleHeuristic is returned when a NAMOA* query's heuristic
	// fails HasFeasiblePotentials for the given weight function.
	ErrInfeasibleHeuristic = errors.New("multicriteria: heuristic is not feasible for this graph")
)

// Heuristic estimates a node's remaining cost vector to a fixed
// (implicit) target. NAMOAStarQuery only explores in non-decreasing
// order of true cost when heuristic is admissible in every criterion —
// see HasFeasiblePotentials.
type Heuristic interface {
	Value(n graph.NodeDescriptor) Criteria
}
