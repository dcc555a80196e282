package multicriteria

import "github.com/katalvlaran/pmgraph/graph"

// Label is one non-dominated cost vector reaching a node, together with
// the predecessor it was extended from. A node may carry several
// labels simultaneously — one per Pareto-optimal trade-off among the
// criteria found so far.
type Label struct {
	Cost Criteria
	Pred graph.NodeDescriptor

	// predLabel is the specific label at Pred this one extended, kept
	// so a path can be walked back unambiguously even when Pred holds
	// several labels.
	predLabel *Label
	item      *qItem
}

func (l *Label) inQueue() bool { return l.item != nil }
