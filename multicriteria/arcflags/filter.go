package arcflags

import "github.com/katalvlaran/pmgraph/graph"

// Filter returns a predicate reporting whether an edge is flagged for
// the cell containing (tx, ty) — suitable as the EdgeFilter argument to
// multicriteria.NAMOAStarQuery, restricting exploration to edges
// Preprocess found useful for reaching that cell.
func Filter(flags EdgeFlags, part *Partition, tx, ty float64) func(graph.EdgeDescriptor) bool {
	mask := part.Mask(part.Cell(tx, ty))
	return func(ed graph.EdgeDescriptor) bool {
		return flags[ed]&mask != 0
	}
}
