// Package multicriteria implements multi-objective shortest path search
// over graph.Surface[V, E]: a label-setting Dijkstra that enumerates
// every Pareto-optimal cost vector per node, and a NAMOA* variant guided
// by a per-criterion admissible heuristic that prunes labels dominated
// by the best known cost to the target.
//
// A single-criterion search collapses to one scalar distance per node;
// multi-criteria search instead keeps a set of non-dominated cost
// vectors (labels) per node, since no total order exists between, say,
// "cheaper but slower" and "faster but dearer" paths. Both algorithms
// here are grounded on the reference implementation's
// MulticriteriaDijkstra and NamoaStar* label-setting loops: a vector
// dominates another when it is no worse in every criterion (so equal
// vectors dominate each other; StrictlyDominates adds "better in at
// least one"), and a candidate label is discarded outright if any label
// already kept at its node dominates it.
//
// Labels are stored outside the graph itself (graph.Surface's node
// payload is an opaque V the algorithms here cannot reach into), in a
// generation-stamped scratch map keyed by node descriptor — the same
// reset-by-bumping-a-counter trick nodeset.Set and dijkstra.Engine use,
// grounded on the original's per-node timestamp field.
package multicriteria
