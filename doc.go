// Package pmgraph is a library for building and querying large dynamic
// graphs in a packed, cache-friendly layout.
//
// Two graph representations share a common operation set (graph.Surface):
//
//	adjgraph/ — map-backed adjacency lists, the simple reference layout
//	pmg/      — the Packed Memory Graph, three pma.Array-backed pools
//	            (nodes, out-edges, in-edges) kept forward-star contiguous
//
// The Packed Memory Graph is built out of pma/ (the Packed Memory
// Array) and cbtree/ (the implicit density tree that decides when a PMA
// region needs to be rebalanced, grown, or shrunk); adjgraph uses plain
// Go maps and slices.
//
// Shortest-path search runs over graph.Surface directly, so either
// representation works unchanged:
//
//	dijkstra/      — single-criterion shortest paths, driven by pqueue/
//	multicriteria/ — NAMOA* multi-criteria (Pareto-optimal) search, with
//	                 an arcflags subpackage for corridor-pruned goal-
//	                 directed search
//
// nodeset/ is a sparse/dense node-set for marking nodes (the search
// packages keep their own scratch maps and do not use it); graphio/ reads and writes graphs in the usual
// plain-text exchange formats (DIMACS, GML, TGF, JSON); cmd/pmgdemo is
// a small command-line demonstration built on top of all of the above.
package pmgraph
