// Package adjgraph implements graph.Surface over a conventional
// adjacency-list representation: every node and edge lives in a Go map
// keyed by a monotonically increasing ID, and a node's out/in edges are
// tracked as ID slices. It never relocates anything once inserted, so
// unlike pmg it needs no Observer machinery to keep descriptors valid —
// a NodeDescriptor/EdgeDescriptor is simply a pointer to its own
// immutable ID, minted once and never rewritten.
//
// adjgraph exists as the straightforward reference implementation of
// Surface: slower per-operation than pmg for large graphs (no packed
// cache locality, O(degree) edge removal), but a useful correctness
// oracle to cross-check pmg against, and the natural home for self-loop
// and multi-edge cases pmg's forward-star layout does not support.
package adjgraph
