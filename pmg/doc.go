// Package pmg implements the Packed Memory Graph: nodes, outgoing
// edges, and incoming edges each live in their own pma.Array, so the
// whole graph inherits the array's cache-friendly packed layout and
// O(log^2 n) amortized insertion/erasure instead of paying a pointer
// chase per adjacency-list node.
//
// A node's outgoing edges occupy a contiguous run of the edge pool —
// its forward star — bounded by firstEdge/lastEdge pool indices; the
// same holds for incoming edges against the in-edge pool. Three
// Observer implementations (one per pool) keep every cross-reference
// between the three pools, and every externally-held NodeDescriptor/
// EdgeDescriptor, correct across every relocation the arrays perform,
// exactly as pma.Array's Observer contract promises.
package pmg
