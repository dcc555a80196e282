// Package dijkstra implements single-source and source-target shortest
// path search over graph.Surface[V, E]: plain, backward, bidirectional,
// and A* variants, all built on pqueue's decrease-key priority queue
// rather than the lazy-duplicate-push pattern a plain container/heap
// forces.
//
// Complexity (plain/backward): O((V + E) log V) time, O(V + E) space —
// pqueue's Decrease gives a true decrease-key instead of pushing a
// duplicate entry per relaxation, so the heap never grows past V live
// entries.
//
// Repeated queries against the same graph reuse an Engine rather than
// allocating fresh distance/predecessor maps per call: each node's
// scratch state carries a generation stamp, so starting a new query is
// an O(1) generation bump instead of an O(V) sweep — the same trick
// nodeset.Set uses for Clear, grounded on the per-node timestamp field
// the original implementation keeps to avoid re-initializing every node
// before each search.
package dijkstra
