// Package graph defines the descriptor types and the Surface interface
// shared by pmg.Graph and adjgraph.Graph, so that algorithms in dijkstra
// and multicriteria can run over either implementation unchanged.
//
// A NodeDescriptor is a stable handle to a node: it survives every
// mutation of the graph it came from, including relocation of the
// node's backing storage, until the node itself is erased. The same
// holds for EdgeDescriptor. Internally this is realized as a pointer to
// an owned heap cell holding an int: the node's current pool index for
// pmg.Graph, a fixed map key for adjgraph.Graph — the same
// technique the data structures these graphs are built from use to
// expose addresses that remain meaningful across a backing array's
// relocation.
package graph
