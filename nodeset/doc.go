// Package nodeset implements a dense, repeatedly-clearable set of
// graph.NodeDescriptor values, for target sets, multi-source frontiers,
// and visited marking. dijkstra and multicriteria do not use it: each
// keeps its own generation-stamped scratch map.
//
// Clearing it between queries must not cost O(capacity): a query over a
// 10-node subgraph of a million-node graph should not pay to sweep a
// million-entry array. Set solves this with the generation-stamp trick
// instead of per-node state stored on the graph itself (neither pmg nor
// adjgraph's node payload carries a selection slot): every entry records
// the generation it was inserted at, and Clear just bumps the current
// generation, leaving stale entries to be ignored (and eventually
// overwritten) rather than erased.
package nodeset
