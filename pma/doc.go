// Package pma implements a Packed Memory Array: a sorted array that
// keeps deliberate gaps between elements so that a single insertion or
// deletion touches O(log^2 n) amortized elements instead of O(n), while
// supporting cache-friendly sequential scans and O(log n) binary search.
//
// The array is split into buckets of a fixed size; an implicit complete
// binary tree (the "density tree") tracks, for every power-of-two group
// of buckets, how full that group is. Density bounds are tightest at
// the leaves (a bucket may be 50%-75% full by default) and loosen
// towards the root (10%-90%), so a local imbalance is absorbed by
// rebalancing a small neighborhood before it has to cascade further.
//
// Every time the array relocates an element — during a rearrangement,
// a doubling, or a halving — it notifies every registered Observer
// before overwriting the destination slot, so a container built on top
// (pmg's Packed Memory Graph, specifically) can keep external pointers
// to elements valid across the move.
//
// Complexity:
//
//	– Find, LowerBound: O(log n)
//	– Insert, Erase: O(log^2 n) amortized
//	– PushBack: O(1) amortized
//	– Reserve: O(n)
package pma
