// Package pqueue implements a generic binary min-heap priority queue
// with external handles: callers may hold a Handle for an inserted item
// and use it to decrease its key, look it up, or remove it in
// O(log n), without a separate index.
//
// The heap is stored in a cbtree.Tree using the heap-order layout, so
// the item with bfsIndex i has children at 2i and 2i+1 exactly as in a
// textbook array-backed binary heap; the tree's IncreaseHeight/
// DecreaseHeight calls handle growth and shrinkage a power of two at a
// time.
//
// Complexity:
//
//	– Insert, Decrease, Update, Remove, PopMin: O(log n)
//	– Min, MinKey, MinItem, Contains: O(1)
//	– Visit: O(n)
//
// A Handle is a *uint32 owned by the caller (e.g. embedded in a search
// node's scratch record) that pqueue writes the item's current bfsIndex
// into. HandleSentinel marks "not currently in the queue". Passing a nil
// Handle to Insert is valid; such an item can never be decreased or
// removed directly, only popped via PopMin.
package pqueue
