package pqueue

import (
	"cmp"

	"github.com/katalvlaran/pmgraph/bitutil"
	"github.com/katalvlaran/pmgraph/cbtree"
)

// HandleSentinel is written into a Handle when its item is not currently
// a member of any Queue.
const HandleSentinel = ^uint32(0)

// Handle lets a caller track an item's membership across Decrease,
// Update, Remove, and Contains calls without a separate index structure.
type Handle = *uint32

type item[K cmp.Ordered, D any] struct {
	key    K
	data   D
	handle Handle
}

func (it *item[K, D]) swapWith(other *item[K, D]) {
	it.key, other.key = other.key, it.key
	it.data, other.data = other.data, it.data
	it.handle, other.handle = other.handle, it.handle
}

// Queue is a binary min-heap of (key, data) pairs ordered by key.
type Queue[K cmp.Ordered, D any] struct {
	tree     *cbtree.Tree[item[K, D]]
	numItems uint32
}

// New creates an empty Queue.
func New[K cmp.Ordered, D any]() *Queue[K, D] {
	return &Queue[K, D]{tree: cbtree.New[item[K, D]](0, item[K, D]{}, cbtree.HeapLayout{})}
}

// Size returns the number of items currently in the queue.
func (q *Queue[K, D]) Size() uint32 { return q.numItems }

// Empty reports whether the queue holds no items.
func (q *Queue[K, D]) Empty() bool { return q.numItems == 0 }

// Clear removes every item from the queue.
func (q *Queue[K, D]) Clear() {
	for !q.Empty() {
		q.PopMin()
	}
}

// Contains reports whether handle refers to an item currently in the
// queue. A nil handle is never contained.
func (q *Queue[K, D]) Contains(handle Handle) bool {
	return handle != nil && *handle != HandleSentinel && *handle <= q.numItems
}

// Insert adds (key, data) to the queue. If handle is non-nil, it is
// written with the item's live position so it can later be passed to
// Decrease, Update, or Remove.
func (q *Queue[K, D]) Insert(key K, data D, handle Handle) {
	q.increaseSize()
	node := q.tree.Root()
	node.SetAtBfsIndex(q.lastItemBfsIndex())
	*node.Value() = item[K, D]{key: key, data: data, handle: handle}
	if handle != nil {
		*handle = node.BfsIndex()
	}
	q.upheap(&node)
}

// Min returns the key and data of the minimum item. It panics if the
// queue is empty.
func (q *Queue[K, D]) Min() (K, D) {
	it := q.tree.Root().Value()
	return it.key, it.data
}

// MinKey returns the key of the minimum item. It panics if the queue is
// empty.
func (q *Queue[K, D]) MinKey() K {
	return q.tree.Root().Value().key
}

// MinItem returns the data of the minimum item. It panics if the queue
// is empty.
func (q *Queue[K, D]) MinItem() D {
	return q.tree.Root().Value().data
}

// GetKey returns the key of the item referred to by handle.
func (q *Queue[K, D]) GetKey(handle Handle) K {
	node := q.tree.Root()
	node.SetAtBfsIndex(*handle)
	return node.Value().key
}

// GetItem returns the data of the item referred to by handle.
func (q *Queue[K, D]) GetItem(handle Handle) D {
	node := q.tree.Root()
	node.SetAtBfsIndex(*handle)
	return node.Value().data
}

// PopMin removes and discards the minimum item. It panics if the queue
// is empty.
func (q *Queue[K, D]) PopMin() {
	if q.numItems == 0 {
		panic("pqueue: PopMin on empty queue")
	}
	aux := q.tree.Root()
	q.certainDownheap(&aux)
	last := q.tree.Root()
	last.SetAtBfsIndex(q.lastItemBfsIndex())
	if aux.BfsIndex() != last.BfsIndex() {
		q.swap(&aux, &last)
		q.upheap(&aux)
	}
	if h := last.Value().handle; h != nil {
		*h = HandleSentinel
	}
	q.decreaseSize()
}

// Remove deletes the item referred to by handle from the queue.
func (q *Queue[K, D]) Remove(handle Handle) {
	if handle == nil {
		return
	}
	aux := q.tree.Root()
	aux.SetAtBfsIndex(*handle)
	q.certainDownheap(&aux)
	last := q.tree.Root()
	last.SetAtBfsIndex(q.lastItemBfsIndex())
	if aux.BfsIndex() != last.BfsIndex() {
		q.swap(&aux, &last)
		q.upheap(&aux)
	}
	if h := last.Value().handle; h != nil {
		*h = HandleSentinel
	}
	q.decreaseSize()
}

// Decrease lowers the key of the item referred to by handle and
// restores the heap property. The caller must ensure key <= the item's
// current key.
func (q *Queue[K, D]) Decrease(key K, handle Handle) {
	if handle == nil {
		return
	}
	node := q.tree.Root()
	node.SetAtBfsIndex(*handle)
	node.Value().key = key
	q.upheap(&node)
}

// Update sets the key of the item referred to by handle to key,
// restoring the heap property whether key moved up or down.
func (q *Queue[K, D]) Update(key K, handle Handle) {
	if handle == nil {
		return
	}
	node := q.tree.Root()
	node.SetAtBfsIndex(*handle)
	cur := node.Value()
	switch {
	case key < cur.key:
		cur.key = key
		q.upheap(&node)
	case key > cur.key:
		cur.key = key
		q.downheap(&node)
	}
}

// Visit calls fn for every item currently in the queue, in an
// unspecified order.
func (q *Queue[K, D]) Visit(fn func(key K, data D)) {
	if q.numItems == 0 {
		return
	}
	stack := []cbtree.Node[item[K, D]]{q.tree.Root()}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.BfsIndex() > q.lastItemBfsIndex() {
			continue
		}
		v := n.Value()
		fn(v.key, v.data)
		if !n.IsLeaf() {
			left, right := n, n
			left.Left()
			right.Right()
			stack = append(stack, left, right)
		}
	}
}

func (q *Queue[K, D]) lastItemBfsIndex() uint32 { return q.numItems }

func (q *Queue[K, D]) isInHeap(n *cbtree.Node[item[K, D]]) bool {
	return n.BfsIndex() <= q.lastItemBfsIndex()
}

func (q *Queue[K, D]) swap(u, v *cbtree.Node[item[K, D]]) {
	u.Value().swapWith(v.Value())
	if h := u.Value().handle; h != nil {
		*h = u.BfsIndex()
	}
	if h := v.Value().handle; h != nil {
		*h = v.BfsIndex()
	}
}

func (q *Queue[K, D]) upheap(u *cbtree.Node[item[K, D]]) {
	parent := *u
	for !u.IsRoot() {
		parent = *u
		parent.Up()
		if parent.Value().key > u.Value().key {
			q.swap(u, &parent)
			*u = parent
		} else {
			return
		}
	}
}

func (q *Queue[K, D]) downheap(u *cbtree.Node[item[K, D]]) {
	for !u.IsLeaf() {
		minKey := u.Value().key
		const (
			posParent = iota
			posLeft
			posRight
		)
		pos := posParent
		left := *u
		left.Left()
		if q.isInHeap(&left) && left.Value().key < minKey {
			minKey = left.Value().key
			pos = posLeft
		}
		right := *u
		right.Right()
		if q.isInHeap(&right) && right.Value().key < minKey {
			pos = posRight
		}
		switch pos {
		case posParent:
			return
		case posLeft:
			q.swap(u, &left)
			*u = left
		default:
			q.swap(u, &right)
			*u = right
		}
	}
}

func (q *Queue[K, D]) certainDownheap(u *cbtree.Node[item[K, D]]) {
	for !u.IsLeaf() {
		left := *u
		left.Left()
		right := *u
		right.Right()
		if !q.isInHeap(&left) {
			return
		}
		if !q.isInHeap(&right) {
			q.swap(u, &left)
			*u = left
			return
		}
		if left.Value().key < right.Value().key {
			q.swap(u, &left)
			*u = left
		} else {
			q.swap(u, &right)
			*u = right
		}
	}
}

func (q *Queue[K, D]) increaseSize() {
	q.numItems++
	if q.numItems > q.tree.NumNodes() {
		q.tree.IncreaseHeight()
	}
}

func (q *Queue[K, D]) decreaseSize() {
	if q.numItems < 9 {
		q.numItems--
		return
	}
	if bitutil.IsPowerOf2(uint(q.numItems)) {
		q.tree.DecreaseHeight()
	}
	q.numItems--
}
