package multicriteria

import (
	"container/heap"

	"github.com/katalvlaran/pmgraph/graph"
)

// qItem is one entry in labelQueue: a candidate label's priority
// (reduced cost, i.e. true cost plus heuristic estimate), the node it
// reaches, and a back-pointer to the label so eraseDominatedLabels can
// remove it from the queue directly instead of searching for it.
type qItem struct {
	priority Criteria
	node     graph.NodeDescriptor
	label    *Label
	index    int
}

// labelHeap is a container/heap.Interface over qItems ordered
// lexicographically by priority. pqueue.Queue cannot serve this role:
// its key type must satisfy cmp.Ordered, but a multi-criteria priority
// is a vector, not a single ordered scalar.
type labelHeap []*qItem

func (h labelHeap) Len() int            { return len(h) }
func (h labelHeap) Less(i, j int) bool  { return h[i].priority.Less(h[j].priority) }
func (h labelHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *labelHeap) Push(x any) {
	it := x.(*qItem)
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *labelHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]
	return it
}

// labelQueue is a min-priority queue of labels supporting arbitrary
// removal, used by the NAMOA* search to drop a label from the frontier
// as soon as it becomes dominated.
type labelQueue struct {
	h labelHeap
}

func newLabelQueue() *labelQueue {
	return &labelQueue{h: make(labelHeap, 0)}
}

func (q *labelQueue) Empty() bool { return len(q.h) == 0 }

// Insert adds label, reachable at node with the given priority, to the
// queue and records the queue membership on label itself.
func (q *labelQueue) Insert(priority Criteria, node graph.NodeDescriptor, label *Label) {
	it := &qItem{priority: priority, node: node, label: label}
	label.item = it
	heap.Push(&q.h, it)
}

// MinItem returns the queue's minimum-priority entry without removing it.
func (q *labelQueue) MinItem() (Criteria, graph.NodeDescriptor, *Label) {
	it := q.h[0]
	return it.priority, it.node, it.label
}

// PopMin removes and discards the queue's minimum-priority entry.
func (q *labelQueue) PopMin() {
	it := heap.Pop(&q.h).(*qItem)
	it.label.item = nil
}

// Remove drops label from the queue, wherever it currently sits.
func (q *labelQueue) Remove(label *Label) {
	if label.item == nil {
		return
	}
	heap.Remove(&q.h, label.item.index)
	label.item = nil
}
