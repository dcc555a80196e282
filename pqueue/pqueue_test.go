package pqueue

import (
	"math/rand"
	"sort"
	"testing"
)

func TestInsertAndPopMinOrder(t *testing.T) {
	q := New[int, string]()
	keys := []int{5, 3, 8, 1, 9, 2, 7, 4, 6, 0}
	for _, k := range keys {
		q.Insert(k, "", nil)
	}
	sorted := append([]int(nil), keys...)
	sort.Ints(sorted)
	for _, want := range sorted {
		if q.Empty() {
			t.Fatalf("queue emptied early")
		}
		got := q.MinKey()
		if got != want {
			t.Fatalf("PopMin order: got %d, want %d", got, want)
		}
		q.PopMin()
	}
	if !q.Empty() {
		t.Fatalf("queue should be empty")
	}
}

func TestDecreaseMovesItemUp(t *testing.T) {
	q := New[int, int]()
	var hA, hB, hC uint32
	q.Insert(10, 1, &hA)
	q.Insert(20, 2, &hB)
	q.Insert(30, 3, &hC)
	if q.MinKey() != 10 {
		t.Fatalf("expected min 10")
	}
	q.Decrease(1, &hC)
	if q.MinKey() != 1 || q.MinItem() != 3 {
		t.Fatalf("expected decreased item to become min, got key=%d item=%d", q.MinKey(), q.MinItem())
	}
}

func TestRemoveByHandle(t *testing.T) {
	q := New[int, int]()
	var handles []uint32
	for i := 0; i < 20; i++ {
		var h uint32
		q.Insert(i, i, &h)
		handles = append(handles, h)
	}
	// Remove the item that is currently at handles[5]'s position (key 5).
	h := handles[5]
	q.Remove(&h)
	if q.Size() != 19 {
		t.Fatalf("expected size 19 after remove, got %d", q.Size())
	}
	seen := map[int]bool{}
	for !q.Empty() {
		seen[q.MinKey()] = true
		q.PopMin()
	}
	if seen[5] {
		t.Fatalf("removed key 5 should not reappear")
	}
	if len(seen) != 19 {
		t.Fatalf("expected 19 distinct keys remaining, got %d", len(seen))
	}
}

func TestRandomizedHeapInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	q := New[int, int]()
	n := 500
	var vals []int
	for i := 0; i < n; i++ {
		v := r.Intn(10000)
		vals = append(vals, v)
		q.Insert(v, v, nil)
	}
	sort.Ints(vals)
	for i := 0; i < n; i++ {
		if got := q.MinKey(); got != vals[i] {
			t.Fatalf("position %d: got %d want %d", i, got, vals[i])
		}
		q.PopMin()
	}
}

func TestContainsSentinelAfterPop(t *testing.T) {
	q := New[int, int]()
	var h uint32
	q.Insert(1, 1, &h)
	if !q.Contains(&h) {
		t.Fatalf("expected Contains true right after insert")
	}
	q.PopMin()
	if q.Contains(&h) {
		t.Fatalf("expected Contains false after pop")
	}
	if h != HandleSentinel {
		t.Fatalf("expected handle set to sentinel, got %d", h)
	}
}
