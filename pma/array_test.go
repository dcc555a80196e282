package pma

import (
	"math/rand"
	"sort"
	"testing"
)

func lessInt(a, b int) bool { return a < b }

type recordingObserver struct {
	moves []struct{ src, dst int }
}

func (r *recordingObserver) Move(src, dst int, v int) {
	r.moves = append(r.moves, struct{ src, dst int }{src, dst})
}
func (r *recordingObserver) Reset() {}

func TestInsertKeepsSortedOrder(t *testing.T) {
	a := New[int](lessInt, -1)
	vals := []int{5, 1, 9, 3, 7, 2, 8, 4, 6, 0}
	for _, v := range vals {
		a.Insert(v)
	}
	if a.Len() != len(vals) {
		t.Fatalf("expected %d elements, got %d", len(vals), a.Len())
	}
	var got []int
	a.ForEach(func(_ int, v int) bool {
		got = append(got, v)
		return true
	})
	want := append([]int(nil), vals...)
	sort.Ints(want)
	if len(got) != len(want) {
		t.Fatalf("ForEach produced %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %d want %d", i, got[i], want[i])
		}
	}
}

func TestFindAndLowerBound(t *testing.T) {
	a := New[int](lessInt, -1)
	for _, v := range []int{10, 20, 30, 40, 50} {
		a.Insert(v)
	}
	if idx, ok := a.Find(30); !ok || a.At(idx) != 30 {
		t.Fatalf("Find(30) failed: idx=%d ok=%v", idx, ok)
	}
	if _, ok := a.Find(25); ok {
		t.Fatalf("Find(25) should not find a match")
	}
	idx := a.LowerBound(25)
	if idx < 0 || a.At(idx) != 30 {
		t.Fatalf("LowerBound(25) should land on 30, got idx=%d", idx)
	}
	if idx := a.LowerBound(100); idx != -1 {
		t.Fatalf("LowerBound(100) should be -1, got %d", idx)
	}
}

func TestEraseRemovesElement(t *testing.T) {
	a := New[int](lessInt, -1)
	for i := 0; i < 50; i++ {
		a.Insert(i)
	}
	idx, ok := a.Find(25)
	if !ok {
		t.Fatalf("expected to find 25")
	}
	a.Erase(idx)
	if _, ok := a.Find(25); ok {
		t.Fatalf("25 should be gone after Erase")
	}
	if a.Len() != 49 {
		t.Fatalf("expected 49 elements, got %d", a.Len())
	}
}

func TestObserverFiresOnGrow(t *testing.T) {
	a := New[int](lessInt, -1, WithBucketSize[int](4))
	obs := &recordingObserver{}
	a.RegisterObserver(obs)
	for i := 0; i < 100; i++ {
		a.Insert(i)
	}
	if len(obs.moves) == 0 {
		t.Fatalf("expected observer to see moves during growth/rearrangement")
	}
	// Every value should still be findable after all the relocation.
	for i := 0; i < 100; i++ {
		if _, ok := a.Find(i); !ok {
			t.Fatalf("value %d missing after growth", i)
		}
	}
}

func TestRandomizedInsertEraseMatchesSortedModel(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	a := New[int](lessInt, -1)
	model := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := r.Intn(500)
		if r.Intn(3) == 0 && model[v] {
			idx, ok := a.Find(v)
			if !ok {
				t.Fatalf("model says %d present but Find failed", v)
			}
			a.Erase(idx)
			delete(model, v)
		} else if !model[v] {
			a.Insert(v)
			model[v] = true
		}
	}
	if a.Len() != len(model) {
		t.Fatalf("Len()=%d, want %d", a.Len(), len(model))
	}
	var prev int
	first := true
	count := 0
	a.ForEach(func(_ int, v int) bool {
		if !first && v < prev {
			t.Fatalf("array not sorted: %d after %d", v, prev)
		}
		if !model[v] {
			t.Fatalf("ForEach produced value %d not in model", v)
		}
		prev = v
		first = false
		count++
		return true
	})
	if count != len(model) {
		t.Fatalf("ForEach visited %d elements, want %d", count, len(model))
	}
}

func TestReserveGrowsCapacity(t *testing.T) {
	a := New[int](lessInt, -1)
	a.Reserve(1000)
	if a.Cap() < 1000 {
		t.Fatalf("expected capacity >= 1000, got %d", a.Cap())
	}
	for i := 0; i < 100; i++ {
		a.Insert(i)
	}
	if a.Len() != 100 {
		t.Fatalf("expected 100 elements after Reserve+Insert, got %d", a.Len())
	}
}

func TestChooseCellOnEmptyArray(t *testing.T) {
	a := New[int](lessInt, -1)
	if _, _, ok := a.ChooseCell(); ok {
		t.Fatalf("ChooseCell on empty array should report ok=false")
	}
	a.Insert(42)
	v, idx, ok := a.ChooseCell()
	if !ok || v != 42 || idx < 0 {
		t.Fatalf("ChooseCell on single-element array failed: v=%d idx=%d ok=%v", v, idx, ok)
	}
}
