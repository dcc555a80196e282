package cbtree

import "testing"

func TestHeapLayoutRootAndChildren(t *testing.T) {
	tr := New[int](2, -1, HeapLayout{})
	root := tr.Root()
	if root.BfsIndex() != 1 || !root.IsRoot() {
		t.Fatalf("root bfsIndex/IsRoot wrong")
	}
	*root.Value() = 42
	if tr.pool[0] != 42 {
		t.Fatalf("HeapLayout should place root at pool slot 0")
	}
	left := root
	left.Left()
	if left.BfsIndex() != 2 || left.Depth() != 1 {
		t.Fatalf("left child bfsIndex/depth wrong: %d/%d", left.BfsIndex(), left.Depth())
	}
	right := root
	right.Right()
	if right.BfsIndex() != 3 {
		t.Fatalf("right child bfsIndex wrong: %d", right.BfsIndex())
	}
	back := left
	back.Up()
	if back != root {
		t.Fatalf("Up() from left child should return to root")
	}
}

func TestIsLeafAndHeight(t *testing.T) {
	tr := New[int](2, 0, HeapLayout{})
	leaf := tr.Root()
	leaf.Left()
	leaf.Left()
	if !leaf.IsLeaf() {
		t.Fatalf("expected leaf at depth == height")
	}
	if leaf.Height() != 0 {
		t.Fatalf("leaf height should be 0, got %d", leaf.Height())
	}
}

func TestIsToTheLeftOf(t *testing.T) {
	tr := New[int](2, 0, HeapLayout{})
	var a, b Node[int]
	a.t, b.t = tr, tr
	a.SetAtBfsIndex(4) // leftmost leaf
	b.SetAtBfsIndex(7) // rightmost leaf
	if !a.IsToTheLeftOf(b) {
		t.Fatalf("leftmost leaf should be to the left of rightmost leaf")
	}
	if b.IsToTheLeftOf(a) {
		t.Fatalf("rightmost leaf should not be to the left of leftmost leaf")
	}
}

func TestIncreaseDecreaseHeightPreservesValues(t *testing.T) {
	tr := New[int](1, 0, HeapLayout{})
	for bfs := uint32(1); bfs <= tr.NumNodes(); bfs++ {
		*tr.At(bfs) = int(bfs) * 10
	}
	tr.IncreaseHeight()
	for bfs := uint32(1); bfs <= 3; bfs++ {
		if got, want := *tr.At(bfs), int(bfs)*10; got != want {
			t.Errorf("after IncreaseHeight, At(%d) = %d, want %d", bfs, got, want)
		}
	}
	tr.DecreaseHeight()
	if tr.Height() != 1 {
		t.Fatalf("expected height 1 after round-trip, got %d", tr.Height())
	}
	for bfs := uint32(1); bfs <= 3; bfs++ {
		if got, want := *tr.At(bfs), int(bfs)*10; got != want {
			t.Errorf("after DecreaseHeight round-trip, At(%d) = %d, want %d", bfs, got, want)
		}
	}
}

func TestVEBLayoutCoversAllSlotsExactlyOnce(t *testing.T) {
	for h := uint(0); h <= 5; h++ {
		order := VEBLayout{}.Build(h)
		n := numNodes(h)
		seen := make([]bool, n)
		for bfs := uint32(1); bfs <= n; bfs++ {
			slot := order[bfs]
			if slot >= n {
				t.Fatalf("height %d: slot %d out of range (n=%d)", h, slot, n)
			}
			if seen[slot] {
				t.Fatalf("height %d: slot %d assigned twice", h, slot)
			}
			seen[slot] = true
		}
	}
}
