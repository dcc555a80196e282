package nodeset

import (
	"testing"

	"github.com/katalvlaran/pmgraph/adjgraph"
)

func TestSelectAndIsMember(t *testing.T) {
	g := adjgraph.New[int, int]()
	a, b, c := g.InsertNode(0), g.InsertNode(1), g.InsertNode(2)

	s := New(0)
	s.Select(a)
	s.Select(b)

	if !s.IsMember(a) || !s.IsMember(b) {
		t.Fatalf("a and b should be members")
	}
	if s.IsMember(c) {
		t.Fatalf("c should not be a member")
	}
	if s.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", s.Size())
	}
}

func TestSelectIsIdempotent(t *testing.T) {
	g := adjgraph.New[int, int]()
	a := g.InsertNode(0)

	s := New(0)
	s.Select(a)
	s.Select(a)
	if s.Size() != 1 {
		t.Fatalf("Size() = %d, want 1 after duplicate Select", s.Size())
	}
}

func TestClearIsO1AndReusable(t *testing.T) {
	g := adjgraph.New[int, int]()
	a, b := g.InsertNode(0), g.InsertNode(1)

	s := New(0)
	s.Select(a)
	s.Select(b)
	s.Clear()

	if !s.Empty() {
		t.Fatalf("set should be empty after Clear")
	}
	if s.IsMember(a) || s.IsMember(b) {
		t.Fatalf("stale members should not report as present after Clear")
	}

	s.Select(b)
	if !s.IsMember(b) || s.Size() != 1 {
		t.Fatalf("set should be usable again after Clear")
	}
	if s.IsMember(a) {
		t.Fatalf("a should still be absent after Clear, only b was re-selected")
	}
}
