package arcflags

import "testing"

func TestPartitionCellAssignment(t *testing.T) {
	p := NewPartition(0, 100, 0, 100, 2)
	if got := p.Cell(10, 10); got != 0 {
		t.Fatalf("got cell %d, want 0", got)
	}
	if got := p.Cell(90, 10); got != 1 {
		t.Fatalf("got cell %d, want 1", got)
	}
	if got := p.Cell(10, 90); got != 2 {
		t.Fatalf("got cell %d, want 2", got)
	}
	if got := p.Cell(90, 90); got != 3 {
		t.Fatalf("got cell %d, want 3", got)
	}
}

func TestPartitionClampsOutOfBounds(t *testing.T) {
	p := NewPartition(0, 100, 0, 100, 2)
	if got := p.Cell(-50, -50); got != 0 {
		t.Fatalf("got cell %d, want 0", got)
	}
	if got := p.Cell(1000, 1000); got != 3 {
		t.Fatalf("got cell %d, want 3", got)
	}
}

func TestMaskIsSingleBit(t *testing.T) {
	p := NewPartition(0, 1, 0, 1, 4)
	if p.Mask(3) != 1<<3 {
		t.Fatalf("got %b", p.Mask(3))
	}
}
