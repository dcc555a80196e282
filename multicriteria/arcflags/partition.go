// Package arcflags implements grid-partition Arc-Flags preprocessing: a
// per-edge bitmask recording, for each grid cell, whether that edge can
// lie on some shortest path toward the cell. A multi-criteria search
// can then skip any edge whose bit for the target's cell is unset,
// grounded on the reference implementation's MulticriteriaArc
// partition-and-flag preprocessing pass.
package arcflags

// Partition divides a bounding rectangle into a div x div grid of
// cells, numbered row-major from 0. div*div must not exceed 32, since a
// cell index is used as a bit position in a uint32 mask.
type Partition struct {
	xMin, xMax, yMin, yMax float64
	div                    int
}

// NewPartition builds a div x div grid over the given bounds.
func NewPartition(xMin, xMax, yMin, yMax float64, div int) *Partition {
	return &Partition{xMin: xMin, xMax: xMax, yMin: yMin, yMax: yMax, div: div}
}

// NumCells reports the total number of cells in the partition.
func (p *Partition) NumCells() int { return p.div * p.div }

// Cell returns the index of the cell containing point (x, y). Points
// outside the partition's bounds clamp to the nearest edge cell.
func (p *Partition) Cell(x, y float64) int {
	col := p.axisIndex(x, p.xMin, p.xMax)
	row := p.axisIndex(y, p.yMin, p.yMax)
	return row*p.div + col
}

func (p *Partition) axisIndex(v, min, max float64) int {
	if max <= min {
		return 0
	}
	idx := int((v - min) / (max - min) * float64(p.div))
	if idx < 0 {
		idx = 0
	}
	if idx >= p.div {
		idx = p.div - 1
	}
	return idx
}

// Mask returns the single-bit mask identifying cell.
func (p *Partition) Mask(cell int) uint32 {
	return 1 << uint(cell)
}
