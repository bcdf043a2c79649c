package hexgrid

// The grid uses odd-r offset coordinates for pointy-top hexagons with a
// circumradius of 1: odd rows are shifted half a cell to the right. Corner
// positions live on a doubled integer lattice so that the same physical
// corner always resolves to the same key regardless of which cell claims it
// first (x in units of sqrt(3)/2, y in units of 1/2).

import "math"

const sqrt3 = 1.7320508075688772

// Direction indexes a Center's neighbor table, counter-clockwise from east.
type Direction int

const (
	DirE Direction = iota
	DirNE
	DirNW
	DirW
	DirSW
	DirSE
	// DirCount is the number of hex directions.
	DirCount
)

// Offset deltas per direction, split by row parity (odd-r layout).
var (
	evenRowOffsets = [DirCount][2]int{{1, 0}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1}}
	oddRowOffsets  = [DirCount][2]int{{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {0, 1}, {1, 1}}
)

// Corner key offsets from a cell's lattice base, in corner order. Corner i
// sits at angle 60*i - 30 degrees from the cell center.
var (
	cornerDX = [6]int{1, 1, 0, -1, -1, 0}
	cornerDY = [6]int{-1, 1, 2, 1, -1, -2}
)

type latticeKey struct {
	X int
	Y int
}

// cellBase returns the lattice key of a cell center.
func cellBase(col, row int) latticeKey {
	return latticeKey{X: 2*col + row&1, Y: 3 * row}
}

// cornerKey returns the lattice key of corner i of the cell at (col, row).
func cornerKey(col, row, i int) latticeKey {
	base := cellBase(col, row)
	return latticeKey{X: base.X + cornerDX[i], Y: base.Y + cornerDY[i]}
}

// worldPos converts a lattice key to world coordinates.
func worldPos(k latticeKey) (x, y float64) {
	return float64(k.X) * sqrt3 / 2, float64(k.Y) / 2
}

// neighborOffset returns the column/row delta for a direction given row parity.
func neighborOffset(row int, d Direction) (dc, dr int) {
	if row&1 == 0 {
		return evenRowOffsets[d][0], evenRowOffsets[d][1]
	}
	return oddRowOffsets[d][0], oddRowOffsets[d][1]
}

// Bounds is the axis-aligned extent of a graph in world coordinates.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Center returns the midpoint of the bounds.
func (b Bounds) Center() (x, y float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

func (b *Bounds) extend(x, y float64) {
	b.MinX = math.Min(b.MinX, x)
	b.MinY = math.Min(b.MinY, y)
	b.MaxX = math.Max(b.MaxX, x)
	b.MaxY = math.Max(b.MaxY, y)
}
