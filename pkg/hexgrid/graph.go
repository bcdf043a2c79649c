// Package hexgrid builds the dual graph of a pointy-top hexagonal map: one
// Center node per cell and one Corner node per cell-junction, cross-linked
// with symmetric adjacency. Topology is fixed at build time; later passes
// only mutate the per-node attribute fields.
package hexgrid

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimension reports a map size the grid cannot represent.
var ErrInvalidDimension = errors.New("hexgrid: width and height must be at least 1")

// CornerID addresses a Corner in the graph arena.
type CornerID int

// CenterID addresses a Center in the graph arena.
type CenterID int

// NoCenter marks an empty slot in a Center's direction-keyed neighbor table.
const NoCenter CenterID = -1

// Corner is a junction node shared by up to three adjacent cells.
type Corner struct {
	X, Y float64

	Border bool
	Water  bool
	Sea    bool
	Coast  bool

	Elevation float64
	River     int
	Moisture  float64

	// Downslope points at the neighboring corner with the lowest elevation,
	// or at the corner itself when it is a local minimum.
	Downslope CornerID

	Neighbors []CornerID // adjacent corners along cell edges, 2-3 entries
	Touches   []CenterID // cells sharing this corner, 1-3 entries
}

// Center is the node for one hex cell.
type Center struct {
	Col, Row int
	X, Y     float64

	Border bool
	Water  bool
	Sea    bool
	Coast  bool

	Elevation   float64
	Moisture    float64
	Temperature float64
	Biome       int

	Neighbors [DirCount]CenterID // keyed by Direction, NoCenter where absent
	Corners   [6]CornerID        // corner order matches cornerKey
}

// Lake reports whether the cell is enclosed water.
func (c *Center) Lake() bool { return c.Water && !c.Sea }

// Graph owns the corner and center arenas for a width x height map.
type Graph struct {
	Width  int
	Height int

	Corners []Corner
	Centers []Center

	bounds Bounds
}

// Build constructs the fully linked dual graph. Interior corners are shared
// by exactly three cells; boundary corners by fewer.
func Build(width, height int) (*Graph, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}

	g := &Graph{
		Width:   width,
		Height:  height,
		Centers: make([]Center, 0, width*height),
		Corners: make([]Corner, 0, 2*(width+1)*(height+1)),
		bounds:  Bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)},
	}

	// The key map is used for lookup only; node order is cell scan order, so
	// the build is deterministic.
	byKey := make(map[latticeKey]CornerID, cap(g.Corners))

	corner := func(k latticeKey) CornerID {
		if id, ok := byKey[k]; ok {
			return id
		}
		id := CornerID(len(g.Corners))
		x, y := worldPos(k)
		g.Corners = append(g.Corners, Corner{X: x, Y: y, Downslope: id})
		g.bounds.extend(x, y)
		byKey[k] = id
		return id
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			id := CenterID(len(g.Centers))
			x, y := worldPos(cellBase(col, row))
			c := Center{Col: col, Row: row, X: x, Y: y}

			for d := Direction(0); d < DirCount; d++ {
				c.Neighbors[d] = NoCenter
				dc, dr := neighborOffset(row, d)
				nc, nr := col+dc, row+dr
				if nc >= 0 && nc < width && nr >= 0 && nr < height {
					c.Neighbors[d] = CenterID(nr*width + nc)
				}
			}

			for i := 0; i < 6; i++ {
				cid := corner(cornerKey(col, row, i))
				c.Corners[i] = cid
				g.Corners[cid].Touches = append(g.Corners[cid].Touches, id)
			}

			g.Centers = append(g.Centers, c)
		}
	}

	// Corner adjacency follows cell edges: consecutive corners of a cell are
	// neighbors. Links are added once per unordered pair.
	for ci := range g.Centers {
		cs := g.Centers[ci].Corners
		for i := 0; i < 6; i++ {
			linkCorners(g, cs[i], cs[(i+1)%6])
		}
	}

	for i := range g.Corners {
		g.Corners[i].Border = len(g.Corners[i].Touches) < 3
	}
	for i := range g.Centers {
		for _, n := range g.Centers[i].Neighbors {
			if n == NoCenter {
				g.Centers[i].Border = true
				break
			}
		}
	}

	return g, nil
}

func linkCorners(g *Graph, a, b CornerID) {
	if a == b || hasCorner(g.Corners[a].Neighbors, b) {
		return
	}
	g.Corners[a].Neighbors = append(g.Corners[a].Neighbors, b)
	g.Corners[b].Neighbors = append(g.Corners[b].Neighbors, a)
}

func hasCorner(list []CornerID, id CornerID) bool {
	for _, c := range list {
		if c == id {
			return true
		}
	}
	return false
}

// Bounds returns the world-space extent of the graph.
func (g *Graph) Bounds() Bounds { return g.bounds }

// CornerPositions returns the world position of every corner in arena order.
func (g *Graph) CornerPositions() ([]float64, []float64) {
	xs := make([]float64, len(g.Corners))
	ys := make([]float64, len(g.Corners))
	for i := range g.Corners {
		xs[i] = g.Corners[i].X
		ys[i] = g.Corners[i].Y
	}
	return xs, ys
}

// CenterPositions returns the world position of every center in arena order.
func (g *Graph) CenterPositions() ([]float64, []float64) {
	xs := make([]float64, len(g.Centers))
	ys := make([]float64, len(g.Centers))
	for i := range g.Centers {
		xs[i] = g.Centers[i].X
		ys[i] = g.Centers[i].Y
	}
	return xs, ys
}
