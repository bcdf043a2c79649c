// Package render rasterizes a generated terrain into RGBA pixel buffers for
// the PNG exporter and the interactive viewer. It is a consumer of the
// terrain data, not part of the generation pipeline.
package render

import (
	"image"
	"image/color"
	"math"

	"hexterra/internal/biome"
	"hexterra/internal/terrain"
	"hexterra/pkg/hexgrid"
)

// ViewMode selects which attribute layer gets painted.
type ViewMode int

const (
	ViewBiome ViewMode = iota
	ViewElevation
	ViewMoisture

	viewModeCount
)

// Next cycles to the following view mode.
func (m ViewMode) Next() ViewMode { return (m + 1) % viewModeCount }

func (m ViewMode) String() string {
	switch m {
	case ViewBiome:
		return "biome"
	case ViewElevation:
		return "elevation"
	case ViewMoisture:
		return "moisture"
	}
	return "unknown"
}

// ParseViewMode resolves a mode name, defaulting to the biome view.
func ParseViewMode(name string) ViewMode {
	switch name {
	case "elevation":
		return ViewElevation
	case "moisture":
		return ViewMoisture
	default:
		return ViewBiome
	}
}

// Raster is a CPU-side RGBA pixel buffer.
type Raster struct {
	W, H int
	Pix  []byte
}

// Image wraps the buffer as an image for PNG encoding.
func (r *Raster) Image() *image.RGBA {
	return &image.RGBA{Pix: r.Pix, Stride: r.W * 4, Rect: image.Rect(0, 0, r.W, r.H)}
}

// Rasterize paints the map at the given pixels-per-world-unit scale. Every
// pixel is resolved to its hex cell through the inverse of the pointy-top
// layout; pixels outside the grid stay transparent.
func Rasterize(data *terrain.TerrainData, scale int, mode ViewMode) *Raster {
	if scale < 1 {
		scale = 1
	}
	g := data.Graph()
	b := g.Bounds()

	w := int(math.Ceil(b.Width() * float64(scale)))
	h := int(math.Ceil(b.Height() * float64(scale)))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	r := &Raster{W: w, H: h, Pix: make([]byte, w*h*4)}
	for py := 0; py < h; py++ {
		wy := b.MinY + (float64(py)+0.5)/float64(scale)
		for px := 0; px < w; px++ {
			wx := b.MinX + (float64(px)+0.5)/float64(scale)
			center, ok := cellAt(g, wx, wy)
			if !ok {
				continue
			}
			c := cellColor(data, center, mode)
			base := (py*w + px) * 4
			r.Pix[base+0] = c.R
			r.Pix[base+1] = c.G
			r.Pix[base+2] = c.B
			r.Pix[base+3] = c.A
		}
	}
	return r
}

// cellAt maps a world position to the containing cell via axial rounding.
func cellAt(g *hexgrid.Graph, x, y float64) (*hexgrid.Center, bool) {
	q := math.Sqrt(3)/3*x - y/3
	rr := 2.0 / 3.0 * y

	col, row := roundAxial(q, rr)
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return nil, false
	}
	return &g.Centers[row*g.Width+col], true
}

// roundAxial rounds fractional axial coordinates to the nearest cell and
// converts them to odd-r offset coordinates.
func roundAxial(q, r float64) (col, row int) {
	x, z := q, r
	y := -x - z

	rx := math.Round(x)
	ry := math.Round(y)
	rz := math.Round(z)

	dx := math.Abs(rx - x)
	dy := math.Abs(ry - y)
	dz := math.Abs(rz - z)

	if dx > dy && dx > dz {
		rx = -ry - rz
	} else if dy <= dz {
		rz = -rx - ry
	}

	iq, ir := int(rx), int(rz)
	return iq + (ir-(ir&1))/2, ir
}

func cellColor(data *terrain.TerrainData, c *hexgrid.Center, mode ViewMode) color.NRGBA {
	switch mode {
	case ViewElevation:
		if c.Water {
			return shade(biome.SeaColor, 0.5+0.5*c.Elevation)
		}
		v := uint8(255 * c.Elevation)
		return color.NRGBA{R: v, G: v, B: v, A: 255}
	case ViewMoisture:
		dry := color.NRGBA{R: 200, G: 180, B: 120, A: 255}
		wet := color.NRGBA{R: 40, G: 80, B: 170, A: 255}
		return blend(dry, wet, c.Moisture)
	}

	if c.Sea {
		return biome.SeaColor
	}
	if c.Lake() {
		return biome.LakeColor
	}
	base := color.NRGBA{R: 120, G: 120, B: 120, A: 255}
	if b, ok := data.Biomes().ByID(c.Biome); ok {
		base = b.Color
	}
	if c.Coast {
		base = blend(base, biome.CoastColor, 0.35)
	}
	if flow := cellRiverFlow(data.Graph(), c); flow > 0 {
		w := 0.15 * float64(flow)
		if w > 0.6 {
			w = 0.6
		}
		base = blend(base, biome.RiverColor, w)
	}
	return base
}

func cellRiverFlow(g *hexgrid.Graph, c *hexgrid.Center) int {
	flow := 0
	for _, cid := range c.Corners {
		if g.Corners[cid].River > flow {
			flow = g.Corners[cid].River
		}
	}
	return flow
}

func blend(a, b color.NRGBA, w float64) color.NRGBA {
	if w <= 0 {
		return a
	}
	if w >= 1 {
		return b
	}
	inv := 1 - w
	return color.NRGBA{
		R: uint8(float64(a.R)*inv + float64(b.R)*w + 0.5),
		G: uint8(float64(a.G)*inv + float64(b.G)*w + 0.5),
		B: uint8(float64(a.B)*inv + float64(b.B)*w + 0.5),
		A: uint8(float64(a.A)*inv + float64(b.A)*w + 0.5),
	}
}

func shade(c color.NRGBA, f float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
