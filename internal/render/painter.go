//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// MapPainter keeps a GPU image in sync with a raster and draws it scaled.
type MapPainter struct {
	img *ebiten.Image
}

// NewMapPainter constructs a painter; the backing image is allocated lazily
// because raster dimensions can change between regenerations.
func NewMapPainter() *MapPainter {
	return &MapPainter{}
}

// SetRaster uploads the raster pixels to the GPU image.
func (p *MapPainter) SetRaster(r *Raster) {
	if p.img == nil || p.img.Bounds().Dx() != r.W || p.img.Bounds().Dy() != r.H {
		p.img = ebiten.NewImage(r.W, r.H)
	}
	p.img.WritePixels(r.Pix)
}

// Blit draws the current image onto the screen at the given integer zoom.
func (p *MapPainter) Blit(screen *ebiten.Image, zoom int) {
	if p.img == nil {
		return
	}
	if zoom < 1 {
		zoom = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(zoom), float64(zoom))
	screen.DrawImage(p.img, op)
}
