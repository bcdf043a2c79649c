//go:build ebiten

package app

import (
	"time"

	"hexterra/internal/render"
	"hexterra/internal/terrain"
	"hexterra/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a terrain generation config to the ebiten.Game interface. Every
// regeneration runs the full pipeline and re-uploads the raster.
type Game struct {
	cfg     terrain.Config
	painter *render.MapPainter
	overlay *ui.Overlay

	data  *terrain.TerrainData
	mode  render.ViewMode
	scale int
	err   error

	width  int
	height int
}

// New constructs a Game and generates the initial map.
func New(cfg terrain.Config, scale int, mode render.ViewMode) *Game {
	g := &Game{
		cfg:     cfg,
		painter: render.NewMapPainter(),
		overlay: ui.NewOverlay(),
		mode:    mode,
		scale:   scale,
	}
	g.regenerate()
	return g
}

// Reset regenerates the map with the provided seed.
func (g *Game) Reset(seed int64) {
	g.cfg.Seed = seed
	g.regenerate()
}

func (g *Game) regenerate() {
	data, err := terrain.Generate(g.cfg)
	if err != nil {
		g.err = err
		return
	}
	g.data = data
	g.repaint()
}

func (g *Game) repaint() {
	if g.data == nil {
		return
	}
	r := render.Rasterize(g.data, g.scale, g.mode)
	g.width, g.height = r.W, r.H
	g.painter.SetRaster(r)
	g.overlay.SetStatus(g.cfg.Seed, g.mode.String(), g.data.Stats())
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.mode = g.mode.Next()
		g.repaint()
	}
	g.overlay.Update()
	return nil
}

// Draw renders the current map.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, 1)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.width < 1 || g.height < 1 {
		return 320, 240
	}
	return g.width, g.height
}
