//go:build ebiten

package ui

import (
	"fmt"

	"hexterra/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws a small status readout on top of the map.
type Overlay struct {
	visible bool
	status  string
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{visible: true}
}

// SetStatus records the readout for the current map.
func (o *Overlay) SetStatus(seed int64, mode string, stats terrain.Stats) {
	o.status = fmt.Sprintf(
		"seed %d  view %s\nland %.1f%%  sea level %.3f (%d iters)\nrivers %d  seas %d  lakes %d\n[R] regen  [S] reseed  [M] view  [Tab] hud  [Q] quit",
		seed, mode,
		100*stats.LandFraction, stats.SeaLevel, stats.CalibrationIterations,
		stats.RiverCorners, stats.SeaCenters, stats.LakeCenters,
	)
}

// Update toggles overlay visibility.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.visible = !o.visible
	}
}

// Draw renders the readout onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible || o.status == "" {
		return
	}
	ebitenutil.DebugPrintAt(screen, o.status, 4, 4)
}
