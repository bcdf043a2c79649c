package noisefield

import (
	"fmt"
	"math"

	"hexterra/pkg/hexgrid"
)

// Falloff modes.
const (
	FalloffRadial = "radial" // distance from map center
	FalloffEdge   = "edge"   // chebyshev distance, squares off the coastline
)

// FalloffParams configures the positional multiplier.
type FalloffParams struct {
	Mode  string
	Power float64 // steepness of the drop toward the edge
}

// Validate reports the first configuration problem, if any.
func (p FalloffParams) Validate() error {
	switch p.Mode {
	case FalloffRadial, FalloffEdge:
	default:
		return fmt.Errorf("noisefield: unknown falloff mode %q", p.Mode)
	}
	if p.Power <= 0 {
		return fmt.Errorf("noisefield: falloff power must be positive, got %g", p.Power)
	}
	return nil
}

// EvaluateFalloff returns a multiplier in [0, 1] per point: 1 at the map
// center, dropping to 0 at the edge of the bounds.
func EvaluateFalloff(b hexgrid.Bounds, xs, ys []float64, p FalloffParams) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("noisefield: point slice lengths differ: %d vs %d", len(xs), len(ys))
	}

	cx, cy := b.Center()
	hw := b.Width() / 2
	hh := b.Height() / 2

	values := make([]float64, len(xs))
	for i := range xs {
		var nx, ny float64
		if hw > 0 {
			nx = (xs[i] - cx) / hw
		}
		if hh > 0 {
			ny = (ys[i] - cy) / hh
		}

		var d float64
		switch p.Mode {
		case FalloffRadial:
			d = math.Sqrt(nx*nx + ny*ny)
		case FalloffEdge:
			d = math.Max(math.Abs(nx), math.Abs(ny))
		}
		if d > 1 {
			d = 1
		}
		values[i] = clamp01(1 - math.Pow(d, p.Power))
	}
	return values, nil
}
