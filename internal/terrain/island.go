package terrain

import (
	"math"

	"hexterra/internal/noisefield"
	"hexterra/pkg/core"
)

const (
	seaLevelIterations = 10
	landRatioTolerance = 0.01
)

// shapeIsland samples shape noise times edge falloff at every corner and
// binary-searches a sea-level threshold so the land fraction approximates the
// configured target, then marks corners below the threshold as water.
func (gen *generator) shapeIsland() error {
	xs, ys := gen.g.CornerPositions()

	noise, err := noisefield.Evaluate(xs, ys, core.SaltSeed(gen.cfg.Seed, "island-shape"), gen.cfg.Params.ShapeNoise)
	if err != nil {
		return err
	}
	falloff, err := noisefield.EvaluateFalloff(gen.g.Bounds(), xs, ys, gen.cfg.Params.ShapeFalloff)
	if err != nil {
		return err
	}

	values := make([]float64, len(noise))
	for i := range values {
		values[i] = noise[i] * falloff[i]
	}

	landAt := func(level float64) float64 {
		land := 0
		for _, v := range values {
			if v >= level {
				land++
			}
		}
		return float64(land) / float64(len(values))
	}

	target := gen.cfg.Params.LandRatio
	lo, hi := 0.0, 1.0
	best := 0.5
	bestDiff := math.Inf(1)
	iterations := 0

	for i := 0; i < seaLevelIterations; i++ {
		mid := (lo + hi) / 2
		iterations++

		diff := landAt(mid) - target
		if math.Abs(diff) < bestDiff {
			best = mid
			bestDiff = math.Abs(diff)
		}
		if math.Abs(diff) <= landRatioTolerance {
			break
		}
		if diff > 0 {
			// Too much land: raise the sea level.
			lo = mid
		} else {
			hi = mid
		}
	}

	for i := range gen.g.Corners {
		gen.g.Corners[i].Water = values[i] < best
	}

	gen.stats.SeaLevel = best
	gen.stats.CalibrationIterations = iterations
	gen.stats.LandFraction = landAt(best)
	return nil
}
