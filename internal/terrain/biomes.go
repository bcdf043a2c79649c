package terrain

import (
	"math"

	"hexterra/internal/noisefield"
	"hexterra/pkg/core"
)

// assignBiomes derives per-cell temperature from a latitude band cooled by
// altitude, perturbs cell moisture and temperature with independent
// field-salted noise, and stores the biome id from the lookup table. Both
// perturbations are centered using half the moisture amplitude.
func (gen *generator) assignBiomes() error {
	centers := gen.g.Centers
	p := gen.cfg.Params
	b := gen.g.Bounds()

	for ci := range centers {
		lat := 0.5
		if b.Height() > 0 {
			lat = (centers[ci].Y - b.MinY) / b.Height()
		}
		band := 1 - math.Abs(2*lat-1)
		centers[ci].Temperature = clamp01(band * (1 - 0.5*centers[ci].Elevation))
	}

	xs, ys := gen.g.CenterPositions()
	moistureNoise, err := noisefield.Evaluate(xs, ys, core.SaltSeed(gen.cfg.Seed, "biome-moisture"), p.BiomeNoise)
	if err != nil {
		return err
	}
	temperatureNoise, err := noisefield.Evaluate(xs, ys, core.SaltSeed(gen.cfg.Seed, "biome-temperature"), p.BiomeNoise)
	if err != nil {
		return err
	}

	for ci := range centers {
		m := centers[ci].Moisture + p.MoisturePerturb*moistureNoise[ci] - p.MoisturePerturb/2
		t := centers[ci].Temperature + p.TemperaturePerturb*temperatureNoise[ci] - p.MoisturePerturb/2
		centers[ci].Biome = gen.table.Evaluate(m, t).ID
	}
	return nil
}
