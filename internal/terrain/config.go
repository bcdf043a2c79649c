package terrain

import (
	"errors"
	"fmt"

	"hexterra/internal/biome"
	"hexterra/internal/noisefield"
)

// ErrConfig marks configuration problems detected before any computation.
var ErrConfig = errors.New("terrain: invalid configuration")

// Params holds the tunable knobs of the generation pipeline.
type Params struct {
	// Island shape.
	LandRatio     float64 // target fraction of land corners
	LakeThreshold float64 // water-corner fraction that turns a cell into water
	ShapeNoise    noisefield.Params
	ShapeFalloff  noisefield.FalloffParams

	// Elevation.
	PeakMultiplier float64 // redistribution scale, typically (0, 2]

	// Rivers.
	RiverSeed     int64
	RiverSpawnMin float64 // spawn elevation window, inclusive
	RiverSpawnMax float64
	RiverAttempts float64 // spawn attempts per map cell

	// Moisture.
	RiverMoistureFactor float64
	SeaMoisture         bool // sea and coast corners provide full moisture

	// Biomes.
	BiomeNoise         noisefield.Params
	MoisturePerturb    float64
	TemperaturePerturb float64
	Biomes             biome.TableSpec
}

// Config controls one generation run.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  64,
		Height: 48,
		Seed:   1337,
		Params: Params{
			LandRatio:     0.5,
			LakeThreshold: 0.3,
			ShapeNoise: noisefield.Params{
				Algorithm:   "perlin",
				Octaves:     4,
				Frequency:   0.06,
				Persistence: 0.5,
			},
			ShapeFalloff: noisefield.FalloffParams{
				Mode:  noisefield.FalloffRadial,
				Power: 3.5,
			},
			PeakMultiplier:      1.1,
			RiverSeed:           9,
			RiverSpawnMin:       0.3,
			RiverSpawnMax:       0.9,
			RiverAttempts:       0.25,
			RiverMoistureFactor: 0.2,
			SeaMoisture:         true,
			BiomeNoise: noisefield.Params{
				Algorithm:   "perlin",
				Octaves:     3,
				Frequency:   0.15,
				Persistence: 0.5,
			},
			MoisturePerturb:    0.15,
			TemperaturePerturb: 0.15,
			Biomes:             biome.DefaultTableSpec(),
		},
	}
}

// Validate reports the first configuration problem, if any. Generation fails
// fast on a non-nil result before touching the graph.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: dimensions must be at least 1x1, got %dx%d", ErrConfig, c.Width, c.Height)
	}
	p := c.Params
	if p.LandRatio < 0 || p.LandRatio > 1 {
		return fmt.Errorf("%w: land ratio %g outside [0, 1]", ErrConfig, p.LandRatio)
	}
	if p.LakeThreshold < 0 || p.LakeThreshold > 1 {
		return fmt.Errorf("%w: lake threshold %g outside [0, 1]", ErrConfig, p.LakeThreshold)
	}
	if err := p.ShapeNoise.Validate(); err != nil {
		return fmt.Errorf("%w: shape noise: %v", ErrConfig, err)
	}
	if err := p.ShapeFalloff.Validate(); err != nil {
		return fmt.Errorf("%w: shape falloff: %v", ErrConfig, err)
	}
	if p.PeakMultiplier <= 0 {
		return fmt.Errorf("%w: peak multiplier must be positive, got %g", ErrConfig, p.PeakMultiplier)
	}
	if p.RiverSpawnMin < 0 || p.RiverSpawnMax > 1 || p.RiverSpawnMin > p.RiverSpawnMax {
		return fmt.Errorf("%w: river spawn range (%g, %g) not a subrange of [0, 1]", ErrConfig, p.RiverSpawnMin, p.RiverSpawnMax)
	}
	if p.RiverAttempts < 0 {
		return fmt.Errorf("%w: river attempts must be non-negative, got %g", ErrConfig, p.RiverAttempts)
	}
	if p.RiverMoistureFactor < 0 {
		return fmt.Errorf("%w: river moisture factor must be non-negative, got %g", ErrConfig, p.RiverMoistureFactor)
	}
	if err := p.BiomeNoise.Validate(); err != nil {
		return fmt.Errorf("%w: biome noise: %v", ErrConfig, err)
	}
	if p.MoisturePerturb < 0 || p.TemperaturePerturb < 0 {
		return fmt.Errorf("%w: biome perturbation amplitudes must be non-negative", ErrConfig)
	}
	return nil
}
