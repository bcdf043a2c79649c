// Package terrain turns a seed plus a parameter set into a fully classified
// hexagonal terrain graph. The pipeline runs a fixed sequence of passes over
// the shared graph, each depending on the attributes the previous one
// committed: island shape, elevation flood-fill, water classification,
// elevation redistribution, downslopes, rivers, moisture, biomes.
package terrain

import (
	"fmt"

	"hexterra/internal/biome"
	"hexterra/pkg/hexgrid"
)

// Stats captures measurable outcomes of a generation run.
type Stats struct {
	SeaLevel              float64
	CalibrationIterations int
	LandFraction          float64 // fraction of non-water corners after calibration
	RiverCorners          int
	SeaCenters            int
	LakeCenters           int
}

// TerrainData aggregates the finished graph and the biome lookup table. It is
// handed out read-only: no pipeline pass runs after construction.
type TerrainData struct {
	graph  *hexgrid.Graph
	biomes *biome.Table
	cfg    Config
	stats  Stats
}

// Graph returns the classified terrain graph.
func (t *TerrainData) Graph() *hexgrid.Graph { return t.graph }

// Biomes returns the id-to-metadata biome lookup.
func (t *TerrainData) Biomes() *biome.Table { return t.biomes }

// Config returns the configuration the terrain was generated from.
func (t *TerrainData) Config() Config { return t.cfg }

// Stats returns the generation statistics.
func (t *TerrainData) Stats() Stats { return t.stats }

type generator struct {
	cfg   Config
	g     *hexgrid.Graph
	table *biome.Table
	stats Stats
}

// Generate runs the full pipeline. Identical (seed, settings) always produce
// an identical output graph. The call is synchronous and owns its graph for
// its entire lifetime; concurrent calls are independent.
func Generate(cfg Config) (*TerrainData, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	table, err := biome.NewTable(cfg.Params.Biomes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	g, err := hexgrid.Build(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	gen := &generator{cfg: cfg, g: g, table: table}
	if err := gen.shapeIsland(); err != nil {
		return nil, err
	}
	gen.assignCornerElevations()
	gen.classifyWater()
	gen.redistributeElevations()
	gen.calculateDownslopes()
	gen.traceRivers()
	gen.assignMoisture()
	if err := gen.assignBiomes(); err != nil {
		return nil, err
	}
	gen.collectStats()

	return &TerrainData{graph: g, biomes: table, cfg: cfg, stats: gen.stats}, nil
}

func (gen *generator) collectStats() {
	for i := range gen.g.Corners {
		if gen.g.Corners[i].River > 0 {
			gen.stats.RiverCorners++
		}
	}
	for i := range gen.g.Centers {
		c := &gen.g.Centers[i]
		if c.Sea {
			gen.stats.SeaCenters++
		} else if c.Lake() {
			gen.stats.LakeCenters++
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
