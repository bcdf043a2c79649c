package terrain

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"hexterra/internal/biome"
	"hexterra/pkg/hexgrid"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	cfg.Seed = 99
	return cfg
}

func mustGenerate(t *testing.T, cfg Config) *TerrainData {
	t.Helper()
	data, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return data
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := testConfig()
	a := mustGenerate(t, cfg)
	b := mustGenerate(t, cfg)

	if !reflect.DeepEqual(a.Graph(), b.Graph()) {
		t.Fatal("two runs with identical seed and settings produced different graphs")
	}
	if a.Stats() != b.Stats() {
		t.Fatalf("stats diverged: %+v vs %+v", a.Stats(), b.Stats())
	}

	cfg.Seed = 100
	c := mustGenerate(t, cfg)
	if reflect.DeepEqual(a.Graph(), c.Graph()) {
		t.Fatal("different seeds produced identical graphs")
	}
}

func TestElevationBounds(t *testing.T) {
	data := mustGenerate(t, testConfig())
	g := data.Graph()

	for id := range g.Corners {
		c := &g.Corners[id]
		if c.Elevation < 0 || c.Elevation > 1 || math.IsNaN(c.Elevation) {
			t.Fatalf("corner %d elevation %g outside [0, 1]", id, c.Elevation)
		}
		if (c.Sea || c.Coast) && c.Elevation != 0 {
			t.Fatalf("sea/coast corner %d has elevation %g, want exactly 0", id, c.Elevation)
		}
	}
	for id := range g.Centers {
		c := &g.Centers[id]
		if c.Elevation < 0 || c.Elevation > 1 || math.IsNaN(c.Elevation) {
			t.Fatalf("center %d elevation %g outside [0, 1]", id, c.Elevation)
		}
	}
}

func TestDownslopeTerminates(t *testing.T) {
	data := mustGenerate(t, testConfig())
	g := data.Graph()

	for id := range g.Corners {
		cur := hexgrid.CornerID(id)
		steps := 0
		for g.Corners[cur].Downslope != cur {
			next := g.Corners[cur].Downslope
			if g.Corners[next].Elevation > g.Corners[cur].Elevation {
				t.Fatalf("downslope from corner %d increases elevation", cur)
			}
			cur = next
			steps++
			if steps > len(g.Corners) {
				t.Fatalf("downslope chain from corner %d does not reach a sink", id)
			}
		}
	}
}

func TestLandRatioConvergence(t *testing.T) {
	cfg := testConfig()
	data := mustGenerate(t, cfg)
	s := data.Stats()

	diff := math.Abs(s.LandFraction - cfg.Params.LandRatio)
	if diff > landRatioTolerance && s.CalibrationIterations < seaLevelIterations {
		t.Fatalf("calibration stopped after %d iterations with land fraction %g (target %g)",
			s.CalibrationIterations, s.LandFraction, cfg.Params.LandRatio)
	}
	if s.SeaLevel < 0 || s.SeaLevel > 1 {
		t.Fatalf("sea level %g outside [0, 1]", s.SeaLevel)
	}
}

func TestLakeFlatness(t *testing.T) {
	data := mustGenerate(t, testConfig())
	g := data.Graph()

	component := make([]int, len(g.Centers))
	for i := range component {
		component[i] = -1
	}
	var levels []float64

	for ci := range g.Centers {
		if !g.Centers[ci].Lake() || component[ci] != -1 {
			continue
		}
		comp := len(levels)
		level := g.Centers[ci].Elevation
		queue := []hexgrid.CenterID{hexgrid.CenterID(ci)}
		component[ci] = comp
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			if g.Centers[id].Elevation != level {
				t.Fatalf("lake center %d elevation %g differs from component level %g", id, g.Centers[id].Elevation, level)
			}
			for _, n := range g.Centers[id].Neighbors {
				if n == hexgrid.NoCenter || !g.Centers[n].Lake() || component[n] != -1 {
					continue
				}
				component[n] = comp
				queue = append(queue, n)
			}
		}
		levels = append(levels, level)
	}

	// Corners enclosed entirely by one lake component sit at its level.
	for id := range g.Corners {
		touches := g.Corners[id].Touches
		if len(touches) == 0 {
			continue
		}
		comp := component[touches[0]]
		if comp == -1 {
			continue
		}
		interior := true
		for _, ce := range touches[1:] {
			if component[ce] != comp {
				interior = false
				break
			}
		}
		if interior && g.Corners[id].Elevation != levels[comp] {
			t.Fatalf("interior lake corner %d elevation %g, want component level %g",
				id, g.Corners[id].Elevation, levels[comp])
		}
	}
}

func TestWaterClassification(t *testing.T) {
	data := mustGenerate(t, testConfig())
	g := data.Graph()

	if data.Stats().SeaCenters == 0 {
		t.Fatal("a map with a border must have sea centers")
	}
	for ci := range g.Centers {
		c := &g.Centers[ci]
		if c.Sea && !c.Water {
			t.Fatalf("sea center %d not marked water", ci)
		}
		if c.Lake() && c.Sea {
			t.Fatalf("center %d is both lake and sea", ci)
		}
	}
	for id := range g.Corners {
		c := &g.Corners[id]
		if c.Border && !c.Water {
			t.Fatalf("border corner %d must be water", id)
		}
		if c.Sea && c.Coast {
			t.Fatalf("corner %d is both sea and coast", id)
		}
	}
}

func TestRiversFlowDownhill(t *testing.T) {
	data := mustGenerate(t, testConfig())
	g := data.Graph()

	if data.Stats().RiverCorners == 0 {
		t.Fatal("expected at least one river corner with default settings")
	}
	for id := range g.Corners {
		if g.Corners[id].River < 0 {
			t.Fatalf("corner %d has negative river flow", id)
		}
	}
}

func TestRiverWalksStopAtOpenWater(t *testing.T) {
	cfg := testConfig()
	data := mustGenerate(t, cfg)
	gen := &generator{cfg: cfg, g: data.Graph()}
	corners := gen.g.Corners
	p := cfg.Params

	before := make([]int, len(corners))
	want := make([]int, len(corners))
	for id := range corners {
		c := &corners[id]
		if c.Sea || c.Elevation < p.RiverSpawnMin || c.Elevation > p.RiverSpawnMax {
			continue
		}
		for i := range corners {
			before[i] = corners[i].River
		}
		gen.traceRiver(hexgrid.CornerID(id))

		// Expected walk: stop at a coast corner, a sink, or before one water
		// corner would drain straight into another.
		copy(want, before)
		cur := hexgrid.CornerID(id)
		for !corners[cur].Coast {
			next := corners[cur].Downslope
			if next == cur || (corners[cur].Water && corners[next].Water) {
				break
			}
			want[cur]++
			want[next]++
			cur = next
		}
		for i := range corners {
			if corners[i].River != want[i] {
				t.Fatalf("walk from corner %d: corner %d has flow %d, want %d", id, i, corners[i].River, want[i])
			}
		}
	}
}

func TestMoistureRelaxationNeverDecreases(t *testing.T) {
	cfg := testConfig()
	data := mustGenerate(t, cfg)
	gen := &generator{cfg: cfg, g: data.Graph()}
	corners := gen.g.Corners

	queue := gen.seedMoisture()
	if len(queue) == 0 {
		t.Fatal("expected fresh-water seed corners with default settings")
	}
	seeded := make([]float64, len(corners))
	for id := range corners {
		seeded[id] = corners[id].Moisture
	}

	gen.relaxMoisture(queue)

	for id := range corners {
		if corners[id].Moisture < seeded[id] {
			t.Fatalf("relaxation lowered corner %d moisture from %g to %g", id, seeded[id], corners[id].Moisture)
		}
	}
}

func TestMoistureBounds(t *testing.T) {
	data := mustGenerate(t, testConfig())
	g := data.Graph()

	for id := range g.Corners {
		m := g.Corners[id].Moisture
		if m < 0 || m > 1 || math.IsNaN(m) {
			t.Fatalf("corner %d moisture %g outside [0, 1]", id, m)
		}
	}
	for ci := range g.Centers {
		m := g.Centers[ci].Moisture
		if m < 0 || m > 1 || math.IsNaN(m) {
			t.Fatalf("center %d moisture %g outside [0, 1]", ci, m)
		}
	}
}

func TestBiomesAssigned(t *testing.T) {
	data := mustGenerate(t, testConfig())
	g := data.Graph()

	for ci := range g.Centers {
		c := &g.Centers[ci]
		if _, ok := data.Biomes().ByID(c.Biome); !ok {
			t.Fatalf("center %d biome id %d not in table", ci, c.Biome)
		}
		if c.Temperature < 0 || c.Temperature > 1 {
			t.Fatalf("center %d temperature %g outside [0, 1]", ci, c.Temperature)
		}
	}
}

func TestGenerateSingleCell(t *testing.T) {
	cfg := testConfig()
	cfg.Width = 1
	cfg.Height = 1
	data := mustGenerate(t, cfg)
	g := data.Graph()
	if len(g.Centers) != 1 {
		t.Fatalf("expected 1 center, got %d", len(g.Centers))
	}
	// Every corner of a single cell borders the map, so the cell is sea.
	if !g.Centers[0].Sea {
		t.Fatal("single cell must classify as sea")
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	mutations := []func(*Config){
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.Height = -2 },
		func(c *Config) { c.Params.LandRatio = 1.5 },
		func(c *Config) { c.Params.LakeThreshold = -0.1 },
		func(c *Config) { c.Params.PeakMultiplier = 0 },
		func(c *Config) { c.Params.RiverSpawnMin = 0.8; c.Params.RiverSpawnMax = 0.2 },
		func(c *Config) { c.Params.RiverSpawnMax = 1.2 },
		func(c *Config) { c.Params.RiverAttempts = -1 },
		func(c *Config) { c.Params.RiverMoistureFactor = -0.5 },
		func(c *Config) { c.Params.ShapeNoise.Octaves = 0 },
		func(c *Config) { c.Params.ShapeFalloff.Power = 0 },
		func(c *Config) { c.Params.BiomeNoise.Algorithm = "static" },
		func(c *Config) { c.Params.MoisturePerturb = -1 },
		func(c *Config) {
			c.Params.Biomes.Subs = append(c.Params.Biomes.Subs, biome.Entry{
				Name:        "broken",
				Moisture:    biome.Range{Lo: 5, Hi: 2},
				Temperature: biome.Range{Lo: 0, Hi: 1},
			})
		},
		func(c *Config) { c.Params.Biomes.Main.Name = "" },
	}

	for i, mutate := range mutations {
		cfg := testConfig()
		mutate(&cfg)
		_, err := Generate(cfg)
		if !errors.Is(err, ErrConfig) {
			t.Fatalf("case %d: error = %v, want ErrConfig", i, err)
		}
	}
}

func TestSeaMoistureSaturatesShore(t *testing.T) {
	cfg := testConfig()
	cfg.Params.SeaMoisture = true
	data := mustGenerate(t, cfg)
	g := data.Graph()
	for id := range g.Corners {
		c := &g.Corners[id]
		if (c.Sea || c.Coast) && c.Moisture != 1 {
			t.Fatalf("corner %d on the sea has moisture %g, want 1", id, c.Moisture)
		}
	}
}
