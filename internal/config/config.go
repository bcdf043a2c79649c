// Package config reads generator settings from a YAML file. Absent keys keep
// the defaults from terrain.DefaultConfig, so a settings file only needs to
// name what it changes.
package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"hexterra/internal/biome"
	"hexterra/internal/noisefield"
	"hexterra/internal/terrain"
)

type noiseSection struct {
	Algorithm   string  `yaml:"algorithm"`
	Octaves     int     `yaml:"octaves"`
	Frequency   float64 `yaml:"frequency"`
	Persistence float64 `yaml:"persistence"`
}

type biomeEntry struct {
	Name        string   `yaml:"name"`
	Color       string   `yaml:"color"`
	Tags        []string `yaml:"tags"`
	Moisture    []int    `yaml:"moisture"`
	Temperature []int    `yaml:"temperature"`
}

type file struct {
	Map struct {
		Width  int   `yaml:"width"`
		Height int   `yaml:"height"`
		Seed   int64 `yaml:"seed"`
	} `yaml:"map"`
	Island struct {
		LandRatio     float64      `yaml:"land_ratio"`
		LakeThreshold float64      `yaml:"lake_threshold"`
		Noise         noiseSection `yaml:"noise"`
		Falloff       struct {
			Mode  string  `yaml:"mode"`
			Power float64 `yaml:"power"`
		} `yaml:"falloff"`
	} `yaml:"island"`
	Elevation struct {
		PeakMultiplier float64 `yaml:"peak_multiplier"`
	} `yaml:"elevation"`
	Rivers struct {
		Seed     int64   `yaml:"seed"`
		SpawnMin float64 `yaml:"spawn_min"`
		SpawnMax float64 `yaml:"spawn_max"`
		Attempts float64 `yaml:"attempts_per_cell"`
	} `yaml:"rivers"`
	Moisture struct {
		RiverFactor float64 `yaml:"river_factor"`
		SeaMoisture bool    `yaml:"sea_moisture"`
	} `yaml:"moisture"`
	Biomes struct {
		Noise              noiseSection `yaml:"noise"`
		MoisturePerturb    float64      `yaml:"moisture_perturb"`
		TemperaturePerturb float64      `yaml:"temperature_perturb"`
		Main               *biomeEntry  `yaml:"main"`
		Subs               []biomeEntry `yaml:"subs"`
	} `yaml:"biomes"`
}

// Load reads a settings file and returns the resulting generation config.
// Validation of numeric ranges is left to terrain.Generate; Load only fails
// on unreadable files, malformed YAML, and unparsable biome entries.
func Load(path string) (terrain.Config, error) {
	cfg := terrain.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	f := fromConfig(cfg)
	if err := yaml.Unmarshal(data, &f); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return f.apply(cfg)
}

// fromConfig pre-fills the file representation so keys absent from the YAML
// keep their default values.
func fromConfig(cfg terrain.Config) file {
	var f file
	p := cfg.Params

	f.Map.Width = cfg.Width
	f.Map.Height = cfg.Height
	f.Map.Seed = cfg.Seed

	f.Island.LandRatio = p.LandRatio
	f.Island.LakeThreshold = p.LakeThreshold
	f.Island.Noise = noiseSection(p.ShapeNoise)
	f.Island.Falloff.Mode = p.ShapeFalloff.Mode
	f.Island.Falloff.Power = p.ShapeFalloff.Power

	f.Elevation.PeakMultiplier = p.PeakMultiplier

	f.Rivers.Seed = p.RiverSeed
	f.Rivers.SpawnMin = p.RiverSpawnMin
	f.Rivers.SpawnMax = p.RiverSpawnMax
	f.Rivers.Attempts = p.RiverAttempts

	f.Moisture.RiverFactor = p.RiverMoistureFactor
	f.Moisture.SeaMoisture = p.SeaMoisture

	f.Biomes.Noise = noiseSection(p.BiomeNoise)
	f.Biomes.MoisturePerturb = p.MoisturePerturb
	f.Biomes.TemperaturePerturb = p.TemperaturePerturb
	return f
}

func (f file) apply(cfg terrain.Config) (terrain.Config, error) {
	cfg.Width = f.Map.Width
	cfg.Height = f.Map.Height
	cfg.Seed = f.Map.Seed

	p := &cfg.Params
	p.LandRatio = f.Island.LandRatio
	p.LakeThreshold = f.Island.LakeThreshold
	p.ShapeNoise = noisefield.Params(f.Island.Noise)
	p.ShapeFalloff.Mode = f.Island.Falloff.Mode
	p.ShapeFalloff.Power = f.Island.Falloff.Power

	p.PeakMultiplier = f.Elevation.PeakMultiplier

	p.RiverSeed = f.Rivers.Seed
	p.RiverSpawnMin = f.Rivers.SpawnMin
	p.RiverSpawnMax = f.Rivers.SpawnMax
	p.RiverAttempts = f.Rivers.Attempts

	p.RiverMoistureFactor = f.Moisture.RiverFactor
	p.SeaMoisture = f.Moisture.SeaMoisture

	p.BiomeNoise = noisefield.Params(f.Biomes.Noise)
	p.MoisturePerturb = f.Biomes.MoisturePerturb
	p.TemperaturePerturb = f.Biomes.TemperaturePerturb

	// A settings file that names a main biome replaces the whole table spec.
	if f.Biomes.Main != nil {
		main, err := f.Biomes.Main.toEntry(false)
		if err != nil {
			return cfg, err
		}
		subs := make([]biome.Entry, 0, len(f.Biomes.Subs))
		for _, raw := range f.Biomes.Subs {
			sub, err := raw.toEntry(true)
			if err != nil {
				return cfg, err
			}
			subs = append(subs, sub)
		}
		p.Biomes = biome.TableSpec{Main: main, Subs: subs}
	}

	return cfg, nil
}

func (e biomeEntry) toEntry(sub bool) (biome.Entry, error) {
	entry := biome.Entry{Name: e.Name, Tags: e.Tags}

	c, err := parseColor(e.Color)
	if err != nil {
		return entry, fmt.Errorf("config: biome %q: %w", e.Name, err)
	}
	entry.Color = c

	if sub {
		m, err := parseRange("moisture", e.Moisture)
		if err != nil {
			return entry, fmt.Errorf("config: biome %q: %w", e.Name, err)
		}
		t, err := parseRange("temperature", e.Temperature)
		if err != nil {
			return entry, fmt.Errorf("config: biome %q: %w", e.Name, err)
		}
		entry.Moisture = m
		entry.Temperature = t
	}
	return entry, nil
}

func parseRange(axis string, raw []int) (biome.Range, error) {
	if len(raw) != 2 {
		return biome.Range{}, fmt.Errorf("%s range needs exactly two bucket indices, got %d", axis, len(raw))
	}
	return biome.Range{Lo: raw[0], Hi: raw[1]}, nil
}

func parseColor(s string) (color.NRGBA, error) {
	if s == "" {
		return color.NRGBA{A: 255}, nil
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q, want #rrggbb", s)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
