package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Settings string
	Seed     int64
	Scale    int
	Mode     string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Seed: 1337, Scale: 8, Mode: "biome"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Settings, "config", c.Settings, "path to a YAML settings file")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "world seed")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per world unit")
	fs.StringVar(&c.Mode, "mode", c.Mode, "initial view: biome, elevation or moisture")
}
