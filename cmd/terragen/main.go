package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"hexterra/internal/config"
	"hexterra/internal/render"
	"hexterra/internal/terrain"
)

func main() {
	settings := flag.String("config", "", "path to a YAML settings file")
	seed := flag.Int64("seed", 0, "world seed (overrides the settings file)")
	out := flag.String("out", "terrain.png", "output PNG path")
	scale := flag.Int("scale", 8, "pixels per world unit")
	mode := flag.String("mode", "biome", "layer to paint: biome, elevation or moisture")
	flag.Parse()

	cfg := terrain.DefaultConfig()
	if *settings != "" {
		var err error
		cfg, err = config.Load(*settings)
		if err != nil {
			log.Fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Seed = *seed
		}
	})

	data, err := terrain.Generate(cfg)
	if err != nil {
		log.Fatal(err)
	}

	raster := render.Rasterize(data, *scale, render.ParseViewMode(*mode))

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := png.Encode(f, raster.Image()); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}

	stats := data.Stats()
	fmt.Printf("%s: %dx%d cells, seed %d\n", *out, cfg.Width, cfg.Height, cfg.Seed)
	fmt.Printf("land %.1f%% (sea level %.3f after %d iterations)\n",
		100*stats.LandFraction, stats.SeaLevel, stats.CalibrationIterations)
	fmt.Printf("rivers %d, seas %d, lakes %d\n",
		stats.RiverCorners, stats.SeaCenters, stats.LakeCenters)
}
