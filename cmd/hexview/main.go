//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"hexterra/internal/app"
	"hexterra/internal/config"
	"hexterra/internal/render"
	"hexterra/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	gen := terrain.DefaultConfig()
	if cfg.Settings != "" {
		var err error
		gen, err = config.Load(cfg.Settings)
		if err != nil {
			log.Fatal(err)
		}
	}
	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})
	if seedSet || cfg.Settings == "" {
		gen.Seed = cfg.Seed
	}

	game := app.New(gen, cfg.Scale, render.ParseViewMode(cfg.Mode))
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("hexterra")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
