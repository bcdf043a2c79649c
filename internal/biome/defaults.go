package biome

import "image/color"

// Colors for non-biome surfaces, used by consumers that paint maps.
var (
	SeaColor   = color.NRGBA{R: 32, G: 64, B: 110, A: 255}
	LakeColor  = color.NRGBA{R: 60, G: 100, B: 150, A: 255}
	CoastColor = color.NRGBA{R: 172, G: 159, B: 112, A: 255}
	RiverColor = color.NRGBA{R: 70, G: 110, B: 160, A: 255}
)

// DefaultTableSpec returns a usable classification covering the whole
// (moisture, temperature) square: grassland everywhere, overridden by the
// usual suspects at the extremes.
func DefaultTableSpec() TableSpec {
	return TableSpec{
		Main: Entry{
			Name:  "grassland",
			Color: color.NRGBA{R: 112, G: 156, B: 70, A: 255},
			Tags:  []string{"buildable"},
		},
		Subs: []Entry{
			{
				Name:        "desert",
				Color:       color.NRGBA{R: 210, G: 185, B: 120, A: 255},
				Tags:        []string{"buildable", "arid"},
				Moisture:    Range{Lo: 0, Hi: 3},
				Temperature: Range{Lo: 6, Hi: 10},
			},
			{
				Name:        "tundra",
				Color:       color.NRGBA{R: 165, G: 170, B: 160, A: 255},
				Tags:        []string{"cold"},
				Moisture:    Range{Lo: 0, Hi: 10},
				Temperature: Range{Lo: 0, Hi: 2},
			},
			{
				Name:        "forest",
				Color:       color.NRGBA{R: 62, G: 110, B: 58, A: 255},
				Tags:        []string{"buildable", "wood"},
				Moisture:    Range{Lo: 5, Hi: 8},
				Temperature: Range{Lo: 3, Hi: 8},
			},
			{
				Name:        "rainforest",
				Color:       color.NRGBA{R: 38, G: 92, B: 48, A: 255},
				Tags:        []string{"wood", "wet"},
				Moisture:    Range{Lo: 8, Hi: 10},
				Temperature: Range{Lo: 5, Hi: 10},
			},
			{
				Name:        "swamp",
				Color:       color.NRGBA{R: 80, G: 105, B: 70, A: 255},
				Tags:        []string{"wet"},
				Moisture:    Range{Lo: 8, Hi: 10},
				Temperature: Range{Lo: 2, Hi: 5},
			},
		},
	}
}
