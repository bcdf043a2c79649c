package terrain

import (
	"hexterra/pkg/core"
	"hexterra/pkg/hexgrid"
)

// traceRivers runs a seeded batch of spawn attempts proportional to map size.
// Each attempt picks a random corner inside the spawn elevation window and
// walks its downslope chain to a coast corner or a sink, accumulating flow on
// both endpoints of every step. A step from one water corner straight into
// another aborts the walk so rivers never carve through lakes; flow already
// applied stays.
func (gen *generator) traceRivers() {
	corners := gen.g.Corners
	p := gen.cfg.Params

	attempts := int(p.RiverAttempts * float64(gen.cfg.Width*gen.cfg.Height))
	rng := core.NewRNG(core.SaltSeed(p.RiverSeed, "rivers"))

	for a := 0; a < attempts; a++ {
		id := hexgrid.CornerID(rng.IntN(len(corners)))
		c := &corners[id]
		if c.Sea || c.Elevation < p.RiverSpawnMin || c.Elevation > p.RiverSpawnMax {
			continue
		}
		gen.traceRiver(id)
	}
}

// traceRiver walks one downslope chain from the spawn corner, accumulating
// flow on both endpoints of every step taken.
func (gen *generator) traceRiver(id hexgrid.CornerID) {
	corners := gen.g.Corners

	cur := id
	for !corners[cur].Coast {
		next := corners[cur].Downslope
		if next == cur {
			break
		}
		if corners[cur].Water && corners[next].Water {
			break
		}
		corners[cur].River++
		corners[next].River++
		cur = next
	}
}
