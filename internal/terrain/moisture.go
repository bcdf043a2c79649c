package terrain

import (
	"sort"

	"hexterra/pkg/hexgrid"
)

const moistureDecay = 0.9 // retained fraction per hop

// assignMoisture seeds moisture at fresh-water corners (rivers and lakes),
// relaxes it outward with a per-hop decay that only ever raises a neighbor's
// value, optionally saturates sea and coast corners, then redistributes the
// eligible corners linearly over [0, 1] and averages per-cell moisture.
func (gen *generator) assignMoisture() {
	corners := gen.g.Corners
	centers := gen.g.Centers
	p := gen.cfg.Params

	gen.relaxMoisture(gen.seedMoisture())

	if p.SeaMoisture {
		for id := range corners {
			if corners[id].Sea || corners[id].Coast {
				corners[id].Moisture = 1
			}
		}
	}

	gen.redistributeMoisture()

	for ci := range centers {
		sum := 0.0
		for _, cid := range centers[ci].Corners {
			sum += corners[cid].Moisture
		}
		centers[ci].Moisture = sum / 6
	}
}

// seedMoisture sets initial corner moisture: river corners get flow-scaled
// moisture capped at maxRiverMoisture, other fresh-water corners get 1, the
// rest get 0. Returns the seeded corners as the relaxation frontier.
func (gen *generator) seedMoisture() []hexgrid.CornerID {
	corners := gen.g.Corners
	p := gen.cfg.Params

	queue := make([]hexgrid.CornerID, 0, len(corners))
	for id := range corners {
		c := &corners[id]
		if !c.Sea && (c.Water || c.River > 0) {
			if c.River > 0 {
				m := p.RiverMoistureFactor * float64(c.River)
				if m > maxRiverMoisture {
					m = maxRiverMoisture
				}
				c.Moisture = m
			} else {
				c.Moisture = 1
			}
			queue = append(queue, hexgrid.CornerID(id))
		} else {
			c.Moisture = 0
		}
	}
	return queue
}

// relaxMoisture spreads moisture outward from the frontier with a per-hop
// decay. A neighbor is updated only when the decayed value exceeds its
// current one, so no corner's moisture ever decreases during relaxation.
func (gen *generator) relaxMoisture(queue []hexgrid.CornerID) {
	corners := gen.g.Corners

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		next := moistureDecay * corners[id].Moisture
		for _, n := range corners[id].Neighbors {
			if next > corners[n].Moisture {
				corners[n].Moisture = next
				queue = append(queue, n)
			}
		}
	}
}

// redistributeMoisture remaps the sorted moisture of eligible corners onto an
// even [0, 1] spread. Sea corners are excluded, and coast corners too when
// they already got full sea moisture.
func (gen *generator) redistributeMoisture() {
	corners := gen.g.Corners
	p := gen.cfg.Params

	eligible := make([]hexgrid.CornerID, 0, len(corners))
	for id := range corners {
		if corners[id].Sea {
			continue
		}
		if p.SeaMoisture && corners[id].Coast {
			continue
		}
		eligible = append(eligible, hexgrid.CornerID(id))
	}

	switch len(eligible) {
	case 0:
		return
	case 1:
		corners[eligible[0]].Moisture = clamp01(corners[eligible[0]].Moisture)
		return
	}

	sort.Slice(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if corners[a].Moisture != corners[b].Moisture {
			return corners[a].Moisture < corners[b].Moisture
		}
		return a < b
	})

	n := float64(len(eligible) - 1)
	for i, id := range eligible {
		corners[id].Moisture = float64(i) / n
	}
}
