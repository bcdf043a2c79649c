package terrain

import (
	"math"
	"sort"

	"hexterra/pkg/hexgrid"
)

const (
	elevationStep    = 0.01 // cost of traversing one corner edge
	landEdgePenalty  = 1.0  // extra cost when both endpoints are land
	maxRiverMoisture = 3.0
)

// assignCornerElevations flood-fills elevation from the map border inward.
// Border corners seed at zero; every edge traversal costs a small step plus a
// penalty on land-to-land edges, so interior land rises while water stays
// flat. A corner is relaxed only when the candidate value is strictly lower
// than its current one.
func (gen *generator) assignCornerElevations() {
	corners := gen.g.Corners

	queue := make([]hexgrid.CornerID, 0, len(corners))
	for id := range corners {
		if corners[id].Border {
			corners[id].Elevation = 0
			queue = append(queue, hexgrid.CornerID(id))
		} else {
			corners[id].Elevation = math.Inf(1)
		}
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		for _, n := range corners[id].Neighbors {
			candidate := corners[id].Elevation + elevationStep
			if !corners[id].Water && !corners[n].Water {
				candidate += landEdgePenalty
			}
			if candidate < corners[n].Elevation {
				corners[n].Elevation = candidate
				queue = append(queue, n)
			}
		}
	}
}

// redistributeElevations remaps the sorted elevations of all non-sea,
// non-coast corners onto a concave curve so lowlands dominate and peaks stay
// rare, forces sea and coast corners to zero, averages center elevations and
// levels every connected lake component to its minimum.
func (gen *generator) redistributeElevations() {
	corners := gen.g.Corners
	centers := gen.g.Centers

	eligible := make([]hexgrid.CornerID, 0, len(corners))
	for id := range corners {
		if !corners[id].Sea && !corners[id].Coast {
			eligible = append(eligible, hexgrid.CornerID(id))
		}
	}
	sort.Slice(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if corners[a].Elevation != corners[b].Elevation {
			return corners[a].Elevation < corners[b].Elevation
		}
		return a < b
	})

	scale := gen.cfg.Params.PeakMultiplier
	n := float64(len(eligible))
	for i, id := range eligible {
		x := math.Sqrt(scale) - math.Sqrt(scale*(1-float64(i)/n))
		if x > 1 {
			x = 1
		}
		corners[id].Elevation = x
	}

	for id := range corners {
		if corners[id].Sea || corners[id].Coast {
			corners[id].Elevation = 0
		}
	}

	for ci := range centers {
		sum := 0.0
		for _, cid := range centers[ci].Corners {
			sum += corners[cid].Elevation
		}
		centers[ci].Elevation = sum / 6
	}

	gen.flattenLakes()
}

// flattenLakes levels each connected component of lake centers to the lowest
// elevation found in it. Corners enclosed by a single component are leveled
// with it; shore corners keep their land elevation.
func (gen *generator) flattenLakes() {
	centers := gen.g.Centers
	corners := gen.g.Corners

	component := make([]int, len(centers))
	for i := range component {
		component[i] = -1
	}
	var levels []float64

	for ci := range centers {
		if !centers[ci].Lake() || component[ci] != -1 {
			continue
		}

		comp := len(levels)
		low := centers[ci].Elevation
		queue := []hexgrid.CenterID{hexgrid.CenterID(ci)}
		component[ci] = comp
		members := []hexgrid.CenterID{}

		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			members = append(members, id)
			if centers[id].Elevation < low {
				low = centers[id].Elevation
			}
			for _, n := range centers[id].Neighbors {
				if n == hexgrid.NoCenter || component[n] != -1 || !centers[n].Lake() {
					continue
				}
				component[n] = comp
				queue = append(queue, n)
			}
		}

		for _, id := range members {
			centers[id].Elevation = low
		}
		levels = append(levels, low)
	}

	for id := range corners {
		touches := corners[id].Touches
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
		if interior {
			corners[id].Elevation = levels[comp]
		}
	}
}
