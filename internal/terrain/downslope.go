package terrain

import "hexterra/pkg/hexgrid"

// calculateDownslopes points every corner at its lowest neighbor, or at
// itself when no neighbor is lower. Equal elevations break ties toward the
// lowest corner id, which keeps downslope chains cycle-free across flat
// regions: the (elevation, id) key strictly decreases along a chain until it
// reaches a sink.
func (gen *generator) calculateDownslopes() {
	corners := gen.g.Corners

	for id := range corners {
		best := hexgrid.CornerID(id)
		for _, n := range corners[id].Neighbors {
			if corners[n].Elevation < corners[best].Elevation ||
				(corners[n].Elevation == corners[best].Elevation && n < best) {
				best = n
			}
		}
		corners[id].Downslope = best
	}
}
