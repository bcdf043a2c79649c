package terrain

import "hexterra/pkg/hexgrid"

// classifyWater settles the water/sea/coast flags. Border corners force their
// cells to sea; cells with enough water corners become water; sea status then
// spreads across adjacent water cells so every water body touching the map
// edge merges into one sea, leaving enclosed bodies as lakes. Corners are
// reclassified from the cells around them afterwards.
func (gen *generator) classifyWater() {
	centers := gen.g.Centers
	corners := gen.g.Corners

	waterNeeded := 6 * gen.cfg.Params.LakeThreshold

	for ci := range centers {
		c := &centers[ci]
		waterCorners := 0
		for _, cid := range c.Corners {
			if corners[cid].Border {
				c.Sea = true
				c.Water = true
				corners[cid].Water = true
			}
			if corners[cid].Water {
				waterCorners++
			}
		}
		if c.Sea || float64(waterCorners) >= waterNeeded {
			c.Water = true
		}
	}

	// Merge water bodies that touch the border into the sea.
	queue := make([]hexgrid.CenterID, 0, len(centers))
	for ci := range centers {
		if centers[ci].Sea {
			queue = append(queue, hexgrid.CenterID(ci))
		}
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, n := range centers[id].Neighbors {
			if n == hexgrid.NoCenter {
				continue
			}
			if centers[n].Water && !centers[n].Sea {
				centers[n].Sea = true
				queue = append(queue, n)
			}
		}
	}

	for ci := range centers {
		hasSea, hasLand := false, false
		for _, n := range centers[ci].Neighbors {
			if n == hexgrid.NoCenter {
				continue
			}
			if centers[n].Sea {
				hasSea = true
			} else if !centers[n].Water {
				hasLand = true
			}
		}
		centers[ci].Coast = hasSea && hasLand
	}

	for id := range corners {
		cr := &corners[id]
		touchesSea, touchesLand := false, false
		landCells := 0
		for _, ce := range cr.Touches {
			if centers[ce].Sea {
				touchesSea = true
			}
			if !centers[ce].Water {
				touchesLand = true
				landCells++
			}
		}
		cr.Sea = touchesSea && !touchesLand
		cr.Coast = touchesSea && touchesLand
		cr.Water = cr.Border || (landCells != len(cr.Touches) && !cr.Coast)
	}
}
