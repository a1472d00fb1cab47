package engine

// Propagate recomputes lit state from the power station at source.
//
// Every other cell is first reset to unlit with distance 0. A breadth-first
// walk over wire connections then records each reached cell's hop distance
// and lights it when that distance is within radius. The walk does not stop
// at the radius; only the lighting decision does. Returns the lit count.
func Propagate(g *Grid, source, radius int) int {
	for i := range g.cells {
		if i == source {
			continue
		}
		g.cells[i].Lit = false
		g.cells[i].Distance = 0
	}

	lit := 0
	g.walk(source, func(idx, dist int) {
		c := &g.cells[idx]
		c.Distance = dist
		c.Lit = dist <= radius
		if c.Lit {
			lit++
		}
	})
	return lit
}

// LitCount counts lit cells.
func (g *Grid) LitCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Lit {
			n++
		}
	}
	return n
}
