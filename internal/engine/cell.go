package engine

import "github.com/vovakirdan/wirelight/internal/core"

// Cell is one grid position. Stubs are indexed by direction, clockwise.
type Cell struct {
	Coord        core.Coord
	Stubs        []bool
	Station      bool
	Lit          bool
	Distance     int // hop count from the station after the last propagation
	RotationSeed int // clockwise turns applied by the scramble

	neighbors []int // cell index per direction, -1 when off the grid
}

// RotateClockwise turns the cell one step: the stub facing direction d
// moves to face direction d+1.
func (c *Cell) RotateClockwise() {
	n := len(c.Stubs)
	if n == 0 {
		return
	}
	last := c.Stubs[n-1]
	copy(c.Stubs[1:], c.Stubs[:n-1])
	c.Stubs[0] = last
}

// Stub reports whether a wire leaves the cell in direction d.
func (c *Cell) Stub(d core.Dir) bool {
	return int(d) < len(c.Stubs) && c.Stubs[d]
}

// Degree returns the number of stubs set.
func (c *Cell) Degree() int {
	n := 0
	for _, s := range c.Stubs {
		if s {
			n++
		}
	}
	return n
}

// Mask packs the stubs into a bitmask, bit d for direction d.
func (c *Cell) Mask() uint8 {
	var m uint8
	for d, s := range c.Stubs {
		if s {
			m |= 1 << d
		}
	}
	return m
}

// clone returns a copy that shares no slices with c.
func (c *Cell) clone() Cell {
	out := *c
	out.Stubs = append([]bool(nil), c.Stubs...)
	out.neighbors = append([]int(nil), c.neighbors...)
	return out
}

func (c *Cell) clearWiring() {
	for d := range c.Stubs {
		c.Stubs[d] = false
	}
}
