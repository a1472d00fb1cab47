package engine

import (
	"fmt"

	"github.com/vovakirdan/wirelight/internal/core"
	"github.com/vovakirdan/wirelight/internal/registry"
)

// Grid stores every cell of a puzzle in one row-major slice.
// Cells refer to each other by index; index = row*width + col.
type Grid struct {
	topo   registry.Topology
	width  int
	height int
	cells  []Cell
}

// NewGrid lays out a width x height grid for the given topology and
// computes every cell's geometric neighbours. Wiring starts empty.
func NewGrid(topo registry.Topology, width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}

	n := topo.Directions()
	g := &Grid{
		topo:   topo,
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := core.C(x, y)
			cell := &g.cells[y*width+x]
			cell.Coord = c
			cell.Stubs = make([]bool, n)
			cell.neighbors = make([]int, n)
			for d := 0; d < n; d++ {
				idx, ok := g.Index(topo.Neighbor(c, core.Dir(d)))
				if !ok {
					idx = -1
				}
				cell.neighbors[d] = idx
			}
		}
	}

	if err := g.checkSymmetric(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Grid) checkSymmetric() error {
	n := g.topo.Directions()
	for i := range g.cells {
		for d, nb := range g.cells[i].neighbors {
			if nb < 0 {
				continue
			}
			opp := core.Dir(d).Opposite(n)
			if g.cells[nb].neighbors[opp] != i {
				return fmt.Errorf("%w: %s %v -> %v has no way back",
					ErrAsymmetricTopology, g.topo.ID(), g.cells[i].Coord, g.cells[nb].Coord)
			}
		}
	}
	return nil
}

// Topology returns the grid's shape.
func (g *Grid) Topology() registry.Topology { return g.topo }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Directions returns the number of stub directions per cell.
func (g *Grid) Directions() int { return g.topo.Directions() }

// InBounds reports whether c is on the grid.
func (g *Grid) InBounds(c core.Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Index converts a coordinate to a cell index.
func (g *Grid) Index(c core.Coord) (int, bool) {
	if !g.InBounds(c) {
		return -1, false
	}
	return c.Y*g.width + c.X, true
}

// Cell returns the cell at index i.
func (g *Grid) Cell(i int) *Cell {
	return &g.cells[i]
}

// At returns the cell at coordinate c, or nil when c is off the grid.
func (g *Grid) At(c core.Coord) *Cell {
	i, ok := g.Index(c)
	if !ok {
		return nil
	}
	return &g.cells[i]
}

// Neighbor returns the index of the cell next to i in direction d, or -1.
func (g *Grid) Neighbor(i int, d core.Dir) int {
	nbs := g.cells[i].neighbors
	if int(d) >= len(nbs) {
		return -1
	}
	return nbs[d]
}

// DirectionTo returns the direction from cell a to its geometric neighbour b.
func (g *Grid) DirectionTo(a, b int) (core.Dir, bool) {
	for d, nb := range g.cells[a].neighbors {
		if nb == b {
			return core.Dir(d), true
		}
	}
	return 0, false
}

// WireConnected reports whether a and b are geometric neighbours whose
// facing stubs are both set. The relation is symmetric.
func (g *Grid) WireConnected(a, b int) bool {
	if a == b {
		return false
	}
	d, ok := g.DirectionTo(a, b)
	if !ok {
		return false
	}
	return g.cells[a].Stubs[d] && g.cells[b].Stubs[d.Opposite(g.Directions())]
}

// ApplyTreeEdge sets the two facing stubs between neighbours a and b.
// Returns false, changing nothing, if they are not neighbours.
func (g *Grid) ApplyTreeEdge(a, b int) bool {
	d, ok := g.DirectionTo(a, b)
	if !ok {
		return false
	}
	g.cells[a].Stubs[d] = true
	g.cells[b].Stubs[d.Opposite(g.Directions())] = true
	return true
}

// ClearWiring removes every stub on the grid.
func (g *Grid) ClearWiring() {
	for i := range g.cells {
		g.cells[i].clearWiring()
	}
}

// reset returns every cell to its freshly laid-out state.
func (g *Grid) reset() {
	for i := range g.cells {
		c := &g.cells[i]
		c.clearWiring()
		c.Station = false
		c.Lit = false
		c.Distance = 0
		c.RotationSeed = 0
	}
}

// wiredNeighbors appends to buf the indices wire-connected to i.
func (g *Grid) wiredNeighbors(i int, buf []int) []int {
	for _, nb := range g.cells[i].neighbors {
		if nb >= 0 && g.WireConnected(i, nb) {
			buf = append(buf, nb)
		}
	}
	return buf
}

// Links lists every wire-connected pair once, lower index first.
func (g *Grid) Links() []Edge {
	var out []Edge
	for i := range g.cells {
		for d, nb := range g.cells[i].neighbors {
			if nb > i && g.WireConnected(i, nb) {
				out = append(out, Edge{A: i, B: nb, Axis: g.topo.Axis(core.Dir(d))})
			}
		}
	}
	return out
}
