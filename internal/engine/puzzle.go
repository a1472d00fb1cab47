// Package engine implements the wire-connection puzzle: a random spanning
// tree is laid over a grid, every cell is rotated at random, and the player
// rotates cells back until power from the station reaches every cell.
//
// The engine is single-threaded and synchronous. Every mutation re-runs
// propagation before returning, so lit and solved state are always current.
// It does no rendering and reads no input; controllers call into it.
package engine

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wirelight/internal/core"
	"github.com/vovakirdan/wirelight/internal/registry"
)

// Puzzle is one game on one grid.
type Puzzle struct {
	cfg    core.RuntimeConfig
	topo   registry.Topology
	bias   Bias
	logger *log.Logger
	rng    *rand.Rand

	grid     *Grid
	tree     Forest
	station  int
	diameter int
	radius   int
	lit      int

	moves int
	ticks int
}

// New builds, solves, measures and scrambles a fresh puzzle.
// It fails without building anything when the size is not positive or the
// station lies off the grid.
func New(cfg core.RuntimeConfig, opts ...Option) (*Puzzle, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	if !cfg.InBounds(cfg.Station) {
		return nil, fmt.Errorf("%w: %v on a %dx%d grid",
			ErrStationOutOfBounds, cfg.Station, cfg.Width, cfg.Height)
	}

	grid, err := NewGrid(o.topo, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	p := &Puzzle{
		cfg:    cfg,
		topo:   o.topo,
		bias:   o.bias,
		logger: o.logger,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		grid:   grid,
	}
	station, _ := grid.Index(cfg.Station)
	p.generate(station)
	return p, nil
}

// FromGrid wraps an already wired grid in a puzzle without generating or
// scrambling anything. The current wiring is taken as the solution and
// the radius is derived from it.
func FromGrid(g *Grid, station core.Coord, opts ...Option) (*Puzzle, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	idx, ok := g.Index(station)
	if !ok {
		return nil, fmt.Errorf("%w: %v on a %dx%d grid",
			ErrStationOutOfBounds, station, g.Width(), g.Height())
	}

	p := &Puzzle{
		cfg:    core.RuntimeConfig{Width: g.Width(), Height: g.Height(), Station: station},
		topo:   g.Topology(),
		bias:   o.bias,
		logger: o.logger,
		rng:    rand.New(rand.NewSource(0)),
		grid:   g,
	}

	links := g.Links()
	p.tree = SpanningTree(g.Len(), links)
	if len(p.tree.Edges) != len(links) {
		p.logger.Warn("wiring has cycles, diameter is approximate",
			"links", len(links), "tree_edges", len(p.tree.Edges))
	}

	for i := range g.cells {
		g.cells[i].Station = i == idx
	}
	p.station = idx
	p.diameter = Diameter(g, idx)
	p.radius = RadiusFor(p.diameter)
	p.refresh()
	return p, nil
}

// generate runs the full setup pipeline with the station at index station:
// spanning tree, wiring, radius from the solved tree, scramble, propagate.
func (p *Puzzle) generate(station int) {
	g := p.grid
	g.reset()

	edges := CandidateEdges(g, p.rng, p.bias)
	p.tree = SpanningTree(g.Len(), edges)
	if !p.tree.Spanning() {
		p.logger.Warn("spanning forest generated, puzzle cannot be solved",
			"topology", p.topo.ID(),
			"components", p.tree.Components,
			"cells", g.Len())
	}
	for _, e := range p.tree.Edges {
		g.ApplyTreeEdge(e.A, e.B)
	}

	g.cells[station].Station = true
	g.cells[station].Lit = true
	p.station = station

	p.diameter = Diameter(g, station)
	p.radius = RadiusFor(p.diameter)

	p.scramble()
	p.moves = 0
	p.ticks = 0
	p.refresh()

	h, v := p.tree.AxisCounts()
	p.logger.Debug("puzzle generated",
		"topology", p.topo.ID(),
		"size", fmt.Sprintf("%dx%d", g.Width(), g.Height()),
		"station", g.cells[station].Coord,
		"diameter", p.diameter,
		"radius", p.radius,
		"horizontal", h,
		"vertical", v)
}

// scramble turns every cell a random number of clockwise steps.
func (p *Puzzle) scramble() {
	n := p.grid.Directions()
	for i := range p.grid.cells {
		c := &p.grid.cells[i]
		c.RotationSeed = p.rng.Intn(n)
		for k := 0; k < c.RotationSeed; k++ {
			c.RotateClockwise()
		}
	}
}

func (p *Puzzle) refresh() {
	p.lit = Propagate(p.grid, p.station, p.radius)
}

// Width returns the number of columns.
func (p *Puzzle) Width() int { return p.grid.Width() }

// Height returns the number of rows.
func (p *Puzzle) Height() int { return p.grid.Height() }

// Topology returns the grid shape.
func (p *Puzzle) Topology() registry.Topology { return p.topo }

// Seed returns the seed the puzzle was generated from.
func (p *Puzzle) Seed() int64 { return p.cfg.Seed }

// Station returns the power station's cell.
func (p *Puzzle) Station() core.Coord { return p.grid.cells[p.station].Coord }

// Radius returns the lighting radius, fixed when the puzzle was generated.
func (p *Puzzle) Radius() int { return p.radius }

// Diameter returns the diameter of the solved tree.
func (p *Puzzle) Diameter() int { return p.diameter }

// LitCount returns the number of lit cells, which is also the score.
func (p *Puzzle) LitCount() int { return p.lit }

// IsSolved reports whether every cell is lit.
func (p *Puzzle) IsSolved() bool { return p.lit == p.grid.Len() }

// IsLit reports whether the cell at c is lit. Off-grid cells are never lit.
func (p *Puzzle) IsLit(c core.Coord) bool {
	cell := p.grid.At(c)
	return cell != nil && cell.Lit
}

// Moves returns the number of accepted rotations and station moves.
func (p *Puzzle) Moves() int { return p.moves }

// Ticks returns the clock value. The clock stops once the puzzle is solved.
func (p *Puzzle) Ticks() int { return p.ticks }

// Components returns the number of trees the generated wiring formed.
// Anything above 1 means the puzzle cannot be solved.
func (p *Puzzle) Components() int { return p.tree.Components }

// Tree returns the solution's edges in acceptance order.
func (p *Puzzle) Tree() []Link {
	out := make([]Link, len(p.tree.Edges))
	for i, e := range p.tree.Edges {
		out[i] = Link{
			A:      p.grid.cells[e.A].Coord,
			B:      p.grid.cells[e.B].Coord,
			Weight: e.Weight,
			Axis:   e.Axis,
		}
	}
	return out
}

// Forest returns the raw spanning forest.
func (p *Puzzle) Forest() Forest { return p.tree }

// Cell returns a copy of the cell at c.
func (p *Puzzle) Cell(c core.Coord) (Cell, bool) {
	cell := p.grid.At(c)
	if cell == nil {
		return Cell{}, false
	}
	return cell.clone(), true
}

// WireConnected reports whether the cells at a and b are joined by wire.
func (p *Puzzle) WireConnected(a, b core.Coord) bool {
	ia, okA := p.grid.Index(a)
	ib, okB := p.grid.Index(b)
	return okA && okB && p.grid.WireConnected(ia, ib)
}

// Rotate turns the cell at c one step clockwise.
func (p *Puzzle) Rotate(c core.Coord) error {
	cell := p.grid.At(c)
	if cell == nil {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	cell.RotateClockwise()
	p.moves++
	p.refresh()
	return nil
}

// MoveStation moves the power station one step in direction d. The move
// happens only if that neighbour exists and is wire-connected to the
// station; otherwise nothing changes and false is returned.
func (p *Puzzle) MoveStation(d core.Dir) bool {
	to := p.grid.Neighbor(p.station, d)
	if to < 0 || !p.grid.WireConnected(p.station, to) {
		return false
	}

	from := &p.grid.cells[p.station]
	next := &p.grid.cells[to]
	from.Station = false
	next.Station = true
	next.Lit = true
	next.Distance = 0
	p.station = to

	p.moves++
	p.refresh()
	return true
}

// Regenerate builds a new puzzle of the same size and shape with bias b.
// Like Reset, the station goes back to the origin.
func (p *Puzzle) Regenerate(b Bias) {
	p.bias = b
	p.generate(0)
}

// Reset builds a new unbiased puzzle with the station at the origin.
func (p *Puzzle) Reset() {
	p.bias = Bias{}
	p.generate(0)
}

// ForceSolve rewires every cell to the generated solution. The station
// stays where it is, so the puzzle may still need the station walked
// towards the middle of the tree before everything lights.
func (p *Puzzle) ForceSolve() {
	p.grid.ClearWiring()
	for _, e := range p.tree.Edges {
		p.grid.ApplyTreeEdge(e.A, e.B)
	}
	p.refresh()
}

// Tick advances the clock by one unless the puzzle is solved.
func (p *Puzzle) Tick() {
	if !p.IsSolved() {
		p.ticks++
	}
}

// Link is a spanning tree edge expressed in coordinates.
type Link struct {
	A, B   core.Coord
	Weight int
	Axis   core.Axis
}
