package engine

import "github.com/vovakirdan/wirelight/internal/core"

// State is a coarse summary of a puzzle's progress.
type State string

const (
	StatePlaying State = "playing"
	StateSolved  State = "solved"
	StateBroken  State = "unsolvable" // generated wiring is a forest
)

// Snapshot captures the complete puzzle state for determinism testing and
// for reporting. Stubs holds one bitmask per cell in row-major order.
type Snapshot struct {
	Topology   string
	Width      int
	Height     int
	Seed       int64
	Station    core.Coord
	Diameter   int
	Radius     int
	Lit        int
	Cells      int
	Components int
	Moves      int
	Ticks      int
	Stubs      []uint8
	State      State
}

// Snapshot returns the current puzzle snapshot.
func (p *Puzzle) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case p.IsSolved():
		state = StateSolved
	case !p.tree.Spanning():
		state = StateBroken
	}

	stubs := make([]uint8, p.grid.Len())
	for i := range p.grid.cells {
		stubs[i] = p.grid.cells[i].Mask()
	}

	return Snapshot{
		Topology:   p.topo.ID(),
		Width:      p.grid.Width(),
		Height:     p.grid.Height(),
		Seed:       p.cfg.Seed,
		Station:    p.Station(),
		Diameter:   p.diameter,
		Radius:     p.radius,
		Lit:        p.lit,
		Cells:      p.grid.Len(),
		Components: p.tree.Components,
		Moves:      p.moves,
		Ticks:      p.ticks,
		Stubs:      stubs,
		State:      state,
	}
}
