package engine

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/wirelight/internal/core"
)

// Edge joins two neighbouring cells. Weight orders edges for Kruskal.
type Edge struct {
	A, B   int
	Weight int
	Axis   core.Axis
}

// Bias holds the maximum random edge weight per axis. A zero field means
// the topology's default maximum. The axis with the smaller maximum tends
// to sort first and therefore dominates the generated tree.
type Bias struct {
	Horizontal int
	Vertical   int
}

func (b Bias) maxFor(axis core.Axis, def int) int {
	m := def
	switch axis {
	case core.AxisHorizontal:
		if b.Horizontal > 0 {
			m = b.Horizontal
		}
	case core.AxisVertical:
		if b.Vertical > 0 {
			m = b.Vertical
		}
	}
	if m < 1 {
		m = 1
	}
	return m
}

// BiasPreset names a canned weight skew.
type BiasPreset string

const (
	BiasNone       BiasPreset = "none"
	BiasHorizontal BiasPreset = "horizontal"
	BiasVertical   BiasPreset = "vertical"
)

// Presets lists the known presets in display order.
func Presets() []BiasPreset {
	return []BiasPreset{BiasNone, BiasHorizontal, BiasVertical}
}

// ParseBiasPreset validates a preset name. The empty string means none.
func ParseBiasPreset(s string) (BiasPreset, error) {
	switch p := BiasPreset(s); p {
	case "", BiasNone:
		return BiasNone, nil
	case BiasHorizontal, BiasVertical:
		return p, nil
	default:
		return BiasNone, fmt.Errorf("engine: unknown bias preset %q", s)
	}
}

// For returns the weight maxima for a width x height grid. The favoured
// axis draws weights below a grid dimension while the other axis draws
// from ten times the cell count.
func (p BiasPreset) For(width, height int) Bias {
	cells := width * height
	switch p {
	case BiasHorizontal:
		return Bias{Horizontal: height, Vertical: cells * 10}
	case BiasVertical:
		return Bias{Horizontal: cells * 10, Vertical: width}
	default:
		return Bias{}
	}
}

// CandidateEdges returns one edge per pair of geometric neighbours, emitted
// from the lower-indexed cell in row-major order, each with a random weight
// in [0, max) for its axis.
func CandidateEdges(g *Grid, rng *rand.Rand, bias Bias) []Edge {
	def := g.topo.DefaultWeight(g.Len())
	edges := make([]Edge, 0, g.Len()*g.Directions()/2)
	for i := range g.cells {
		for d, nb := range g.cells[i].neighbors {
			if nb <= i {
				continue
			}
			axis := g.topo.Axis(core.Dir(d))
			edges = append(edges, Edge{
				A:      i,
				B:      nb,
				Weight: rng.Intn(bias.maxFor(axis, def)),
				Axis:   axis,
			})
		}
	}
	return edges
}
