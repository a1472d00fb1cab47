package engine_test

import (
	"testing"

	"github.com/vovakirdan/wirelight/internal/core"
	"github.com/vovakirdan/wirelight/internal/engine"
	"github.com/vovakirdan/wirelight/internal/registry"
	"github.com/vovakirdan/wirelight/internal/topology"
)

type link struct{ a, b core.Coord }

func newGrid(t *testing.T, topo registry.Topology, w, h int) *engine.Grid {
	t.Helper()
	g, err := engine.NewGrid(topo, w, h)
	if err != nil {
		t.Fatalf("NewGrid(%s, %d, %d) failed: %v", topo.ID(), w, h, err)
	}
	return g
}

func idx(t *testing.T, g *engine.Grid, c core.Coord) int {
	t.Helper()
	i, ok := g.Index(c)
	if !ok {
		t.Fatalf("%v is off the grid", c)
	}
	return i
}

func wire(t *testing.T, g *engine.Grid, links ...link) {
	t.Helper()
	for _, l := range links {
		if !g.ApplyTreeEdge(idx(t, g, l.a), idx(t, g, l.b)) {
			t.Fatalf("%v and %v are not neighbours", l.a, l.b)
		}
	}
}

// uFixture wires a 3x3 square grid as an upside-down U rooted at (0,0):
//
//	(1,0)-(0,0)
//	        |
//	      (0,1)
//	        |
//	      (0,2)-(1,2)-(2,2)
//
// The longest path runs from (1,0) to (2,2) and has 5 hops.
func uFixture(t *testing.T) *engine.Grid {
	g := newGrid(t, topology.Square{}, 3, 3)
	wire(t, g,
		link{core.C(0, 0), core.C(1, 0)},
		link{core.C(0, 0), core.C(0, 1)},
		link{core.C(0, 1), core.C(0, 2)},
		link{core.C(0, 2), core.C(1, 2)},
		link{core.C(1, 2), core.C(2, 2)},
	)
	return g
}

// combFixture wires a 3x3 square grid as a comb: the top row is joined
// left to right and every column hangs down from it. Diameter 6, radius 4,
// and every cell is within 4 hops of (0,0).
func combFixture(t *testing.T) *engine.Grid {
	g := newGrid(t, topology.Square{}, 3, 3)
	wire(t, g,
		link{core.C(0, 0), core.C(1, 0)},
		link{core.C(1, 0), core.C(2, 0)},
	)
	for x := 0; x < 3; x++ {
		wire(t, g,
			link{core.C(x, 0), core.C(x, 1)},
			link{core.C(x, 1), core.C(x, 2)},
		)
	}
	return g
}

// bfsDistances computes hop distances from src over wire connections
// without using the engine's own traversal.
func bfsDistances(g *engine.Grid, src int) map[int]int {
	dist := map[int]int{src: 0}
	frontier := []int{src}
	for len(frontier) > 0 {
		var next []int
		for _, cur := range frontier {
			for d := 0; d < g.Directions(); d++ {
				nb := g.Neighbor(cur, core.Dir(d))
				if nb < 0 || !g.WireConnected(cur, nb) {
					continue
				}
				if _, seen := dist[nb]; seen {
					continue
				}
				dist[nb] = dist[cur] + 1
				next = append(next, nb)
			}
		}
		frontier = next
	}
	return dist
}
