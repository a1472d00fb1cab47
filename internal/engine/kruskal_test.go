package engine_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wirelight/internal/core"
	"github.com/vovakirdan/wirelight/internal/dsu"
	"github.com/vovakirdan/wirelight/internal/engine"
	"github.com/vovakirdan/wirelight/internal/registry"
	"github.com/vovakirdan/wirelight/internal/topology"
)

func TestCandidateEdgesOnePerPair(t *testing.T) {
	tests := []struct {
		topo registry.Topology
		w, h int
		want int
	}{
		// square: (w-1)*h horizontal + w*(h-1) vertical
		{topology.Square{}, 4, 3, 3*3 + 4*2},
		{topology.Square{}, 1, 1, 0},
		// hex: (w-1)*h lateral, plus 2 diagonals per cell per row gap minus
		// the ones falling off a side: each row gap has 2w-1 diagonals.
		{topology.Hex{}, 4, 3, 3*3 + 2*(2*4-1)},
	}
	for _, tt := range tests {
		g := newGrid(t, tt.topo, tt.w, tt.h)
		edges := engine.CandidateEdges(g, rand.New(rand.NewSource(1)), engine.Bias{})
		assert.Len(t, edges, tt.want, "%s %dx%d", tt.topo.ID(), tt.w, tt.h)

		seen := map[[2]int]bool{}
		for _, e := range edges {
			require.Less(t, e.A, e.B)
			_, ok := g.DirectionTo(e.A, e.B)
			require.True(t, ok, "edge %+v joins non-neighbours", e)
			key := [2]int{e.A, e.B}
			require.False(t, seen[key], "duplicate edge %+v", e)
			seen[key] = true
		}
	}
}

func TestCandidateEdgesRespectBias(t *testing.T) {
	g := newGrid(t, topology.Square{}, 6, 6)
	bias := engine.Bias{Horizontal: 3, Vertical: 1000}
	for seed := int64(0); seed < 5; seed++ {
		for _, e := range engine.CandidateEdges(g, rand.New(rand.NewSource(seed)), bias) {
			switch e.Axis {
			case core.AxisHorizontal:
				assert.Less(t, e.Weight, 3)
			case core.AxisVertical:
				assert.Less(t, e.Weight, 1000)
			}
			assert.GreaterOrEqual(t, e.Weight, 0)
		}
	}
}

func TestSpanningTreeIsTree(t *testing.T) {
	for _, topo := range []registry.Topology{topology.Square{}, topology.Hex{}} {
		for seed := int64(0); seed < 25; seed++ {
			g := newGrid(t, topo, 7, 5)
			edges := engine.CandidateEdges(g, rand.New(rand.NewSource(seed)), engine.Bias{})
			forest := engine.SpanningTree(g.Len(), edges)

			require.True(t, forest.Spanning(), "%s seed %d", topo.ID(), seed)
			require.Len(t, forest.Edges, g.Len()-1)

			// post-hoc cycle check over the accepted edges
			sets := dsu.New(g.Len())
			for _, e := range forest.Edges {
				require.True(t, sets.Union(e.A, e.B), "%s seed %d: edge %+v closes a cycle", topo.ID(), seed, e)
			}
			assert.Equal(t, 1, sets.Sets())
		}
	}
}

func TestSpanningTreeMinimal(t *testing.T) {
	// 2x2 square: the heaviest of the four edges must be dropped.
	edges := []engine.Edge{
		{A: 0, B: 1, Weight: 4},
		{A: 0, B: 2, Weight: 1},
		{A: 1, B: 3, Weight: 9},
		{A: 2, B: 3, Weight: 2},
	}
	forest := engine.SpanningTree(4, edges)
	require.Len(t, forest.Edges, 3)

	total := 0
	for _, e := range forest.Edges {
		total += e.Weight
		assert.NotEqual(t, 9, e.Weight)
	}
	assert.Equal(t, 7, total)
	// accepted in ascending weight order
	assert.Equal(t, []int{1, 2, 4}, []int{forest.Edges[0].Weight, forest.Edges[1].Weight, forest.Edges[2].Weight})
}

func TestSpanningTreeTiesKeepInputOrder(t *testing.T) {
	// A triangle with equal weights: the first two edges win, the third
	// would close the cycle.
	edges := []engine.Edge{
		{A: 1, B: 2, Weight: 5},
		{A: 0, B: 1, Weight: 5},
		{A: 0, B: 2, Weight: 5},
	}
	forest := engine.SpanningTree(3, edges)
	require.Len(t, forest.Edges, 2)
	assert.Equal(t, edges[0], forest.Edges[0])
	assert.Equal(t, edges[1], forest.Edges[1])
}

func TestSpanningTreeDisconnectedIsForest(t *testing.T) {
	// two islands {0,1} and {2,3,4}
	edges := []engine.Edge{
		{A: 0, B: 1, Weight: 3},
		{A: 2, B: 3, Weight: 1},
		{A: 3, B: 4, Weight: 2},
		{A: 2, B: 4, Weight: 0},
	}
	forest := engine.SpanningTree(5, edges)
	assert.False(t, forest.Spanning())
	assert.Equal(t, 2, forest.Components)
	assert.Len(t, forest.Edges, 3)
}

func TestSpanningTreeEmpty(t *testing.T) {
	forest := engine.SpanningTree(1, nil)
	assert.True(t, forest.Spanning())
	assert.Empty(t, forest.Edges)

	forest = engine.SpanningTree(0, nil)
	assert.Empty(t, forest.Edges)
}
