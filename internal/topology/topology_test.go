package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wirelight/internal/core"
	"github.com/vovakirdan/wirelight/internal/registry"
	"github.com/vovakirdan/wirelight/internal/topology"
)

func shapes() []registry.Topology {
	return []registry.Topology{topology.Square{}, topology.Hex{}}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"square", "hex"} {
		require.True(t, registry.Exists(id), "%s should self-register", id)
		topo, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, topo.ID())
	}
	_, err := registry.Create("triangle")
	assert.Error(t, err)
}

// Stepping in d then in the opposite of d must come back to the start,
// on every row parity. This is what makes neighbour lists symmetric.
func TestNeighborRoundTrip(t *testing.T) {
	for _, topo := range shapes() {
		n := topo.Directions()
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				c := core.C(x, y)
				for d := 0; d < n; d++ {
					dir := core.Dir(d)
					back := topo.Neighbor(topo.Neighbor(c, dir), dir.Opposite(n))
					assert.Equal(t, c, back, "%s: %v via %s", topo.ID(), c, topo.DirName(dir))
				}
			}
		}
	}
}

func TestHexRowParityOffsets(t *testing.T) {
	h := topology.Hex{}
	tests := []struct {
		name string
		from core.Coord
		dir  core.Dir
		want core.Coord
	}{
		{"even top-left", core.C(2, 2), topology.HexTopLeft, core.C(2, 1)},
		{"even top-right", core.C(2, 2), topology.HexTopRight, core.C(3, 1)},
		{"even bottom-left", core.C(2, 2), topology.HexBottomLeft, core.C(2, 3)},
		{"even bottom-right", core.C(2, 2), topology.HexBottomRight, core.C(3, 3)},
		{"odd top-left", core.C(2, 1), topology.HexTopLeft, core.C(1, 0)},
		{"odd top-right", core.C(2, 1), topology.HexTopRight, core.C(2, 0)},
		{"odd bottom-left", core.C(2, 1), topology.HexBottomLeft, core.C(1, 2)},
		{"odd bottom-right", core.C(2, 1), topology.HexBottomRight, core.C(2, 2)},
		{"left", core.C(2, 1), topology.HexLeft, core.C(1, 1)},
		{"right", core.C(2, 2), topology.HexRight, core.C(3, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Neighbor(tt.from, tt.dir))
		})
	}
}

func TestSquareOffsets(t *testing.T) {
	s := topology.Square{}
	c := core.C(1, 1)
	assert.Equal(t, core.C(0, 1), s.Neighbor(c, topology.SquareLeft))
	assert.Equal(t, core.C(1, 0), s.Neighbor(c, topology.SquareTop))
	assert.Equal(t, core.C(2, 1), s.Neighbor(c, topology.SquareRight))
	assert.Equal(t, core.C(1, 2), s.Neighbor(c, topology.SquareBottom))
}

func TestAxis(t *testing.T) {
	s := topology.Square{}
	assert.Equal(t, core.AxisHorizontal, s.Axis(topology.SquareLeft))
	assert.Equal(t, core.AxisVertical, s.Axis(topology.SquareBottom))

	h := topology.Hex{}
	assert.Equal(t, core.AxisHorizontal, h.Axis(topology.HexRight))
	for _, d := range []core.Dir{topology.HexTopLeft, topology.HexTopRight, topology.HexBottomLeft, topology.HexBottomRight} {
		assert.Equal(t, core.AxisVertical, h.Axis(d))
	}
}

func TestParseDir(t *testing.T) {
	for _, topo := range shapes() {
		for d := 0; d < topo.Directions(); d++ {
			got, ok := topo.ParseDir(topo.DirName(core.Dir(d)))
			require.True(t, ok)
			assert.Equal(t, core.Dir(d), got)
		}
		_, ok := topo.ParseDir("sideways")
		assert.False(t, ok)
	}

	d, ok := topology.Square{}.ParseDir(" Up ")
	assert.True(t, ok)
	assert.Equal(t, topology.SquareTop, d)

	d, ok = topology.Hex{}.ParseDir("BR")
	assert.True(t, ok)
	assert.Equal(t, topology.HexBottomRight, d)
}

func TestDefaultWeight(t *testing.T) {
	assert.Equal(t, 64, topology.Square{}.DefaultWeight(64))
	assert.Equal(t, 256, topology.Hex{}.DefaultWeight(64))
}
