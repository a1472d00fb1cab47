package topology

import (
	"github.com/vovakirdan/wirelight/internal/core"
	"github.com/vovakirdan/wirelight/internal/registry"
)

// Hex directions, clockwise.
const (
	HexLeft core.Dir = iota
	HexTopLeft
	HexTopRight
	HexRight
	HexBottomRight
	HexBottomLeft
)

var hexNames = dirNames{"left", "top-left", "top-right", "right", "bottom-right", "bottom-left"}

// Hex is an offset ("brick") layout where odd rows sit half a cell to the
// left of even rows. Even rows reach diagonally to columns c and c+1, odd
// rows to c-1 and c.
type Hex struct{}

func init() {
	registry.Register("hex", func() registry.Topology {
		return Hex{}
	})
}

// ID returns the topology identifier.
func (Hex) ID() string { return "hex" }

// Title returns the display name.
func (Hex) Title() string { return "Hexagonal grid" }

// Directions returns 6.
func (Hex) Directions() int { return 6 }

// DirName returns the direction name.
func (Hex) DirName(d core.Dir) string { return hexNames.name(d) }

// ParseDir accepts the hyphenated names and the short forms tl, tr, br, bl.
func (Hex) ParseDir(s string) (core.Dir, bool) {
	s = normalize(s)
	switch s {
	case "tl":
		return HexTopLeft, true
	case "tr":
		return HexTopRight, true
	case "br":
		return HexBottomRight, true
	case "bl":
		return HexBottomLeft, true
	}
	return hexNames.parse(s)
}

// Neighbor steps one cell in direction d, accounting for row parity.
func (Hex) Neighbor(c core.Coord, d core.Dir) core.Coord {
	shift := 0
	if !c.EvenRow() {
		shift = -1
	}
	switch d {
	case HexLeft:
		return c.Add(-1, 0)
	case HexRight:
		return c.Add(1, 0)
	case HexTopLeft:
		return c.Add(shift, -1)
	case HexTopRight:
		return c.Add(shift+1, -1)
	case HexBottomLeft:
		return c.Add(shift, 1)
	case HexBottomRight:
		return c.Add(shift+1, 1)
	default:
		return c
	}
}

// Axis reports left/right as horizontal and the four diagonals as vertical.
func (Hex) Axis(d core.Dir) core.Axis {
	if d == HexLeft || d == HexRight {
		return core.AxisHorizontal
	}
	return core.AxisVertical
}

// DefaultWeight is four times the cell count.
func (Hex) DefaultWeight(cells int) int { return cells * 4 }
