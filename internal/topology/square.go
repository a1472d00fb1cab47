package topology

import (
	"github.com/vovakirdan/wirelight/internal/core"
	"github.com/vovakirdan/wirelight/internal/registry"
)

// Square directions, clockwise.
const (
	SquareLeft core.Dir = iota
	SquareTop
	SquareRight
	SquareBottom
)

var squareNames = dirNames{"left", "top", "right", "bottom"}

// Square is the orthogonal four-neighbour grid.
type Square struct{}

func init() {
	registry.Register("square", func() registry.Topology {
		return Square{}
	})
}

// ID returns the topology identifier.
func (Square) ID() string { return "square" }

// Title returns the display name.
func (Square) Title() string { return "Square grid" }

// Directions returns 4.
func (Square) Directions() int { return 4 }

// DirName returns the direction name.
func (Square) DirName(d core.Dir) string { return squareNames.name(d) }

// ParseDir accepts left, top, right and bottom, plus up and down.
func (Square) ParseDir(s string) (core.Dir, bool) {
	s = normalize(s)
	switch s {
	case "up":
		return SquareTop, true
	case "down":
		return SquareBottom, true
	}
	return squareNames.parse(s)
}

// Neighbor steps one cell in direction d.
func (Square) Neighbor(c core.Coord, d core.Dir) core.Coord {
	switch d {
	case SquareLeft:
		return c.Add(-1, 0)
	case SquareTop:
		return c.Add(0, -1)
	case SquareRight:
		return c.Add(1, 0)
	case SquareBottom:
		return c.Add(0, 1)
	default:
		return c
	}
}

// Axis reports left/right as horizontal and top/bottom as vertical.
func (Square) Axis(d core.Dir) core.Axis {
	if d == SquareLeft || d == SquareRight {
		return core.AxisHorizontal
	}
	return core.AxisVertical
}

// DefaultWeight is the cell count.
func (Square) DefaultWeight(cells int) int { return cells }
