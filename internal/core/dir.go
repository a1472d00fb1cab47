package core

// Dir is a direction index into a cell's stub list.
// Directions are numbered clockwise, so the meaning of each index is fixed
// by the grid shape but rotation and opposition are shape independent.
type Dir uint8

// Next returns the direction one clockwise step after d on an n-direction grid.
func (d Dir) Next(n int) Dir {
	return Dir((int(d) + 1) % n)
}

// Opposite returns the direction facing d on an n-direction grid.
func (d Dir) Opposite(n int) Dir {
	return Dir((int(d) + n/2) % n)
}

// Axis classifies a direction for edge-weight biasing.
type Axis uint8

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "unknown"
	}
}
