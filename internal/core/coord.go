// Package core provides fundamental types shared by the puzzle engine and
// the controllers that drive it. It has no external dependencies to keep
// puzzle logic pure and testable.
package core

import "fmt"

// Coord identifies a grid cell by column (X) and row (Y).
// X increases to the right, Y increases downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// EvenRow reports whether the coordinate sits on an even row.
// Hex layouts shift their diagonal neighbours by row parity.
func (c Coord) EvenRow() bool {
	return c.Y%2 == 0
}
