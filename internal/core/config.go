package core

// RuntimeConfig contains the parameters a puzzle is built from.
// Puzzles use the seed for deterministic generation.
type RuntimeConfig struct {
	Width   int   // Grid width in cells
	Height  int   // Grid height in cells
	Station Coord // Initial power station cell
	Seed    int64 // RNG seed for deterministic generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Width:   8,
		Height:  8,
		Station: C(0, 0),
		Seed:    0, // 0 means use current time in the CLI layer
	}
}

// InBounds reports whether c lies on a Width x Height grid.
func (r RuntimeConfig) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < r.Width && c.Y >= 0 && c.Y < r.Height
}

// Cells returns the number of cells on the grid.
func (r RuntimeConfig) Cells() int {
	return r.Width * r.Height
}
