package engine

import "errors"

var (
	// ErrInvalidSize is returned when a grid has no cells.
	ErrInvalidSize = errors.New("engine: width and height must be positive")

	// ErrStationOutOfBounds is returned when the requested station cell is
	// not on the grid. No puzzle is built.
	ErrStationOutOfBounds = errors.New("engine: power station outside the grid")

	// ErrOutOfBounds is returned when an operation names an off-grid cell.
	ErrOutOfBounds = errors.New("engine: cell outside the grid")

	// ErrAsymmetricTopology is returned when a topology's neighbour relation
	// is not symmetric on the requested grid.
	ErrAsymmetricTopology = errors.New("engine: topology neighbours are not symmetric")
)
