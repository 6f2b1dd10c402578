package graph

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("graph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("graph: all grid rows must have the same length")
	// ErrUnknownCell indicates a character in a grid map which is not a known cell type.
	ErrUnknownCell = errors.New("graph: unknown cell type in grid map")
	// ErrDuplicateEndpoint indicates more than one start or finish cell in a grid map.
	ErrDuplicateEndpoint = errors.New("graph: grid map contains more than one start or finish")
	// ErrOutOfBounds indicates a coordinate outside of the grid.
	ErrOutOfBounds = errors.New("graph: coordinate out of grid bounds")
	// ErrInvalidFmi indicates a malformed fmi graph description.
	ErrInvalidFmi = errors.New("graph: invalid fmi graph")
)
