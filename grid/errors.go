package grid

import "errors"

var (
	// ErrInvalidConfiguration indicates bad dimensions, start/goal placement or obstacle count.
	ErrInvalidConfiguration = errors.New("grid: invalid configuration")
	// ErrMalformedLayout indicates a layout that cannot describe a board.
	ErrMalformedLayout = errors.New("grid: malformed layout")
	// ErrOutOfBounds indicates a cell outside [0,R)×[0,C).
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
)
