package life

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDimension is returned by New when width or height is zero.
	ErrZeroDimension = errors.New("life: width and height must be positive")

	// ErrTooLarge is returned by New when width*height exceeds MaxCells.
	ErrTooLarge = errors.New("life: grid exceeds maximum cell count")

	// ErrOutOfRange reports a row or column outside the grid.
	ErrOutOfRange = errors.New("life: coordinate out of range")

	// ErrStaleView is the panic value raised when a View is read after the
	// grid it came from has been mutated.
	ErrStaleView = errors.New("life: cell view used after grid mutation")
)

// ConstructionError describes a rejected New call. No grid is produced.
type ConstructionError struct {
	Width  uint32
	Height uint32
	Err    error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%v (requested %dx%d)", e.Err, e.Width, e.Height)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// CoordinateError reports an access outside [0, Height) x [0, Width).
type CoordinateError struct {
	Row, Col      uint32
	Width, Height uint32
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%v: row %d col %d on %dx%d grid", ErrOutOfRange, e.Row, e.Col, e.Width, e.Height)
}

func (e *CoordinateError) Unwrap() error { return ErrOutOfRange }
