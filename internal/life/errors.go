package life

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction indicates grid dimensions that cannot form a torus
	// with distinct neighbors.
	ErrConstruction = errors.New("life: invalid grid dimensions (height and width must be at least 2)")

	// ErrCellCount indicates a cell buffer whose length is not height*width.
	ErrCellCount = errors.New("life: cell count does not match dimensions")
)

// DimensionError wraps ErrConstruction with the rejected dimensions.
type DimensionError struct {
	Height int
	Width  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%v: got %dx%d", ErrConstruction, e.Height, e.Width)
}

func (e *DimensionError) Unwrap() error {
	return ErrConstruction
}

func checkDimensions(height, width int) error {
	if height < MinDimension || width < MinDimension {
		return &DimensionError{Height: height, Width: width}
	}
	return nil
}
