package console

import "fmt"

// OutOfBoundsError reports an absolute cursor move outside the viewport.
// The move emits nothing; the caller decides whether to abort or clamp.
type OutOfBoundsError struct {
	X, Y   int
	Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cursor move out of bounds: (%d,%d) with viewport height %d", e.X, e.Y, e.Height)
}

// DegenerateDimensionError reports a widget too small to contain its
// required glyphs. Nothing is drawn.
type DegenerateDimensionError struct {
	Widget string
	Width  int
	Height int
}

func (e *DegenerateDimensionError) Error() string {
	return fmt.Sprintf("%s dimensions too small to draw: %dx%d", e.Widget, e.Width, e.Height)
}
