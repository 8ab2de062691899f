package canvas

import "errors"

// Sentinel errors returned by Canvas operations. They mirror the
// programmer-error exceptions of the reference implementation: a correctly
// driven BlankFinder/placement loop should never trigger them at runtime.
var (
	// ErrOutOfBounds is returned when a Blit or Grow would place content
	// outside the canvas.
	ErrOutOfBounds = errors.New("canvas: out of bounds")

	// ErrTooWide is returned by AddLine when a line exceeds the canvas
	// width and resizing was not requested.
	ErrTooWide = errors.New("canvas: line too wide")

	// ErrMirrorMiss is returned by MirrorX/MirrorY when a character has no
	// entry in the supplied mapping function.
	ErrMirrorMiss = errors.New("canvas: character has no mirror mapping")
)
