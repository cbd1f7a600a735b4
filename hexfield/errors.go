// Package hexfield implements the hexagonal grid data model shared by the
// rest of this module: cell storage, neighbour enumeration, and the
// ziggurat shape invariant.
package hexfield

import "errors"

// Sentinel errors for hexfield operations. Wrap these with fmt.Errorf("%w: ...")
// to attach coordinates or other context at the call site.
var (
	// ErrShape indicates the rows passed to New do not form a valid
	// hexagonal ziggurat: an even side, a non-centered longest row, or a
	// row whose length doesn't match its distance from the middle row.
	ErrShape = errors.New("hexfield: invalid hexagonal shape")

	// ErrOutOfBounds indicates a cell access fell outside the field's
	// valid coordinates. This is a programming-error condition: callers
	// are expected to check IsValid first when a coordinate isn't
	// already known-good.
	ErrOutOfBounds = errors.New("hexfield: coordinate out of bounds")
)
