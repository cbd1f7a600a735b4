// Package instance adds Numberlink puzzle semantics on top of a
// hexfield.HexField: numbered target pairs, validation, and the derived
// graph and target set the Solver and Generator consume.
package instance

import "errors"

// Sentinel errors for Instance construction, checked in the order New
// reports them.
var (
	// ErrNullOrEmpty indicates no field rows were given.
	ErrNullOrEmpty = errors.New("instance: field is nil or empty")

	// ErrBadCellSymbol indicates a cell token did not parse as a
	// non-negative integer.
	ErrBadCellSymbol = errors.New("instance: cell is not a non-negative integer")

	// ErrNotPaired indicates some non-zero value occurs a count other
	// than 2, or no non-zero value occurs at all.
	ErrNotPaired = errors.New("instance: number is not paired exactly twice")

	// ErrOutOfRange indicates a value is negative or exceeds the
	// configured maximum.
	ErrOutOfRange = errors.New("instance: number is out of range")

	// ErrBrokenOrder indicates the used positive numbers are not a
	// dense {1..k} prefix.
	ErrBrokenOrder = errors.New("instance: numbers are not a dense 1..k sequence")
)

// MaxNumber is the player-facing cap on cell values (§9 Open Question:
// the Generator's own intermediate cap is 100 and is enforced
// separately, in package generator).
const MaxNumber = 9
