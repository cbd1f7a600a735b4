// Package generator builds randomized, solvable Numberlink instances by
// packing the board into simple paths, then stripping each path down to
// its two endpoints (§4.D).
package generator

import "errors"

// ErrGiveUp is returned if Generate built as many packed fields as the
// restart limit (see WithRestartLimit) and every one of them failed
// validation for exceeding the player-facing number cap. Dead-end
// restarts while packing a field are not counted against that limit.
var ErrGiveUp = errors.New("generator: exceeded restart limit without producing a valid instance")
