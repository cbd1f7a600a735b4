// Package hexlink provides the frontier-based Zero-suppressed Decision
// Diagram (ZDD) solver for hexagonal-board Numberlink: it builds a
// decision tree over an Instance's edges using a mate-function frontier
// to prune partial assignments, then lazily enumerates the tree's
// accepting paths as solutions.
//
// The algorithm follows the frontier-based ZDD construction of Kawahara
// et al. (Simpath/Knuth-style), adapted to Numberlink's vertex-disjoint
// path-packing constraint. Unlike a canonical reduced ZDD, the tree built
// here performs no structural sharing: each node owns its children
// exclusively, which keeps solution enumeration in the exact
// depth-first, zero-before-one order the construction visits them in.
package hexlink

import "errors"

// ErrNilInstance indicates Solve was called with a nil *instance.Instance.
var ErrNilInstance = errors.New("hexlink: instance is nil")
