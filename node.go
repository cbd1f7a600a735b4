package hexlink

import "hexlink/hexfield"

// Saturated is the mate-function sentinel for a frontier vertex whose
// degree in the partial solution is already fixed at two: the "0" of
// §3's mate function. It is an otherwise-unreachable coordinate (valid
// cells never have a negative level or index), chosen over a tagged
// union so mateFunc stays a plain map.
var Saturated = hexfield.Coord{Level: -1, Index: -1}

// mateFunc is a partial mapping on the current frontier: mate[v] == v
// means v is isolated so far, mate[v] == Saturated means v's degree is
// already fixed, and any other value is the far endpoint of the partial
// path v currently belongs to.
type mateFunc map[hexfield.Coord]hexfield.Coord

// clone returns a shallow copy of m.
func (m mateFunc) clone() mateFunc {
	out := make(mateFunc, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// restrict returns the restriction of m to domain, dropping entries for
// vertices that have retired from the frontier.
func (m mateFunc) restrict(domain []hexfield.Coord) mateFunc {
	out := make(mateFunc, len(domain))
	for _, v := range domain {
		out[v] = m[v]
	}
	return out
}

// Node is a single decision in the construction tree: it is labelled by
// the edge it decides on, carries the mate function in force before that
// decision, and owns its two children exclusively — this tree
// performs no structural sharing between nodes (§9 design note), unlike
// a canonical reduced ZDD.
type Node struct {
	// Edge is the edge this node decided on. Terminal nodes have a zero
	// Edge; use == terminalZero / == terminalOne to test for them.
	Edge edgePair

	// Mate is the frontier's mate function before this node's edge is
	// decided: the initial identity mate for the root, and for other
	// nodes the result of the parent's edge decision along the incoming
	// arc. The children's mates are derived from it.
	Mate mateFunc

	// Arc is 0 or 1: which branch of the parent produced this node. The
	// root's Arc is meaningless and left at 1 by convention, matching
	// the reference construction.
	Arc int

	ZeroChild *Node
	OneChild  *Node
}

// edgePair is the two vertices of an edge as stored in the tree. It has
// the same layout as graph.Edge; build and makeChild convert from
// graph.Edge and walkTree converts back when it assembles a solution.
type edgePair struct {
	A, B hexfield.Coord
}

// terminalZero and terminalOne are the ZDD's dynamic terminal
// singletons: nodes with no edge or mate, distinguished from internal
// nodes and from each other by pointer identity.
var (
	terminalZero = &Node{}
	terminalOne  = &Node{}
)

func isTerminal(n *Node) bool {
	return n == terminalZero || n == terminalOne
}

func opposite(x, a, b hexfield.Coord) hexfield.Coord {
	switch x {
	case a:
		return b
	case b:
		return a
	default:
		return hexfield.Coord{}
	}
}
