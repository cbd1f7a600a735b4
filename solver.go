package hexlink

import (
	"context"

	"hexlink/graph"
	"hexlink/hexfield"
	"hexlink/instance"
)

// Solve builds the decision tree over inst's edges and returns a lazy,
// cancellable sequence of solutions: each one a set of edges forming
// vertex-disjoint simple paths that connect every target pair and cover
// every non-target cell exactly once.
//
// Solutions are produced in the canonical depth-first order of the
// construction (zero-branch fully explored before one-branch), so two
// calls against the same Instance always yield solutions in the same
// order. The returned iterator checks ctx at every tree node it visits;
// cancelling ctx or having yield return false both stop enumeration
// early, with no cleanup required.
func Solve(ctx context.Context, inst *instance.Instance) (func(func(graph.Solution) bool), error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	built, err := inst.Graph()
	if err != nil {
		return nil, err
	}

	root := build(built.Vertices, built.Edges, inst.Targets())

	return func(yield func(graph.Solution) bool) {
		walkTree(ctx, root, nil, yield)
	}, nil
}

// walkTree performs the depth-first, zero-before-one traversal that
// make_solutions names: it recurses down the zero branch in full before
// descending the one branch, appending the deciding edge only when that
// edge's one-arc was taken.
func walkTree(ctx context.Context, n *Node, path []graph.Edge, yield func(graph.Solution) bool) bool {
	if ctx.Err() != nil {
		return false
	}
	switch {
	case n == terminalOne:
		sol := make(graph.Solution, len(path))
		copy(sol, path)
		return yield(sol)
	case n == terminalZero:
		return true
	default:
		if !walkTree(ctx, n.ZeroChild, path, yield) {
			return false
		}
		return walkTree(ctx, n.OneChild, append(path, graph.Edge(n.Edge)), yield)
	}
}

// build constructs the full decision tree for the given vertex and edge
// sequence, following solver.py's solve(): one level of the tree per
// edge, each node's children decided by whether including that edge is
// still consistent with the target pairing (§4.E).
func build(vertices []hexfield.Coord, edges []graph.Edge, targets instance.Targets) *Node {
	if len(edges) == 0 {
		if len(targets.Pairs) == 0 {
			return terminalOne
		}
		return terminalZero
	}

	fr := newFrontier(vertices)
	root := &Node{Edge: edgePair(edges[0]), Mate: initialMate(fr), Arc: 1}

	nodes := []*Node{root}
	remaining := edges
	for len(remaining) > 0 {
		edge := remaining[0]
		remaining = remaining[1:]

		var nextEdge *graph.Edge
		if len(remaining) > 0 {
			nextEdge = &remaining[0]
		}
		updateFrontier(fr, edge, remaining)
		domain := fr.activeSlice()

		var nextLevel []*Node
		for _, node := range nodes {
			zeroChild := buildChild(node, 0, nextEdge, domain, fr, targets)
			oneChild := buildChild(node, 1, nextEdge, domain, fr, targets)
			node.ZeroChild = zeroChild
			node.OneChild = oneChild

			if !isTerminal(zeroChild) {
				nextLevel = append(nextLevel, zeroChild)
			}
			if !isTerminal(oneChild) {
				nextLevel = append(nextLevel, oneChild)
			}
		}
		nodes = nextLevel
	}
	return root
}

func initialMate(fr *frontier) mateFunc {
	mate := make(mateFunc, len(fr.active))
	for v := range fr.active {
		mate[v] = v
	}
	return mate
}

func buildChild(node *Node, arc int, nextEdge *graph.Edge, domain []hexfield.Coord, fr *frontier, targets instance.Targets) *Node {
	if arc == 0 {
		if isZeroIncompatible(node, targets, fr) {
			return terminalZero
		}
		return makeChild(nextEdge, node.Mate.restrict(domain), 0)
	}

	if isOneIncompatible(node, targets, fr) {
		return terminalZero
	}
	return makeChild(nextEdge, updateMate(node).restrict(domain), 1)
}

func makeChild(nextEdge *graph.Edge, mate mateFunc, arc int) *Node {
	if nextEdge == nil {
		return terminalOne
	}
	return &Node{Edge: edgePair(*nextEdge), Mate: mate, Arc: arc}
}

// isZeroIncompatible reports whether excluding node.Edge from the
// solution is already known to be invalid: an edge endpoint that is
// about to leave the frontier (this was its last unprocessed edge) must
// either already be saturated, or be a target vertex still waiting to be
// paired — any other combination means a plain cell that would end up
// unused, or a target left dangling.
func isZeroIncompatible(node *Node, targets instance.Targets, fr *frontier) bool {
	for _, v := range [2]hexfield.Coord{node.Edge.A, node.Edge.B} {
		if fr.isActive(v) {
			continue
		}
		m := node.Mate[v]
		if m == v {
			return true
		}
		if !targets.IsVertex(v) && m != Saturated && m != v {
			return true
		}
	}
	return false
}

// isOneIncompatible reports whether including node.Edge is already
// known to be invalid: it would either close a path between two
// settled ends that don't form a real target pair, reconnect an
// already-saturated or already-paired-with-each-other vertex, or
// over-connect a target vertex that is supposed to stay a path
// terminus.
func isOneIncompatible(node *Node, targets instance.Targets, fr *frontier) bool {
	a, b := node.Edge.A, node.Edge.B
	mateA, mateB := node.Mate[a], node.Mate[b]

	pair := map[hexfield.Coord]struct{}{mateA: {}, mateB: {}}
	settled := true
	for v := range pair {
		if !targets.IsVertex(v) && !fr.isThrown(v) {
			settled = false
			break
		}
	}
	isRealPair := len(pair) == 2 && targets.IsPair(mateA, mateB)
	if settled && !isRealPair {
		return true
	}

	for _, v := range [2]hexfield.Coord{a, b} {
		m := node.Mate[v]
		if targets.IsVertex(v) && m != v {
			return true
		}
		if m == Saturated || m == opposite(v, a, b) {
			return true
		}
	}
	return false
}

// updateMate produces the mate function that results from choosing
// node.Edge's one-arc: the edge's two endpoints become saturated unless
// they were still isolated (in which case they pick up their new
// partner across the edge), and every other frontier vertex's mate
// chases through the edge if it pointed at one of the edge's endpoints.
func updateMate(node *Node) mateFunc {
	a, b := node.Edge.A, node.Edge.B
	out := make(mateFunc, len(node.Mate))
	for vertex, m := range node.Mate {
		switch {
		case (vertex == a || vertex == b) && m != vertex:
			out[vertex] = Saturated
		case m == a || m == b:
			out[vertex] = node.Mate[opposite(m, a, b)]
		default:
			out[vertex] = m
		}
	}
	return out
}

// frontier tracks, among a field's vertices, which are still active
// (have at least one unprocessed incident edge) versus thrown (have
// retired because every incident edge has been processed).
type frontier struct {
	active map[hexfield.Coord]struct{}
	thrown map[hexfield.Coord]struct{}
}

func newFrontier(vertices []hexfield.Coord) *frontier {
	active := make(map[hexfield.Coord]struct{}, len(vertices))
	for _, v := range vertices {
		active[v] = struct{}{}
	}
	return &frontier{active: active, thrown: make(map[hexfield.Coord]struct{})}
}

func (f *frontier) throw(v hexfield.Coord) {
	delete(f.active, v)
	f.thrown[v] = struct{}{}
}

func (f *frontier) isActive(v hexfield.Coord) bool {
	_, ok := f.active[v]
	return ok
}

func (f *frontier) isThrown(v hexfield.Coord) bool {
	_, ok := f.thrown[v]
	return ok
}

func (f *frontier) activeSlice() []hexfield.Coord {
	out := make([]hexfield.Coord, 0, len(f.active))
	for v := range f.active {
		out = append(out, v)
	}
	return out
}

// updateFrontier retires any endpoint of edge that does not appear in
// any of the still-unprocessed edges.
func updateFrontier(fr *frontier, edge graph.Edge, remaining []graph.Edge) {
	inRemaining := make(map[hexfield.Coord]struct{}, 2*len(remaining))
	for _, e := range remaining {
		inRemaining[e.A] = struct{}{}
		inRemaining[e.B] = struct{}{}
	}
	for _, v := range [2]hexfield.Coord{edge.A, edge.B} {
		if _, ok := inRemaining[v]; !ok {
			fr.throw(v)
		}
	}
}
