package instance

import (
	"fmt"
	"strconv"

	"hexlink/graph"
	"hexlink/hexfield"
)

// Targets is the puzzle-relevant metadata extracted from a field's
// numbered cells: every non-empty coordinate, and the unordered pairs
// that share a number.
type Targets struct {
	Vertices map[hexfield.Coord]struct{}
	Pairs    [][2]hexfield.Coord

	pairSet map[[2]hexfield.Coord]struct{}
}

// IsVertex reports whether c is a non-empty (target) cell.
func (t Targets) IsVertex(c hexfield.Coord) bool {
	_, ok := t.Vertices[c]
	return ok
}

// IsPair reports whether {a, b} is one of the target pairs, in either
// order.
func (t Targets) IsPair(a, b hexfield.Coord) bool {
	_, ok := t.pairSet[canonicalPair(a, b)]
	return ok
}

func canonicalPair(a, b hexfield.Coord) [2]hexfield.Coord {
	if lessCoord(b, a) {
		a, b = b, a
	}
	return [2]hexfield.Coord{a, b}
}

func lessCoord(a, b hexfield.Coord) bool {
	if a.Level != b.Level {
		return a.Level < b.Level
	}
	return a.Index < b.Index
}

// Instance is a HexField carrying puzzle semantics: numbered target
// pairs and the validation invariants of §4.C. It has-a HexField rather
// than embedding one, keeping the two types distinct with no dynamic
// dispatch between them.
type Instance struct {
	Field   *hexfield.HexField
	targets Targets
}

// New validates raw cell tokens and constructs an Instance, running the
// checks of §4.C in order: NullOrEmpty, BadCellSymbol, NotPaired,
// OutOfRange, BrokenOrder, then ShapeError from the underlying HexField.
func New(raw [][]string) (*Instance, error) {
	if len(raw) == 0 {
		return nil, ErrNullOrEmpty
	}

	rows, err := parseCells(raw)
	if err != nil {
		return nil, err
	}
	return build(rows)
}

// NewFromInts constructs an Instance from already-parsed cell values,
// skipping the BadCellSymbol check — used by the Generator, whose output
// is int-valued by construction. All other §4.C checks still run.
func NewFromInts(rows [][]int) (*Instance, error) {
	if len(rows) == 0 {
		return nil, ErrNullOrEmpty
	}
	return build(rows)
}

func parseCells(raw [][]string) ([][]int, error) {
	rows := make([][]int, len(raw))
	for i, row := range raw {
		rows[i] = make([]int, len(row))
		for j, token := range row {
			v, err := strconv.Atoi(token)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("%w: %s at %s", ErrBadCellSymbol, token, hexfield.Coord{Level: i, Index: j})
			}
			rows[i][j] = v
		}
	}
	return rows, nil
}

func build(rows [][]int) (*Instance, error) {
	if err := checkPaired(rows); err != nil {
		return nil, err
	}
	if err := checkRange(rows); err != nil {
		return nil, err
	}
	if err := checkOrder(rows); err != nil {
		return nil, err
	}

	field, err := hexfield.New(rows)
	if err != nil {
		return nil, err
	}

	return &Instance{Field: field, targets: extractTargets(field)}, nil
}

func checkPaired(rows [][]int) error {
	counts := make(map[int]int)
	for _, row := range rows {
		for _, v := range row {
			if v != 0 {
				counts[v]++
			}
		}
	}
	if len(counts) == 0 {
		return fmt.Errorf("%w: no numbers found", ErrNotPaired)
	}
	for number, count := range counts {
		if count != 2 {
			return fmt.Errorf("%w: %d occurs %d times", ErrNotPaired, number, count)
		}
	}
	return nil
}

func checkRange(rows [][]int) error {
	for _, row := range rows {
		for _, v := range row {
			if v < 0 {
				return fmt.Errorf("%w: negative value %d", ErrOutOfRange, v)
			}
			if v > MaxNumber {
				return fmt.Errorf("%w: %d exceeds maximum %d", ErrOutOfRange, v, MaxNumber)
			}
		}
	}
	return nil
}

func checkOrder(rows [][]int) error {
	used := make(map[int]struct{})
	max := 0
	for _, row := range rows {
		for _, v := range row {
			if v == 0 {
				continue
			}
			used[v] = struct{}{}
			if v > max {
				max = v
			}
		}
	}
	for n := 1; n <= max; n++ {
		if _, ok := used[n]; !ok {
			return fmt.Errorf("%w: missing %d", ErrBrokenOrder, n)
		}
	}
	return nil
}

func extractTargets(field *hexfield.HexField) Targets {
	vertices := make(map[hexfield.Coord]struct{})
	firstSeen := make(map[int]hexfield.Coord)
	var pairs [][2]hexfield.Coord
	pairSet := make(map[[2]hexfield.Coord]struct{})

	for _, c := range field.Vertices() {
		v := field.MustGet(c.Level, c.Index)
		if v == 0 {
			continue
		}
		vertices[c] = struct{}{}
		if first, ok := firstSeen[v]; ok {
			pair := canonicalPair(first, c)
			pairs = append(pairs, pair)
			pairSet[pair] = struct{}{}
		} else {
			firstSeen[v] = c
		}
	}

	return Targets{Vertices: vertices, Pairs: pairs, pairSet: pairSet}
}

// Targets returns the Instance's target set: every non-empty coordinate
// and the pairs sharing a number.
func (inst *Instance) Targets() Targets {
	return inst.targets
}

// Graph delegates to graph.Build over the Instance's field.
func (inst *Instance) Graph() (graph.Built, error) {
	return graph.Build(inst.Field)
}

// Equal reports whether inst and other have identical field content.
func (inst *Instance) Equal(other *Instance) bool {
	if other == nil {
		return false
	}
	return inst.Field.Equal(other.Field)
}

// Paint walks solution's edges and writes each target pair's number
// into every cell along its unique connecting path, returning a new
// HexField (the Instance's own field is left untouched). It is the Go
// analogue of make_field_from_solution: for each target pair, it follows
// the chain of solution edges from one endpoint to the other, assigning
// the pair's number to every intermediate cell.
func Paint(inst *Instance, solution graph.Solution) (*hexfield.HexField, error) {
	adjacency := make(map[hexfield.Coord][]hexfield.Coord)
	for _, e := range solution {
		adjacency[e.A] = append(adjacency[e.A], e.B)
		adjacency[e.B] = append(adjacency[e.B], e.A)
	}

	out := inst.Field.Clone()

	for _, pair := range inst.targets.Pairs {
		number, err := numberOfPair(inst, pair)
		if err != nil {
			return nil, err
		}

		path, err := walkPath(adjacency, pair[0], pair[1])
		if err != nil {
			return nil, fmt.Errorf("instance: painting pair %s-%s: %w", pair[0], pair[1], err)
		}
		for _, c := range path {
			if err := out.Set(c.Level, c.Index, number); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func numberOfPair(inst *Instance, pair [2]hexfield.Coord) (int, error) {
	return inst.Field.Get(pair[0].Level, pair[0].Index)
}

// walkPath follows adjacency from start to end, returning the ordered
// list of cells visited (inclusive of both endpoints). It assumes
// solution describes a valid set of vertex-disjoint simple paths, so
// each non-terminal cell has exactly two neighbours in adjacency.
func walkPath(adjacency map[hexfield.Coord][]hexfield.Coord, start, end hexfield.Coord) ([]hexfield.Coord, error) {
	path := []hexfield.Coord{start}
	prev := hexfield.Coord{Level: -1, Index: -1}
	current := start

	for current != end {
		neighbours := adjacency[current]
		advanced := false
		for _, next := range neighbours {
			if next == prev {
				continue
			}
			prev, current = current, next
			path = append(path, current)
			advanced = true
			break
		}
		if !advanced {
			return nil, fmt.Errorf("no path from %s to %s in solution", start, end)
		}
		if len(path) > len(adjacency)+1 {
			return nil, fmt.Errorf("path from %s exceeded field size without reaching %s", start, end)
		}
	}
	return path, nil
}
