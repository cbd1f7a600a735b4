package generator

import (
	"errors"
	"fmt"

	"hexlink/hexfield"
	"hexlink/instance"
)

// MinSize and MaxSize bound the randomly chosen board side length.
const (
	MinSize = 3
	MaxSize = 5
)

// maxNumber is the Generator's own internal cap on path ids, far above
// the player-facing instance.MaxNumber of 9. §9's Open Question on the
// Generator number cap: boards this small never come close to 100
// paths, so in practice the gate that actually rejects over-count
// instances is the restart triggered by instance.ErrOutOfRange in
// Generate, not this constant — but it is preserved bit-for-bit as the
// original's own internal ceiling.
const maxNumber = 100

// pathSpan is a packed path's two endpoints, the only part of it that
// survives into the final Instance.
type pathSpan struct {
	Start, End hexfield.Coord
}

// CenteredHexNumber returns 3n(n-1)+1, the number of cells in a hexagon
// of radius n (§3, §4.D).
func CenteredHexNumber(n int) int {
	return 3*n*(n-1) + 1
}

// Generate builds a random solvable Instance per §4.D: pick a board
// size, pack it into vertex-disjoint simple paths using isolated-cell
// avoidance, then keep only each path's two endpoints. Construction
// restarts from scratch on a dead end (no backtracking); if the
// resulting instance would exceed the player-facing number cap, this is
// also treated as a dead end and the whole attempt restarts.
func Generate(opts ...Option) (*instance.Instance, error) {
	cfg := newConfig(opts...)

	size := cfg.size
	if size == 0 {
		size = pickSize(cfg.source)
	}
	if size < MinSize || size%2 == 0 {
		return nil, fmt.Errorf("%w: generator size %d", hexfield.ErrShape, size)
	}

	for attempt := 0; ; attempt++ {
		if attempt >= cfg.restartLimit {
			return nil, ErrGiveUp
		}

		rows := newConstructor(size, cfg.source).construct()

		inst, err := instance.NewFromInts(rows)
		if err == nil {
			return inst, nil
		}
		if !errors.Is(err, instance.ErrOutOfRange) {
			return nil, fmt.Errorf("generator: unexpected validation failure: %w", err)
		}
		// too many distinct path numbers for the player-facing cap;
		// treat exactly like any other dead end and restart.
	}
}

func pickSize(r prng) int {
	steps := (MaxSize-MinSize)/2 + 1
	return MinSize + 2*r.IntN(steps)
}

// constructor packs a blank field into simple paths, porting
// PathConstructor method-for-method.
type constructor struct {
	field       *hexfield.HexField
	covered     int
	cellsAmount int
	paths       []pathSpan
	rng         prng
}

func newConstructor(size int, rng prng) *constructor {
	n := (size + 1) / 2
	return &constructor{
		field:       hexfield.Ziggurat(size),
		cellsAmount: CenteredHexNumber(n),
		rng:         rng,
	}
}

func (c *constructor) number() int {
	return len(c.paths) + 1
}

func (c *constructor) countAddedNeighboursOrNonValid(pos hexfield.Coord) int {
	count := 0
	for _, x := range c.field.Environment(pos.Level, pos.Index) {
		if !c.field.IsValid(x.Level, x.Index) {
			count++
			continue
		}
		if c.field.MustGet(x.Level, x.Index) != 0 {
			count++
		}
	}
	return count
}

func (c *constructor) countNumberedNeighbours(pos hexfield.Coord, number int) int {
	count := 0
	for _, x := range c.field.Neighbours(pos.Level, pos.Index) {
		if c.field.MustGet(x.Level, x.Index) == number {
			count++
		}
	}
	return count
}

func (c *constructor) isCycle(pos hexfield.Coord, number int) bool {
	return c.countNumberedNeighbours(pos, number) > 1
}

const surroundingCells = 6

func (c *constructor) isIsolated(pos hexfield.Coord, number int, isLast bool) bool {
	return c.countAddedNeighboursOrNonValid(pos) == surroundingCells &&
		(!isLast || c.isCycle(pos, number))
}

func (c *constructor) hasIsolatedEmptyCells(pos hexfield.Coord, number int, isLast bool) bool {
	for _, n := range c.field.Neighbours(pos.Level, pos.Index) {
		if c.field.MustGet(n.Level, n.Index) != 0 {
			continue
		}
		if c.isIsolated(n, number, isLast) {
			return true
		}
	}
	return false
}

func (c *constructor) canAddCell(pos hexfield.Coord, number int) bool {
	_ = c.field.Set(pos.Level, pos.Index, number)
	isolated := c.hasIsolatedEmptyCells(pos, number, true)
	_ = c.field.Set(pos.Level, pos.Index, 0)
	return !isolated
}

// getPathExtensionNeighbour searches pos's neighbours, starting at a
// random rotation, for an empty cell that can extend the path without
// creating an isolated empty cell elsewhere.
func (c *constructor) getPathExtensionNeighbour(pos hexfield.Coord, number int) (hexfield.Coord, bool) {
	neighbours := c.field.Neighbours(pos.Level, pos.Index)
	if len(neighbours) == 0 {
		return hexfield.Coord{}, false
	}

	start := c.rng.IntN(len(neighbours))
	if c.hasIsolatedEmptyCells(pos, number, false) {
		return hexfield.Coord{}, false
	}

	for _, candidate := range rotate(neighbours, start) {
		if c.field.MustGet(candidate.Level, candidate.Index) != 0 {
			continue
		}
		if c.canAddCell(candidate, number) {
			return candidate, true
		}
	}
	return hexfield.Coord{}, false
}

// tryGetNewPathBegin searches the empty cells, starting at a random
// rotation, for one that can begin a new path with some neighbour.
func (c *constructor) tryGetNewPathBegin() (pathSpan, bool) {
	empties := emptyCells(c.field)
	if len(empties) == 0 {
		return pathSpan{}, false
	}

	start := c.rng.IntN(len(empties))
	number := c.number()
	for _, head := range rotate(empties, start) {
		if !c.canAddCell(head, number) {
			continue
		}
		if tail, ok := c.getPathExtensionNeighbour(head, number); ok {
			return pathSpan{Start: head, End: tail}, true
		}
	}
	return pathSpan{}, false
}

func (c *constructor) addNewPath(head, tail hexfield.Coord) {
	number := c.number()
	c.paths = append(c.paths, pathSpan{Start: head})
	_ = c.field.Set(head.Level, head.Index, number)
	_ = c.field.Set(tail.Level, tail.Index, number)
	c.covered += 2

	for {
		head = tail
		next, ok := c.getPathExtensionNeighbour(head, number)
		if ok && c.covered < c.cellsAmount {
			_ = c.field.Set(next.Level, next.Index, number)
			c.covered++
			tail = next
			continue
		}
		c.paths[len(c.paths)-1].End = head
		return
	}
}

// fieldWithPairs returns a fresh blank field of the same size with only
// each path's two endpoints numbered.
func (c *constructor) fieldWithPairs() [][]int {
	out := hexfield.Ziggurat(c.field.Size())
	for i, p := range c.paths {
		number := i + 1
		_ = out.Set(p.Start.Level, p.Start.Index, number)
		_ = out.Set(p.End.Level, p.End.Index, number)
	}
	return out.Rows()
}

func (c *constructor) reset() {
	size := c.field.Size()
	n := (size + 1) / 2
	c.field = hexfield.Ziggurat(size)
	c.covered = 0
	c.cellsAmount = CenteredHexNumber(n)
	c.paths = nil
}

// construct packs the field into paths, restarting from scratch on any
// dead end, until every cell is covered and the next unused path number
// (one more than the number of paths) is at most maxNumber. The number
// of restarts is not bounded.
func (c *constructor) construct() [][]int {
	for {
		if span, ok := c.tryGetNewPathBegin(); ok {
			c.addNewPath(span.Start, span.End)
			continue
		}
		if c.covered == c.cellsAmount && c.number() <= maxNumber {
			return c.fieldWithPairs()
		}
		c.reset()
	}
}

func emptyCells(field *hexfield.HexField) []hexfield.Coord {
	var out []hexfield.Coord
	for _, c := range field.Vertices() {
		if field.MustGet(c.Level, c.Index) == 0 {
			out = append(out, c)
		}
	}
	return out
}

func rotate(coords []hexfield.Coord, start int) []hexfield.Coord {
	out := make([]hexfield.Coord, len(coords))
	copy(out, coords[start:])
	copy(out[len(coords)-start:], coords[:start])
	return out
}
