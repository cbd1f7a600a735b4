package hexfield

import "fmt"

// Coord identifies a cell by its row ("level", from the top) and its
// column ("index") within that row. Coord is comparable and is used
// directly as a map key throughout this module.
type Coord struct {
	Level int
	Index int
}

// String renders a Coord as "(level,index)", mainly for test failure
// messages and debugging.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Level, c.Index)
}

// HexField is a hexagonal grid of small non-negative integers, stored as
// a ziggurat of rows: lengths increase by one from the top row to the
// middle row, then decrease by one back down, per §3 of the spec.
//
// HexField owns its own copy of the row data; callers cannot observe
// mutation through the slices they passed to New.
type HexField struct {
	rows [][]int
}

// New validates rows against the ziggurat shape invariant and returns a
// HexField holding a private copy of the data. It returns ErrShape if the
// side length is even or less than... (side length can be as small as 1
// for this component in isolation; Instance and Generator enforce the
// puzzle-level minimum of 3) ...or if any row's length doesn't match the
// ziggurat pattern.
func New(rows [][]int) (*HexField, error) {
	if err := checkShape(rows); err != nil {
		return nil, err
	}

	copied := make([][]int, len(rows))
	for i, row := range rows {
		copied[i] = append([]int(nil), row...)
	}
	return &HexField{rows: copied}, nil
}

func checkShape(rows [][]int) error {
	vertical := len(rows)
	if vertical == 0 {
		return fmt.Errorf("%w: empty field", ErrShape)
	}

	horizontal := 0
	for _, row := range rows {
		if len(row) > horizontal {
			horizontal = len(row)
		}
	}

	if vertical != horizontal || vertical%2 == 0 {
		return fmt.Errorf("%w: dimensions %d x %d", ErrShape, horizontal, vertical)
	}

	middle := vertical / 2
	for i := 0; i < middle; i++ {
		if len(rows[middle-i-1]) != vertical-i-1 {
			return fmt.Errorf("%w: row %d has wrong length", ErrShape, middle-i-1)
		}
		if len(rows[middle+i+1]) != vertical-i-1 {
			return fmt.Errorf("%w: row %d has wrong length", ErrShape, middle+i+1)
		}
	}
	return nil
}

// Size returns the side length s of the hexagon (the number of rows,
// equal to the length of the middle row).
func (f *HexField) Size() int {
	return len(f.rows)
}

// RowLen returns the length of row i, or 0 if i is out of range.
func (f *HexField) RowLen(i int) int {
	if i < 0 || i >= len(f.rows) {
		return 0
	}
	return len(f.rows[i])
}

// IsValid reports whether (level, index) addresses a real cell.
func (f *HexField) IsValid(level, index int) bool {
	return level >= 0 && level < len(f.rows) &&
		index >= 0 && index < len(f.rows[level])
}

// Get returns the value stored at (level, index). It returns
// ErrOutOfBounds if the coordinate is invalid.
func (f *HexField) Get(level, index int) (int, error) {
	if !f.IsValid(level, index) {
		return 0, fmt.Errorf("%w: %s", ErrOutOfBounds, Coord{level, index})
	}
	return f.rows[level][index], nil
}

// MustGet is like Get but panics on an invalid coordinate. It exists for
// call sites that have already validated the coordinate (e.g. iterating
// f.Vertices()) and would otherwise have to discard an error that cannot
// occur.
func (f *HexField) MustGet(level, index int) int {
	v, err := f.Get(level, index)
	if err != nil {
		panic(err)
	}
	return v
}

// Set writes value at (level, index). It returns ErrOutOfBounds if the
// coordinate is invalid.
func (f *HexField) Set(level, index, value int) error {
	if !f.IsValid(level, index) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, Coord{level, index})
	}
	f.rows[level][index] = value
	return nil
}

// Environment returns the six candidate neighbour offsets for (level,
// index), per §3: the four fixed offsets (0,-1), (0,1), (1,0), (-1,0),
// plus a pair of diagonals that depend on the row's position relative to
// the equator (the middle row). Candidates are not filtered for
// validity; use Neighbours for that.
func (f *HexField) Environment(level, index int) []Coord {
	offsets := [6][2]int{
		{0, -1}, {0, 1}, {1, 0}, {-1, 0},
	}

	equator := len(f.rows) / 2
	switch {
	case level < equator:
		offsets[4], offsets[5] = [2]int{-1, -1}, [2]int{1, 1}
	case level > equator:
		offsets[4], offsets[5] = [2]int{-1, 1}, [2]int{1, -1}
	default:
		offsets[4], offsets[5] = [2]int{-1, -1}, [2]int{1, -1}
	}

	result := make([]Coord, 6)
	for i, d := range offsets {
		result[i] = Coord{level + d[0], index + d[1]}
	}
	return result
}

// Neighbours returns Environment(level, index) filtered to valid cells.
func (f *HexField) Neighbours(level, index int) []Coord {
	env := f.Environment(level, index)
	out := env[:0:0]
	for _, c := range env {
		if f.IsValid(c.Level, c.Index) {
			out = append(out, c)
		}
	}
	return out
}

// Vertices returns every valid coordinate of the field, in row-major
// order (top row first, left to right within a row).
func (f *HexField) Vertices() []Coord {
	var out []Coord
	for i, row := range f.rows {
		for j := range row {
			out = append(out, Coord{i, j})
		}
	}
	return out
}

// Clone returns a deep copy of the field.
func (f *HexField) Clone() *HexField {
	rows := make([][]int, len(f.rows))
	for i, row := range f.rows {
		rows[i] = append([]int(nil), row...)
	}
	return &HexField{rows: rows}
}

// Rows returns a defensive copy of the field's row data, e.g. for
// rendering or serialization. Mutating the result does not affect f.
func (f *HexField) Rows() [][]int {
	rows := make([][]int, len(f.rows))
	for i, row := range f.rows {
		rows[i] = append([]int(nil), row...)
	}
	return rows
}

// Equal reports whether f and other have identical dimensions and cell
// values.
func (f *HexField) Equal(other *HexField) bool {
	if other == nil || len(f.rows) != len(other.rows) {
		return false
	}
	for i, row := range f.rows {
		if len(row) != len(other.rows[i]) {
			return false
		}
		for j, v := range row {
			if other.rows[i][j] != v {
				return false
			}
		}
	}
	return true
}

// Ziggurat builds an all-empty (zero-valued) HexField of side length
// size, following the same row-length pattern New validates: lengths
// rising then falling around the middle row. size must be a positive odd
// number; Ziggurat panics otherwise.
func Ziggurat(size int) *HexField {
	distance := size - size/2
	rows := make([][]int, 0, size)
	for i := distance; i < size; i++ {
		rows = append(rows, make([]int, i))
	}
	for i := size; i >= distance; i-- {
		rows = append(rows, make([]int, i))
	}
	f, err := New(rows)
	if err != nil {
		// For a positive odd size the rows built above always satisfy
		// checkShape; any other size fails it and is treated as a
		// programming error.
		panic(err)
	}
	return f
}
