package instance

import (
	"fmt"
	"strings"

	"hexlink/graph"
	"hexlink/hexfield"
)

// Left and right diagonal glyphs used by RenderSolution, matching
// cnumberlink.py's ConsoleHexLink.LEFT_SYMBOL / RIGHT_SYMBOL exactly.
const (
	leftSymbol  = ` \`
	rightSymbol = `/ `
)

// RenderSolution pretty-prints field with solution's edges drawn on top
// of it, in the console renderer's layout from §6: two dashes between
// adjacent same-row cells carrying a solution edge, a backslash or
// forward-slash between rows where a diagonal edge is present, and
// indentation that narrows toward the equator and widens below it. This
// reproduces cnumberlink.py's ConsoleHexLink._get_solution_string
// bit-for-bit; it is not a full GUI, only the data contract a compliance
// test can check against a literal string.
func RenderSolution(field *hexfield.HexField, solution graph.Solution) string {
	edges := newEdgeSet(solution)

	horizontal := renderHorizontalRows(field, edges)
	vertical := renderVerticalRows(field, edges)

	lines := make([]string, 0, len(horizontal)+len(vertical))
	for i, h := range horizontal {
		lines = append(lines, h)
		if i < len(vertical) {
			lines = append(lines, vertical[i])
		} else {
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}

type edgeSet map[[2]hexfield.Coord]struct{}

func newEdgeSet(solution graph.Solution) edgeSet {
	set := make(edgeSet, len(solution))
	for _, e := range solution {
		set[canonicalPair(e.A, e.B)] = struct{}{}
	}
	return set
}

func (s edgeSet) has(a, b hexfield.Coord) bool {
	_, ok := s[canonicalPair(a, b)]
	return ok
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// renderHorizontalRows builds one line per field row: each cell's value
// followed by "--" where the edge to its right-hand neighbour is in the
// solution, "  " otherwise.
func renderHorizontalRows(field *hexfield.HexField, edges edgeSet) []string {
	size := field.Size()
	out := make([]string, 0, size)
	indent := size - 1

	for i := 0; i < size; i++ {
		rowLen := field.RowLen(i)
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", absInt(indent)))
		for j := 0; j < rowLen; j++ {
			between := "  "
			if edges.has(hexfield.Coord{Level: i, Index: j}, hexfield.Coord{Level: i, Index: j + 1}) {
				between = "--"
			}
			fmt.Fprintf(&b, "%d %s ", field.MustGet(i, j), between)
		}
		out = append(out, strings.TrimRight(b.String(), " "))
		indent -= 2
	}
	return out
}

// renderVerticalRows builds the diagonal-connector line that sits between
// field row i-1 and field row i, for every i from 1 to size-1 (the first
// such line, above row 0, does not exist and is dropped, matching
// ConsoleHexLink._get_vertical_part's result[1:]).
func renderVerticalRows(field *hexfield.HexField, edges edgeSet) []string {
	size := field.Size()
	all := make([]string, 0, size)
	indent := size

	for i := 0; i < size; i++ {
		rowLen := field.RowLen(i)
		pad := absInt(indent) - 1
		if pad < 0 {
			pad = 0
		}
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", pad))
		for j := 0; j <= rowLen; j++ {
			left := diagonalGlyph(field, edges, i, j, true)
			right := diagonalGlyph(field, edges, i, j, false)
			fmt.Fprintf(&b, "%s %s", left, right)
		}
		all = append(all, strings.TrimRight(b.String(), " "))
		indent -= 2
	}
	return all[1:]
}

// diagonalGlyph reports the glyph for the connector above cell (i, j):
// the symbol itself if that edge is in the solution, two spaces if the
// edge is absent but its far endpoint is a real cell, or an empty string
// if the far endpoint is off the board entirely (ConsoleHexLink._get_edge).
func diagonalGlyph(field *hexfield.HexField, edges edgeSet, i, j int, left bool) string {
	symbol := rightSymbol
	upperHalf := i <= field.Size()/2

	var end hexfield.Coord
	switch {
	case left && upperHalf:
		symbol, end = leftSymbol, hexfield.Coord{Level: i - 1, Index: j - 1}
	case left && !upperHalf:
		symbol, end = leftSymbol, hexfield.Coord{Level: i - 1, Index: j}
	case !left && upperHalf:
		end = hexfield.Coord{Level: i - 1, Index: j}
	default:
		end = hexfield.Coord{Level: i - 1, Index: j + 1}
	}

	start := hexfield.Coord{Level: i, Index: j}
	if edges.has(start, end) {
		return symbol
	}
	if field.IsValid(end.Level, end.Index) {
		return "  "
	}
	return ""
}
