package generator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hexlink/hexfield"
)

func blankFive(t *testing.T) *hexfield.HexField {
	t.Helper()
	return hexfield.Ziggurat(5)
}

func newTestConstructor(t *testing.T, field *hexfield.HexField) *constructor {
	t.Helper()
	return &constructor{field: field, cellsAmount: CenteredHexNumber(3), rng: globalSource{}}
}

func TestCountAddedNeighboursOrNonValid(t *testing.T) {
	field := blankFive(t)
	c := newTestConstructor(t, field)
	require.Equal(t, 0, c.countAddedNeighboursOrNonValid(hexfield.Coord{Level: 2, Index: 1}))

	require.NoError(t, field.Set(2, 0, 1))
	require.NoError(t, field.Set(1, 1, 1))
	require.Equal(t, 2, c.countAddedNeighboursOrNonValid(hexfield.Coord{Level: 2, Index: 1}))
}

func TestCountAddedNeighboursWhenSomeInvalid(t *testing.T) {
	field := blankFive(t)
	require.NoError(t, field.Set(0, 1, 1))
	require.NoError(t, field.Set(1, 0, 1))
	require.NoError(t, field.Set(1, 1, 1))
	c := newTestConstructor(t, field)
	require.Equal(t, 6, c.countAddedNeighboursOrNonValid(hexfield.Coord{Level: 0, Index: 0}))
}

func TestCountNumberedNeighbours(t *testing.T) {
	field := blankFive(t)
	c := newTestConstructor(t, field)
	require.Equal(t, 0, c.countNumberedNeighbours(hexfield.Coord{Level: 0, Index: 0}, 1))

	require.NoError(t, field.Set(0, 0, 1))
	require.NoError(t, field.Set(0, 1, 1))
	require.Equal(t, 2, c.countNumberedNeighbours(hexfield.Coord{Level: 1, Index: 1}, 1))
}

func TestIsIsolated(t *testing.T) {
	field := blankFive(t)
	c := newTestConstructor(t, field)
	require.False(t, c.isIsolated(hexfield.Coord{Level: 0, Index: 0}, 1, false))

	require.NoError(t, field.Set(1, 0, 1))
	require.NoError(t, field.Set(0, 1, 1))
	require.NoError(t, field.Set(1, 1, 1))
	require.True(t, c.isIsolated(hexfield.Coord{Level: 0, Index: 0}, 1, true))
	require.True(t, c.isIsolated(hexfield.Coord{Level: 0, Index: 0}, 2, false))
}

func TestHasIsolatedEmptyCells(t *testing.T) {
	field := blankFive(t)
	require.NoError(t, field.Set(0, 0, 1))
	require.NoError(t, field.Set(0, 1, 1))
	require.NoError(t, field.Set(1, 0, 1))
	require.NoError(t, field.Set(1, 2, 1))
	require.NoError(t, field.Set(2, 1, 1))
	require.NoError(t, field.Set(2, 2, 1))
	c := newTestConstructor(t, field)

	require.True(t, c.hasIsolatedEmptyCells(hexfield.Coord{Level: 2, Index: 2}, 1, false))
	require.True(t, c.hasIsolatedEmptyCells(hexfield.Coord{Level: 2, Index: 2}, 2, false))
}

func TestCanAddCell(t *testing.T) {
	field := blankFive(t)
	require.NoError(t, field.Set(0, 1, 1))
	require.NoError(t, field.Set(1, 1, 1))
	c := newTestConstructor(t, field)
	require.False(t, c.canAddCell(hexfield.Coord{Level: 1, Index: 0}, 1))

	field2 := blankFive(t)
	require.NoError(t, field2.Set(0, 0, 1))
	c2 := newTestConstructor(t, field2)
	require.True(t, c2.canAddCell(hexfield.Coord{Level: 0, Index: 1}, 1))
}

func TestCenteredHexNumber(t *testing.T) {
	expected := []int{1, 7, 19, 37}
	for i, n := range []int{1, 2, 3, 4} {
		require.Equal(t, expected[i], CenteredHexNumber(n))
	}
}

func TestEmptyCells(t *testing.T) {
	field, err := hexfield.New([][]int{
		{0, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0},
	})
	require.NoError(t, err)

	expected := []hexfield.Coord{{0, 0}, {3, 1}, {4, 2}}
	require.ElementsMatch(t, expected, emptyCells(field))
}

func TestRotate(t *testing.T) {
	coords := []hexfield.Coord{{0, 0}, {0, 1}, {0, 2}, {0, 3}}
	require.Equal(t, []hexfield.Coord{{0, 2}, {0, 3}, {0, 0}, {0, 1}}, rotate(coords, 2))
	require.Equal(t, coords, rotate(coords, 0))
}

func TestGenerateProducesValidInstance(t *testing.T) {
	inst, err := Generate(WithSize(3))
	require.NoError(t, err)

	targets := inst.Targets()
	require.LessOrEqual(t, len(targets.Pairs), 9)
	for _, pair := range targets.Pairs {
		require.True(t, targets.IsVertex(pair[0]))
		require.True(t, targets.IsVertex(pair[1]))
	}

	require.Equal(t, [][]int{{0, 0}, {0, 0, 0}, {0, 0}}, zeroedShapeOf(inst.Field))
}

func zeroedShapeOf(f *hexfield.HexField) [][]int {
	rows := f.Rows()
	for _, row := range rows {
		for j := range row {
			row[j] = 0
		}
	}
	return rows
}
