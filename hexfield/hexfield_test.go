package hexfield_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hexlink/hexfield"
)

func newField(t *testing.T, rows [][]int) *hexfield.HexField {
	t.Helper()
	f, err := hexfield.New(rows)
	require.NoError(t, err)
	return f
}

func TestNewRejectsEvenSide(t *testing.T) {
	_, err := hexfield.New([][]int{{1}, {0, 1}})
	require.ErrorIs(t, err, hexfield.ErrShape)
}

func TestNewRejectsWrongStairs(t *testing.T) {
	cases := [][][]int{
		{{1, 2}, {1, 2, 0}, {0, 0, 0}},
		{{1, 2, 0}, {1, 2, 0}, {0, 0}},
	}
	for _, rows := range cases {
		_, err := hexfield.New(rows)
		require.ErrorIs(t, err, hexfield.ErrShape)
	}
}

func TestNewRejectsWrongWidth(t *testing.T) {
	_, err := hexfield.New([][]int{{1, 2}, {0, 0, 0, 0}, {1, 2}})
	require.ErrorIs(t, err, hexfield.ErrShape)
}

func TestIsValid(t *testing.T) {
	f := newField(t, [][]int{{1, 2}, {0, 0, 0}, {1, 2}})
	require.True(t, f.IsValid(0, 1))
	require.False(t, f.IsValid(5, 0))
	require.False(t, f.IsValid(0, 3))
}

// Reproduces numberlink.py's HexagonalFieldTest neighbour scenarios.
func TestNeighbours(t *testing.T) {
	f := newField(t, [][]int{
		{3, 0, 0},
		{4, 1, 0, 0},
		{0, 0, 2, 2, 3},
		{0, 0, 1, 4},
		{0, 0, 0},
	})

	cases := []struct {
		name     string
		level    int
		index    int
		expected []hexfield.Coord
	}{
		{"top all valid", 1, 1, []hexfield.Coord{{0, 0}, {0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}},
		{"top some invalid", 0, 1, []hexfield.Coord{{0, 0}, {0, 2}, {1, 1}, {1, 2}}},
		{"middle all valid", 2, 1, []hexfield.Coord{{1, 0}, {1, 1}, {2, 0}, {2, 2}, {3, 0}, {3, 1}}},
		{"middle some invalid", 2, 0, []hexfield.Coord{{1, 0}, {2, 1}, {3, 0}}},
		{"bottom all valid", 3, 1, []hexfield.Coord{{2, 1}, {2, 2}, {3, 0}, {3, 2}, {4, 0}, {4, 1}}},
		{"bottom some invalid", 4, 1, []hexfield.Coord{{3, 1}, {3, 2}, {4, 0}, {4, 2}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual := f.Neighbours(tc.level, tc.index)
			require.ElementsMatch(t, tc.expected, actual)
		})
	}
}

func TestZigguratMatchesGeneratedShape(t *testing.T) {
	f := hexfield.Ziggurat(5)
	require.Equal(t, [][]int{
		{0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0},
	}, f.Rows())
}

func TestSetGetRoundTrip(t *testing.T) {
	f := hexfield.Ziggurat(3)
	require.NoError(t, f.Set(1, 1, 7))
	v, err := f.Get(1, 1)
	require.NoError(t, err)
	require.Equal(t, 7, v)

	_, err = f.Get(9, 9)
	require.ErrorIs(t, err, hexfield.ErrOutOfBounds)
}
