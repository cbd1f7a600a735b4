package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hexlink/graph"
	"hexlink/hexfield"
)

// Reproduces spec.md Scenario 4 (test_make_graph): for the
// four-solution instance of Scenario 2, the derived graph has exactly
// 12 edges.
func TestBuildScenario4(t *testing.T) {
	field, err := hexfield.New([][]int{
		{1, 2},
		{0, 0, 0},
		{1, 2},
	})
	require.NoError(t, err)

	built, err := graph.Build(field)
	require.NoError(t, err)

	require.Len(t, built.Vertices, 7)
	require.Len(t, built.Edges, 12)

	expected := []graph.Edge{
		{A: hexfield.Coord{Level: 0, Index: 0}, B: hexfield.Coord{Level: 0, Index: 1}},
		{A: hexfield.Coord{Level: 0, Index: 0}, B: hexfield.Coord{Level: 1, Index: 0}},
		{A: hexfield.Coord{Level: 0, Index: 0}, B: hexfield.Coord{Level: 1, Index: 1}},
		{A: hexfield.Coord{Level: 0, Index: 1}, B: hexfield.Coord{Level: 1, Index: 1}},
		{A: hexfield.Coord{Level: 0, Index: 1}, B: hexfield.Coord{Level: 1, Index: 2}},
		{A: hexfield.Coord{Level: 1, Index: 0}, B: hexfield.Coord{Level: 1, Index: 1}},
		{A: hexfield.Coord{Level: 1, Index: 0}, B: hexfield.Coord{Level: 2, Index: 0}},
		{A: hexfield.Coord{Level: 1, Index: 1}, B: hexfield.Coord{Level: 1, Index: 2}},
		{A: hexfield.Coord{Level: 1, Index: 1}, B: hexfield.Coord{Level: 2, Index: 1}},
		{A: hexfield.Coord{Level: 1, Index: 1}, B: hexfield.Coord{Level: 2, Index: 0}},
		{A: hexfield.Coord{Level: 1, Index: 2}, B: hexfield.Coord{Level: 2, Index: 1}},
		{A: hexfield.Coord{Level: 2, Index: 0}, B: hexfield.Coord{Level: 2, Index: 1}},
	}
	require.Equal(t, expected, built.Edges)

	// The lvlath graph agrees on the vertex count; its own Edges() is a
	// flat adjacency dump that carries both mirrored directions of every
	// undirected edge (see core.Graph.Edges' doc comment), so it reports
	// twice the canonical count.
	require.Len(t, built.Graph.Vertices(), 7)
	require.Len(t, built.Graph.Edges(), 24)
}

func TestBuildFiltersInvalidNeighbours(t *testing.T) {
	field, err := hexfield.New([][]int{{1}})
	require.NoError(t, err)

	built, err := graph.Build(field)
	require.NoError(t, err)
	require.Len(t, built.Vertices, 1)
	require.Empty(t, built.Edges)
}
