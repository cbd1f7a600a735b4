// Package graph derives the undirected graph induced by a hexagonal
// field: the vertex set is every valid cell, and edges follow the fixed
// canonical order that the Solver's frontier construction depends on
// (§3 of the spec — "this order is contractual").
package graph

import (
	"fmt"

	"github.com/katalvlaran/lvlath/graph/core"

	"hexlink/hexfield"
)

// Edge is an unordered pair of cells.
type Edge struct {
	A, B hexfield.Coord
}

// Solution is a set of edges selected by the Solver: one of the vertex-disjoint
// path sets enumerated by the ZDD. It is also the type instance.Paint consumes
// to reconstruct a filled field.
type Solution []Edge

// Built is the result of deriving a graph from a HexField: the ordered
// vertex and edge sequences the Solver's frontier construction requires,
// plus an equivalent lvlath graph for structural queries (HasEdge,
// Neighbors) and any external consumer that wants a generic graph object
// rather than the ordered slices.
type Built struct {
	// Graph is an lvlath adjacency-list graph over the same vertices and
	// edges. Its internal iteration order is not guaranteed and must
	// never be used as a substitute for Edges.
	Graph *core.Graph

	// Vertices lists every valid cell, row-major.
	Vertices []hexfield.Coord

	// Edges lists every edge in the canonical order of §3: for each cell
	// in row-major order, up to three edges — to (i, j+1), to (i+1, j),
	// and to the down-diagonal — filtered to valid endpoints and
	// deduplicated. The Solver's correctness depends on this exact order.
	Edges []Edge
}

// vertexID encodes a Coord as the string vertex identifier lvlath's
// core.Graph uses.
func vertexID(c hexfield.Coord) string {
	return fmt.Sprintf("%d,%d", c.Level, c.Index)
}

// Build derives the graph for field.
func Build(field *hexfield.HexField) (Built, error) {
	g := core.NewGraph(false, false)
	vertices := field.Vertices()
	for _, v := range vertices {
		g.AddVertex(&core.Vertex{ID: vertexID(v), Metadata: map[string]interface{}{
			"level": v.Level,
			"index": v.Index,
		}})
	}

	size := field.Size()
	middle := size / 2

	var edges []Edge
	for _, start := range vertices {
		i, j := start.Level, start.Index
		var diagonal hexfield.Coord
		if i < middle {
			diagonal = hexfield.Coord{Level: i + 1, Index: j + 1}
		} else {
			diagonal = hexfield.Coord{Level: i + 1, Index: j - 1}
		}

		candidates := []hexfield.Coord{
			{Level: i, Index: j + 1},
			{Level: i + 1, Index: j},
			diagonal,
		}

		seen := make(map[hexfield.Coord]struct{}, 2)
		for _, end := range candidates {
			if !field.IsValid(end.Level, end.Index) {
				continue
			}
			if _, dup := seen[end]; dup {
				continue
			}
			seen[end] = struct{}{}

			edges = append(edges, Edge{A: start, B: end})
			g.AddEdge(vertexID(start), vertexID(end), 1)
		}
	}

	return Built{Graph: g, Vertices: vertices, Edges: edges}, nil
}
