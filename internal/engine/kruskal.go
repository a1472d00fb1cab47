package engine

import (
	"github.com/vovakirdan/wirelight/internal/core"
	"github.com/vovakirdan/wirelight/internal/dsu"
	"github.com/vovakirdan/wirelight/internal/psort"
)

// Forest is the result of Kruskal's algorithm: the accepted edges in the
// order they were accepted, and the number of components they leave.
// Components is 1 for a spanning tree of a connected grid.
type Forest struct {
	Edges      []Edge
	Components int
}

// Spanning reports whether the edges join every node into one tree.
func (f Forest) Spanning() bool {
	return f.Components <= 1
}

// AxisCounts returns how many accepted edges run horizontally and vertically.
func (f Forest) AxisCounts() (horizontal, vertical int) {
	for _, e := range f.Edges {
		if e.Axis == core.AxisHorizontal {
			horizontal++
		} else {
			vertical++
		}
	}
	return horizontal, vertical
}

// SpanningTree runs Kruskal's algorithm over nodes [0, nodes).
//
// Edges are sorted by ascending weight, ties kept in input order. Each edge
// whose endpoints are still in different sets is accepted and the sets are
// merged; the rest would close a cycle and are dropped. Every edge is
// examined, so a disconnected input yields a spanning forest.
func SpanningTree(nodes int, edges []Edge) Forest {
	sorted := psort.HeapSort(edges, psort.By(func(e Edge) int { return e.Weight }))

	sets := dsu.New(nodes)
	tree := make([]Edge, 0, max(nodes-1, 0))
	for _, e := range sorted {
		if sets.Union(e.A, e.B) {
			tree = append(tree, e)
		}
	}

	return Forest{Edges: tree, Components: sets.Sets()}
}
