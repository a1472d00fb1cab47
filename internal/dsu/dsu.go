// Package dsu implements a disjoint-set forest over dense integer indices.
//
// It is used while building spanning trees: every grid cell is one element,
// Find returns the representative of a cell's component and Union merges two
// components. The structure knows nothing about cells or edges, so it can be
// reused (and tested) on plain integers.
package dsu

// DSU is a union-find structure with path compression and union by rank.
// Elements are the integers [0, Len()).
type DSU struct {
	parent []int
	rank   []int
	sets   int
}

// New creates n singleton sets {0}, {1}, ..., {n-1}.
func New(n int) *DSU {
	if n < 0 {
		n = 0
	}
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

// Len returns the number of elements.
func (d *DSU) Len() int {
	return len(d.parent)
}

// Sets returns the current number of disjoint sets.
func (d *DSU) Sets() int {
	return d.sets
}

// Find returns the representative of x's set.
// Panics if x is out of range, like a slice index would.
func (d *DSU) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Path compression: point every node on the walk at the root.
	for d.parent[x] != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}
	return root
}

// Union merges the sets containing a and b.
// Returns false if they were already in the same set.
func (d *DSU) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}
	d.sets--
	return true
}

// Connected reports whether a and b share a representative.
func (d *DSU) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}
