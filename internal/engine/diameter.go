package engine

// Farthest returns the cell reached last by a breadth-first walk from
// source over wire connections, and its hop distance. An isolated cell is
// its own farthest cell at distance 0.
func Farthest(g *Grid, source int) (idx, dist int) {
	idx = source
	g.walk(source, func(i, d int) {
		if d >= dist {
			idx, dist = i, d
		}
	})
	return idx, dist
}

// Diameter measures the longest path in the wired tree containing source
// with a double breadth-first search: the farthest cell from source is one
// end of a longest path, and the farthest cell from it is the other end.
// Only exact when the wiring is a tree.
func Diameter(g *Grid, source int) int {
	end, _ := Farthest(g, source)
	_, d := Farthest(g, end)
	return d
}

// RadiusFor derives the lighting radius from a tree diameter.
func RadiusFor(diameter int) int {
	return diameter/2 + 1
}
