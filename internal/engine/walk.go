package engine

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

type hop struct {
	idx  int
	dist int
}

// walk visits every cell reachable from source over wire connections in
// breadth-first order, passing each cell's hop distance to visit.
// Each cell is visited once.
func (g *Grid) walk(source int, visit func(idx, dist int)) {
	seen := mapset.New[int]()
	seen.Put(source)

	q := queue.New[hop]()
	q.Enqueue(hop{idx: source})

	var buf []int
	for !q.Empty() {
		h := q.Dequeue()
		visit(h.idx, h.dist)

		buf = g.wiredNeighbors(h.idx, buf[:0])
		for _, nb := range buf {
			if seen.Has(nb) {
				continue
			}
			seen.Put(nb)
			q.Enqueue(hop{idx: nb, dist: h.dist + 1})
		}
	}
}
