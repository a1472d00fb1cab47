// Package psort provides a generic comparator-driven priority sort.
//
// Items are pushed onto a binary heap and popped back out in order. Every
// item is tagged with its position in the input so that items the comparator
// considers equal come out in encounter order. Stability matters for puzzle
// generation: two edges with the same random weight must always be processed
// in the same order for a given seed.
package psort

import (
	"cmp"

	"github.com/zyedidia/generic/heap"
)

// Compare returns a negative number when a sorts before b, a positive number
// when b sorts before a and zero when they are equivalent.
type Compare[T any] func(a, b T) int

// By builds an ascending Compare from a key extractor.
func By[T any, K cmp.Ordered](key func(T) K) Compare[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Reverse flips the order of a Compare.
func Reverse[T any](c Compare[T]) Compare[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

type entry[T any] struct {
	item T
	seq  int
}

// HeapSort returns a new slice holding items ordered by c.
// The input slice is left untouched. Equal items keep their input order.
func HeapSort[T any](items []T, c Compare[T]) []T {
	h := heap.New(func(a, b entry[T]) bool {
		if r := c(a.item, b.item); r != 0 {
			return r < 0
		}
		return a.seq < b.seq
	})
	for i, it := range items {
		h.Push(entry[T]{item: it, seq: i})
	}

	out := make([]T, 0, len(items))
	for h.Size() > 0 {
		e, _ := h.Pop()
		out = append(out, e.item)
	}
	return out
}
