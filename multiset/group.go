package multiset

import (
	"iter"
	"slices"
)

// Group is a read only view over one contiguous run of a set. It borrows the
// set's backing storage: it stays valid only until the next mutating call on
// the set that produced it. The zero value is an empty group.
type Group[T any] struct {
	s []T
}

func (g Group[T]) Len() int {
	return len(g.s)
}

func (g Group[T]) Empty() bool {
	return len(g.s) == 0
}

func (g Group[T]) At(i int) T {
	return g.s[i]
}

// Slice returns the backing subslice. It must not be modified.
func (g Group[T]) Slice() []T {
	return g.s
}

// Values iterates over the items of the group in their stored order. The
// sequence can be ranged over multiple times.
func (g Group[T]) Values() iter.Seq[T] {
	return slices.Values(g.s)
}

// ContainsFunc reports whether any item of the group satisfies pred. Items
// within a run are not mutually ordered, so this is a linear scan.
func (g Group[T]) ContainsFunc(pred func(T) bool) bool {
	return slices.ContainsFunc(g.s, pred)
}

// GroupContains reports whether value occurs in g by value equality, as
// opposed to equivalence under the set's orderer.
func GroupContains[T comparable](g Group[T], value T) bool {
	return slices.Contains(g.s, value)
}
