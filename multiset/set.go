// Package multiset implements a multiset backed by a slice kept sorted under
// a caller supplied weak order. Items which the orderer reports as equivalent
// may still be distinct values; they occupy one contiguous run of the backing
// slice, and queries and removal operate on whole runs. It is not safe to call
// any method concurrently from different goroutines.
package multiset

import (
	"iter"
	"slices"

	ordbyset "github.com/panda-re/ord-by-set"
	"github.com/panda-re/ord-by-set/internal/runs"
)

type Set[T any] struct {
	s   []T
	ord ordbyset.Orderer[T]
}

// New creates an empty multiset ordered by ord.
func New[T any](ord ordbyset.Orderer[T]) *Set[T] {
	return &Set[T]{ord: ord}
}

// From creates a multiset holding every item of seq. The resulting order is
// determined by ord alone; items equivalent under ord keep the order in which
// seq produced them.
func From[T any](ord ordbyset.Orderer[T], seq iter.Seq[T]) *Set[T] {
	s := slices.Collect(seq)
	ordbyset.Sort(ord, s)
	return &Set[T]{s: s, ord: ord}
}

// Of creates a multiset holding the given items.
func Of[T any](ord ordbyset.Orderer[T], items ...T) *Set[T] {
	return From(ord, slices.Values(items))
}

func (m *Set[T]) Len() int {
	return len(m.s)
}

func (m *Set[T]) Empty() bool {
	return len(m.s) == 0
}

func (m *Set[T]) Clear() {
	clear(m.s)
	m.s = m.s[:0]
}

// Insert adds item to the set. Items equivalent to existing members are placed
// after them, so repeated insertion keeps insertion order within a run. This
// is more efficient when items are inserted in order, as the set is backed by
// contiguous memory.
func (m *Set[T]) Insert(item T) {
	i := runs.UpperBound(m.s, item, m.ord.OrderOf)
	m.s = slices.Insert(m.s, i, item)
}

// Get returns the group of all items equivalent to key. The second return
// value is false if there are none. The group borrows from the set and is
// invalidated by any mutation of it.
func (m *Set[T]) Get(key T) (Group[T], bool) {
	lo, hi := runs.Locate(m.s, key, m.ord.OrderOf)
	if lo == hi {
		return Group[T]{}, false
	}
	return Group[T]{m.s[lo:hi]}, true
}

// First returns the first item of the run equivalent to key.
func (m *Set[T]) First(key T) (T, bool) {
	if i := runs.LowerBound(m.s, key, m.ord.OrderOf); i < len(m.s) && m.ord.OrderOf(m.s[i], key) == 0 {
		return m.s[i], true
	}
	var zero T
	return zero, false
}

// Count returns the number of items equivalent to key.
func (m *Set[T]) Count(key T) int {
	lo, hi := runs.Locate(m.s, key, m.ord.OrderOf)
	return hi - lo
}

// Contains reports whether the set holds at least one item equivalent to key.
func (m *Set[T]) Contains(key T) bool {
	i := runs.LowerBound(m.s, key, m.ord.OrderOf)
	return i < len(m.s) && m.ord.OrderOf(m.s[i], key) == 0
}

// RemoveAll removes every item equivalent to key, preserving the relative
// order of the remaining items, and returns the number removed. Removing a key
// with no matches is a no-op.
func (m *Set[T]) RemoveAll(key T) int {
	lo, hi := runs.Locate(m.s, key, m.ord.OrderOf)
	m.s = slices.Delete(m.s, lo, hi)
	return hi - lo
}

// Drain removes every item equivalent to key and returns the removed items in
// their stored order.
func (m *Set[T]) Drain(key T) []T {
	lo, hi := runs.Locate(m.s, key, m.ord.OrderOf)
	if lo == hi {
		return nil
	}
	out := slices.Clone(m.s[lo:hi])
	m.s = slices.Delete(m.s, lo, hi)
	return out
}

// Update calls fn with the run of items equivalent to key and reports whether
// the run was non-empty. fn may modify the items in place; the set is re-sorted
// afterwards, so modifications are free to move items to other runs. Items fn
// leaves equivalent to each other keep their order.
func (m *Set[T]) Update(key T, fn func(items []T)) bool {
	lo, hi := runs.Locate(m.s, key, m.ord.OrderOf)
	if lo == hi {
		return false
	}
	fn(m.s[lo:hi])
	ordbyset.Sort(m.ord, m.s)
	return true
}

// Range returns the group of all items between the run of from and the run of
// to, both inclusive. The second return value is false if there are none or if
// to orders before from.
func (m *Set[T]) Range(from, to T) (Group[T], bool) {
	lo := runs.LowerBound(m.s, from, m.ord.OrderOf)
	hi := runs.UpperBound(m.s, to, m.ord.OrderOf)
	if hi <= lo {
		return Group[T]{}, false
	}
	return Group[T]{m.s[lo:hi]}, true
}

// Values iterates over all items in their stored order. The sequence must not
// be used across a mutation of the set.
func (m *Set[T]) Values() iter.Seq[T] {
	return slices.Values(m.s)
}
