// Package runs locates equivalence runs in slices which are sorted under a
// weak order: all items equivalent to a key occupy one contiguous range.
package runs

import (
	"slices"
)

// LowerBound returns the smallest index i such that order(s[i], key) >= 0, or
// len(s) if there is none. It is the start of the equivalence run for key.
func LowerBound[T any](s []T, key T, order func(left, right T) int) int {
	i, _ := slices.BinarySearchFunc(s, key, order)
	return i
}

// UpperBound returns the smallest index i such that order(s[i], key) > 0, or
// len(s) if there is none. It is the end of the equivalence run for key.
func UpperBound[T any](s []T, key T, order func(left, right T) int) int {
	i, _ := slices.BinarySearchFunc(s, key, func(item, k T) int {
		if order(item, k) > 0 {
			return 1
		}
		return -1
	})
	return i
}

// Locate returns the equivalence run [lo, hi) for key. The second search only
// covers the suffix starting at the lower bound.
func Locate[T any](s []T, key T, order func(left, right T) int) (lo, hi int) {
	lo = LowerBound(s, key, order)
	hi = lo + UpperBound(s[lo:], key, order)
	return
}
