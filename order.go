// Package ordbyset provides the ordering capability used by the containers in
// this module. An Orderer is allowed to report two distinct values as equal:
// equality means "same equivalence class under the order", not value identity.
package ordbyset

import (
	"cmp"
	"slices"
)

// Orderer takes two items and orders them, returning a negative number if left
// comes before right, zero if the two are equivalent and a positive number
// otherwise. Implementations must behave as if they compared keys extracted
// from the items by a fixed function into a totally ordered domain; in
// particular the zero result must be transitive. Containers built on an
// Orderer that breaks this contract return incomplete or incorrect results
// without reporting an error.
type Orderer[T any] interface {
	OrderOf(left, right T) int
}

// OrderFunc adapts an ordinary comparison function to an Orderer, allowing
// ad-hoc orderings from closures.
type OrderFunc[T any] func(left, right T) int

func (f OrderFunc[T]) OrderOf(left, right T) int {
	return f(left, right)
}

// FullOrder is a stateless Orderer that defers to the natural order of T.
type FullOrder[T cmp.Ordered] struct{}

func (FullOrder[T]) OrderOf(left, right T) int {
	return cmp.Compare(left, right)
}

// KeyOrder returns an Orderer that compares items by the key extracted by
// key. Orderers built this way satisfy the Orderer contract for any key
// function that is pure.
func KeyOrder[T any, K cmp.Ordered](key func(T) K) Orderer[T] {
	return OrderFunc[T](func(left, right T) int {
		return cmp.Compare(key(left), key(right))
	})
}

// Sort sorts items in place according to ord. The sort is stable: items which
// ord reports as equivalent keep their original relative order.
func Sort[T any](ord Orderer[T], items []T) {
	slices.SortStableFunc(items, ord.OrderOf)
}
