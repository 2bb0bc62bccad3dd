// Package sortedset implements an ordered set with the usual set algebra.
//
// Storage delegates to google/btree, so Insert, Erase, Contains, Least and
// Greatest are O(log n) and iteration is in ascending order. The algebra
// operations (Union, Intersect, Difference, Subset) mutate or query the
// receiver against another set built with a compatible order.
//
// A Set is not safe for concurrent use.
package sortedset

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"

	"github.com/joshuapare/memkit/internal/assert"
)

// degree is the btree branching factor. 16 keeps nodes around a cache line
// for small element types without deep trees.
const degree = 16

// Set is an ordered set of T. Construct with New or NewFunc.
type Set[T any] struct {
	tree *btree.BTreeG[T]
}

// New returns an empty set using the natural ascending order of T.
func New[T constraints.Ordered]() *Set[T] {
	return NewFunc[T](func(x, y T) bool { return x < y })
}

// NewFunc returns an empty set ordered by less, which must be a strict weak
// ordering. Two elements neither of which is less than the other are
// considered equal.
func NewFunc[T any](less func(x, y T) bool) *Set[T] {
	assert.That(less != nil, "sortedset: nil less function")
	return &Set[T]{tree: btree.NewG(degree, btree.LessFunc[T](less))}
}

// Copy returns an independent copy of the set.
func (s *Set[T]) Copy() *Set[T] {
	return &Set[T]{tree: s.tree.Clone()}
}

// Count returns the number of elements.
func (s *Set[T]) Count() int {
	return s.tree.Len()
}

// Empty reports whether the set has no elements.
func (s *Set[T]) Empty() bool {
	return s.tree.Len() == 0
}

// Insert adds data and reports whether it was absent.
func (s *Set[T]) Insert(data T) bool {
	_, replaced := s.tree.ReplaceOrInsert(data)
	return !replaced
}

// Erase removes data and reports whether it was present.
func (s *Set[T]) Erase(data T) bool {
	_, removed := s.tree.Delete(data)
	return removed
}

// Contains reports whether data is in the set.
func (s *Set[T]) Contains(data T) bool {
	return s.tree.Has(data)
}

// Find returns the stored element equal to data, if any.
func (s *Set[T]) Find(data T) (T, bool) {
	return s.tree.Get(data)
}

// Least returns the smallest element. The set must not be empty.
func (s *Set[T]) Least() T {
	least, ok := s.tree.Min()
	assert.That(ok, "sortedset: least of empty set")
	return least
}

// Greatest returns the largest element. The set must not be empty.
func (s *Set[T]) Greatest() T {
	greatest, ok := s.tree.Max()
	assert.That(ok, "sortedset: greatest of empty set")
	return greatest
}

// Union adds every element of other to the set.
func (s *Set[T]) Union(other *Set[T]) {
	other.Foreach(func(data T) {
		s.tree.ReplaceOrInsert(data)
	})
}

// Intersect keeps only the elements also present in other.
func (s *Set[T]) Intersect(other *Set[T]) {
	var drop []T
	s.tree.Ascend(func(data T) bool {
		if !other.Contains(data) {
			drop = append(drop, data)
		}
		return true
	})
	for _, data := range drop {
		s.tree.Delete(data)
	}
}

// Difference removes every element present in other.
func (s *Set[T]) Difference(other *Set[T]) {
	other.Foreach(func(data T) {
		s.tree.Delete(data)
	})
}

// Subset reports whether every element of the set is in other.
func (s *Set[T]) Subset(other *Set[T]) bool {
	subset := true
	s.tree.Ascend(func(data T) bool {
		if !other.Contains(data) {
			subset = false
			return false
		}
		return true
	})
	return subset
}

// Clear removes every element.
func (s *Set[T]) Clear() {
	s.tree.Clear(false)
}

// Foreach calls action on each element in ascending order.
func (s *Set[T]) Foreach(action func(T)) {
	assert.That(action != nil, "sortedset: nil action")
	s.tree.Ascend(func(data T) bool {
		action(data)
		return true
	})
}
