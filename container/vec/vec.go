// Package vec implements a growable contiguous buffer with explicit capacity
// control and an optional per-element deleter.
//
// Vector is the backing store for mem/slab, container/hashmap and
// container/strbuf. Unlike a bare slice it never grows through append's
// policy: capacity doubles exactly when full, and shrinking runs the deleter
// on every truncated element. Pointers returned by Get are invalidated by any
// operation that can reallocate the buffer (Push, Insert, Resize).
//
// A Vector is not safe for concurrent use.
package vec

import (
	"github.com/joshuapare/memkit/internal/assert"
	"github.com/joshuapare/memkit/internal/intmath"
)

// growthFactor is the capacity multiplier applied when a full vector grows.
const growthFactor = 2

// Vector is a dynamic array of T. The zero value is not usable; construct
// with New.
type Vector[T any] struct {
	elems []T // len tracks the live count, cap is the reserved capacity
	del   func(*T)
}

// New returns a vector with the given initial capacity. deleter, when
// non-nil, runs on every element as it is removed, truncated or cleared.
func New[T any](capacity int, deleter func(*T)) *Vector[T] {
	assert.That(capacity > 0, "vec: capacity must be positive")
	return &Vector[T]{
		elems: make([]T, 0, capacity),
		del:   deleter,
	}
}

// Copy returns a shallow copy with the same capacity, count and deleter.
func (u *Vector[T]) Copy() *Vector[T] {
	out := &Vector[T]{
		elems: make([]T, len(u.elems), cap(u.elems)),
		del:   u.del,
	}
	copy(out.elems, u.elems)
	return out
}

// Count returns the number of live elements.
func (u *Vector[T]) Count() int {
	return len(u.elems)
}

// Cap returns the reserved capacity.
func (u *Vector[T]) Cap() int {
	return cap(u.elems)
}

// Empty reports whether the vector holds no elements.
func (u *Vector[T]) Empty() bool {
	return len(u.elems) == 0
}

// Get returns a pointer to the element at index. The pointer is valid only
// until the next operation that may reallocate the buffer.
func (u *Vector[T]) Get(index int) *T {
	assert.That(index >= 0 && index < len(u.elems), "vec: index out of range")
	return &u.elems[index]
}

// Resize changes the reserved capacity. Shrinking below the current count
// runs the deleter on each truncated element.
func (u *Vector[T]) Resize(capacity int) {
	assert.That(capacity > 0, "vec: capacity must be positive")
	if capacity == cap(u.elems) {
		return
	}
	count := len(u.elems)
	if capacity < count {
		for i := capacity; i < count; i++ {
			u.delete(&u.elems[i])
		}
		count = capacity
	}
	elems := make([]T, count, capacity)
	copy(elems, u.elems[:count])
	u.elems = elems
}

// Insert places data at index, shifting later elements up. index may equal
// Count to append.
func (u *Vector[T]) Insert(index int, data T) {
	assert.That(index >= 0 && index <= len(u.elems), "vec: insert index out of range")
	u.reserve()
	var zero T
	u.elems = append(u.elems, zero)
	copy(u.elems[index+1:], u.elems[index:])
	u.elems[index] = data
}

// Erase removes the element at index after running the deleter on it.
func (u *Vector[T]) Erase(index int) {
	assert.That(index >= 0 && index < len(u.elems), "vec: erase index out of range")
	u.delete(&u.elems[index])
	last := len(u.elems) - 1
	copy(u.elems[index:], u.elems[index+1:])
	var zero T
	u.elems[last] = zero
	u.elems = u.elems[:last]
}

// Push appends data, doubling capacity when full.
func (u *Vector[T]) Push(data T) {
	u.reserve()
	u.elems = append(u.elems, data)
}

// Pop removes the last element after running the deleter on it.
func (u *Vector[T]) Pop() {
	assert.That(len(u.elems) > 0, "vec: pop from empty vector")
	last := len(u.elems) - 1
	u.delete(&u.elems[last])
	var zero T
	u.elems[last] = zero
	u.elems = u.elems[:last]
}

// Reverse reverses the elements in place.
func (u *Vector[T]) Reverse() {
	for i, j := 0, len(u.elems)-1; i < j; i, j = i+1, j-1 {
		u.elems[i], u.elems[j] = u.elems[j], u.elems[i]
	}
}

// Clear removes every element, running the deleter on each. Capacity is
// retained.
func (u *Vector[T]) Clear() {
	for i := range u.elems {
		u.delete(&u.elems[i])
	}
	clear(u.elems)
	u.elems = u.elems[:0]
}

// Map replaces each element with transform(element).
func (u *Vector[T]) Map(transform func(T) T) {
	assert.That(transform != nil, "vec: nil transform")
	for i := range u.elems {
		u.elems[i] = transform(u.elems[i])
	}
}

// Filter keeps only elements satisfying predicate, deleting the rest, and
// returns the surviving count. Relative order is preserved.
func (u *Vector[T]) Filter(predicate func(T) bool) int {
	assert.That(predicate != nil, "vec: nil predicate")
	total := 0
	for i := range u.elems {
		if predicate(u.elems[i]) {
			u.elems[total] = u.elems[i]
			total++
		} else {
			u.delete(&u.elems[i])
		}
	}
	tail := u.elems[total:]
	clear(tail)
	u.elems = u.elems[:total]
	return total
}

// Reduce folds the elements into start using accumulator, front to back.
func (u *Vector[T]) Reduce(start T, accumulator func(T, T) T) T {
	assert.That(accumulator != nil, "vec: nil accumulator")
	acc := start
	for i := range u.elems {
		acc = accumulator(acc, u.elems[i])
	}
	return acc
}

// Foreach calls action on each element, front to back.
func (u *Vector[T]) Foreach(action func(T)) {
	assert.That(action != nil, "vec: nil action")
	for i := range u.elems {
		action(u.elems[i])
	}
}

// Delete clears the vector and releases its buffer. The vector must not be
// used afterwards.
func (u *Vector[T]) Delete() {
	u.Clear()
	u.elems = nil
}

// reserve guarantees room for one more element.
func (u *Vector[T]) reserve() {
	if len(u.elems) < cap(u.elems) {
		return
	}
	next, ok := intmath.MulOK(cap(u.elems), growthFactor)
	assert.That(ok, "vec: capacity overflow")
	u.Resize(next)
}

func (u *Vector[T]) delete(elem *T) {
	if u.del != nil {
		u.del(elem)
	}
}
