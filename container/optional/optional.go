// Package optional wraps a value that may or may not be present.
//
// A Value is a plain wrapper and never allocates. It makes the absent case
// explicit: accessors assert presence, Take empties the wrapper, and the
// functional forms (Map, Filter, Reduce, Foreach) are no-ops on an empty
// value. An optional deleter runs whenever a held value is dropped.
package optional

import "github.com/joshuapare/memkit/internal/assert"

// Value holds either one T or nothing. The zero Value is empty with no
// deleter; construct with New or None to attach one.
type Value[T any] struct {
	data  T
	valid bool
	del   func(*T)
}

// New returns a Value holding data. deleter may be nil for trivial types.
func New[T any](data T, deleter func(*T)) Value[T] {
	return Value[T]{data: data, valid: true, del: deleter}
}

// None returns an empty Value. deleter may be nil for trivial types.
func None[T any](deleter func(*T)) Value[T] {
	return Value[T]{del: deleter}
}

// Valid reports whether a value is present.
func (v *Value[T]) Valid() bool {
	return v.valid
}

// Empty reports whether no value is present.
func (v *Value[T]) Empty() bool {
	return !v.valid
}

// Take releases and returns the held value. The Value must not be empty.
func (v *Value[T]) Take() T {
	assert.That(v.valid, "optional: take on empty value")
	v.valid = false
	return v.data
}

// TakeOr releases and returns the held value, or fallback when empty. The
// Value is empty afterwards either way.
func (v *Value[T]) TakeOr(fallback T) T {
	valid := v.valid
	v.valid = false
	if valid {
		return v.data
	}
	return fallback
}

// Borrow returns a pointer to the held value. The Value must not be empty.
func (v *Value[T]) Borrow() *T {
	assert.That(v.valid, "optional: borrow on empty value")
	return &v.data
}

// Reset replaces the held value with data, deleting the previous value if
// one was present.
func (v *Value[T]) Reset(data T) {
	v.drop()
	v.data = data
	v.valid = true
}

// Clear deletes the held value, if any, leaving the Value empty.
func (v *Value[T]) Clear() {
	v.drop()
	var zero T
	v.data = zero
	v.valid = false
}

// Map replaces the held value with transform(value) when present. The old
// value is updated, not deleted.
func (v *Value[T]) Map(transform func(T) T) *Value[T] {
	assert.That(transform != nil, "optional: nil transform")
	if v.valid {
		v.data = transform(v.data)
	}
	return v
}

// Filter empties the Value when predicate rejects the held value, deleting
// it.
func (v *Value[T]) Filter(predicate func(T) bool) *Value[T] {
	assert.That(predicate != nil, "optional: nil predicate")
	if v.valid && !predicate(v.data) {
		v.Clear()
	}
	return v
}

// Reduce folds data into the held value with accumulator when present.
func (v *Value[T]) Reduce(accumulator func(T, T) T, data T) *Value[T] {
	assert.That(accumulator != nil, "optional: nil accumulator")
	if v.valid {
		v.data = accumulator(v.data, data)
	}
	return v
}

// Foreach calls action with the held value when present.
func (v *Value[T]) Foreach(action func(T)) *Value[T] {
	assert.That(action != nil, "optional: nil action")
	if v.valid {
		action(v.data)
	}
	return v
}

// Delete deletes the held value, if any, and zeroes the wrapper.
func (v *Value[T]) Delete() {
	v.drop()
	*v = Value[T]{}
}

func (v *Value[T]) drop() {
	if v.valid && v.del != nil {
		v.del(&v.data)
	}
}
