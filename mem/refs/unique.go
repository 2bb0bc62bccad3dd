package refs

import "github.com/joshuapare/memkit/internal/assert"

// Unique is a single-owner box for a value with an attached deleter. It is
// the degenerate case of Shared for values that are never aliased: no
// counts, just explicit lifetime. Construct with NewUnique; Delete exactly
// once.
type Unique[T any] struct {
	data *T
	del  func(*T)
}

// NewUnique boxes data with its deleter.
func NewUnique[T any](data T, deleter func(*T)) Unique[T] {
	return Unique[T]{data: &data, del: deleter}
}

// Get returns a pointer to the owned value.
func (u Unique[T]) Get() *T {
	assert.That(u.data != nil, "refs: use of zero or deleted unique handle")
	return u.data
}

// Reset replaces the owned value in place, deleting the old one.
func (u Unique[T]) Reset(data T) {
	assert.That(u.data != nil, "refs: reset on deleted unique")
	if u.del != nil {
		u.del(u.data)
	}
	*u.data = data
}

// Delete deletes the owned value. The handle must not be used afterwards.
func (u *Unique[T]) Delete() {
	assert.That(u.data != nil, "refs: double delete of unique")
	if u.del != nil {
		u.del(u.data)
	}
	u.data = nil
}
