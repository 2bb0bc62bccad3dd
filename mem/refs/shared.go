package refs

import "github.com/joshuapare/memkit/internal/assert"

// controlBlock is the bookkeeping shared by all handles to one value.
type controlBlock[T any] struct {
	shared uint
	weak   uint
	data   *T // non-nil exactly while shared > 0
	del    func(*T)
}

// release drops the value cell when the strong count hits zero.
func (cb *controlBlock[T]) release() {
	if cb.del != nil {
		cb.del(cb.data)
	}
	cb.data = nil
}

// Shared is an owning handle to a reference-counted value. Construct with
// NewShared or by copying an existing handle; every handle must be Deleted
// exactly once.
type Shared[T any] struct {
	cb *controlBlock[T]
}

// NewShared boxes data with a strong count of one. deleter, when non-nil,
// runs on the value when the last Shared handle is deleted.
func NewShared[T any](data T, deleter func(*T)) Shared[T] {
	return Shared[T]{cb: &controlBlock[T]{
		shared: 1,
		data:   &data,
		del:    deleter,
	}}
}

// Copy returns a new handle to the same value, incrementing the strong
// count.
func (s Shared[T]) Copy() Shared[T] {
	cb := s.block()
	assert.That(cb.shared > 0, "refs: copy of deleted shared")
	assert.That(cb.data != nil, "refs: strong count and data out of sync")
	cb.shared++
	return Shared[T]{cb: cb}
}

// Get returns a pointer to the owned value.
func (s Shared[T]) Get() *T {
	cb := s.block()
	assert.That(cb.shared > 0, "refs: get on deleted shared")
	assert.That(cb.data != nil, "refs: strong count and data out of sync")
	return cb.data
}

// Reset replaces the owned value in place, deleting the old one. Every
// handle to this control block observes the new value.
func (s Shared[T]) Reset(data T) {
	cb := s.block()
	assert.That(cb.shared > 0, "refs: reset on deleted shared")
	assert.That(cb.data != nil, "refs: strong count and data out of sync")
	if cb.del != nil {
		cb.del(cb.data)
	}
	*cb.data = data
}

// SharedCount returns the current strong count.
func (s Shared[T]) SharedCount() uint {
	return s.block().shared
}

// WeakCount returns the current weak count.
func (s Shared[T]) WeakCount() uint {
	return s.block().weak
}

// Downgrade returns a Weak handle observing the same value. The weak handle
// must be Deleted exactly once.
func (s Shared[T]) Downgrade() Weak[T] {
	cb := s.block()
	assert.That(cb.shared > 0, "refs: downgrade of deleted shared")
	assert.That(cb.data != nil, "refs: strong count and data out of sync")
	cb.weak++
	return Weak[T]{cb: cb}
}

// Delete drops this handle. When the strong count reaches zero the value is
// deleted immediately, leaving any weak handles expired. The handle must not
// be used afterwards.
func (s *Shared[T]) Delete() {
	cb := s.block()
	assert.That(cb.shared > 0, "refs: double delete of shared")
	cb.shared--
	if cb.shared == 0 {
		cb.release()
	}
	s.cb = nil
}

func (s Shared[T]) block() *controlBlock[T] {
	assert.That(s.cb != nil, "refs: use of zero or deleted shared handle")
	return s.cb
}
