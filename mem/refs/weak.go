package refs

import "github.com/joshuapare/memkit/internal/assert"

// Weak is a non-owning handle to a Shared value. It keeps the control block
// alive but not the value, so it can outlive every Shared handle and detect
// expiry through Valid. Construct with Shared.Downgrade or Copy; every
// handle must be Deleted exactly once.
type Weak[T any] struct {
	cb *controlBlock[T]
}

// Copy returns a new weak handle to the same control block.
func (w Weak[T]) Copy() Weak[T] {
	cb := w.block()
	assert.That(cb.weak > 0, "refs: copy of deleted weak")
	cb.weak++
	return Weak[T]{cb: cb}
}

// Valid reports whether the observed value is still alive, i.e. at least one
// Shared handle remains.
func (w Weak[T]) Valid() bool {
	cb := w.block()
	assert.That(cb.weak > 0, "refs: use of deleted weak")
	assert.That((cb.shared > 0) != (cb.data == nil), "refs: strong count and data out of sync")
	return cb.shared > 0
}

// Upgrade regains strong ownership, returning a new Shared handle. The value
// must still be alive; check Valid first. The returned handle must be
// Deleted exactly once.
func (w Weak[T]) Upgrade() Shared[T] {
	cb := w.block()
	assert.That(cb.weak > 0, "refs: use of deleted weak")
	assert.That(cb.shared > 0, "refs: upgrade of expired weak")
	assert.That(cb.data != nil, "refs: strong count and data out of sync")
	cb.shared++
	return Shared[T]{cb: cb}
}

// SharedCount returns the current strong count.
func (w Weak[T]) SharedCount() uint {
	return w.block().shared
}

// WeakCount returns the current weak count.
func (w Weak[T]) WeakCount() uint {
	return w.block().weak
}

// Delete drops this handle. The handle must not be used afterwards.
func (w *Weak[T]) Delete() {
	cb := w.block()
	assert.That(cb.weak > 0, "refs: double delete of weak")
	cb.weak--
	if cb.weak == 0 && cb.shared == 0 {
		// Fully dead: the value must already be gone.
		assert.That(cb.data == nil, "refs: dead control block still holds data")
	}
	w.cb = nil
}

func (w Weak[T]) block() *controlBlock[T] {
	assert.That(w.cb != nil, "refs: use of zero or deleted weak handle")
	return w.cb
}
