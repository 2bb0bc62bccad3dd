// Package signal implements multicast dispatch: a registry of (target,
// function) bindings sharing one call signature, invoked as a group.
//
// Bindings live in a mem/slab, so Bind returns a generation-checked Handle
// that serves as the unbind token and can never be confused with a later
// binding reusing the same slot.
//
// Invoke walks the slab's backing slots in index order and calls every
// occupied binding, counting down from the live count taken at entry. The
// walk identifies live bindings purely by the per-slot generation check at
// the moment the slot is reached, which makes mutation from inside callbacks
// well-defined: a callback may unbind any binding, including itself; an
// unbound, not-yet-visited binding is simply skipped. A callback may also
// bind new ones, but a binding added during the walk does not extend the
// countdown and so normally waits for the next invoke. No ordering among
// bindings is guaranteed, and slot order is not registration order.
//
// A Signal is not safe for concurrent use. Targets must outlive their
// bindings; unbind on destruction of the target.
package signal

import (
	"github.com/joshuapare/memkit/internal/assert"
	"github.com/joshuapare/memkit/mem/slab"
)

// Func is the shared call signature: a target object and one argument value.
// Callbacks needing several arguments use a struct for A; callbacks needing
// none use a zero-size A.
type Func[T, A any] func(*T, A)

// Handle identifies a binding for later Unbind. It is a slab handle: stale
// handles are detected, never silently accepted.
type Handle = slab.Handle

// binding pairs a target with the function to call on it.
type binding[T, A any] struct {
	target *T
	fn     Func[T, A]
}

// Signal is a multicast registry of bindings. Construct with New.
type Signal[T, A any] struct {
	bindings *slab.Slab[binding[T, A]]
}

// New returns a signal pre-sized for capacity bindings.
func New[T, A any](capacity int) *Signal[T, A] {
	return &Signal[T, A]{
		bindings: slab.New[binding[T, A]](capacity, nil),
	}
}

// Copy returns an independent signal with the same bindings. Handles issued
// by the original are valid on the copy.
func (s *Signal[T, A]) Copy() *Signal[T, A] {
	return &Signal[T, A]{bindings: s.bindings.Copy()}
}

// Count returns the number of live bindings.
func (s *Signal[T, A]) Count() int {
	return s.bindings.Count()
}

// Empty reports whether no bindings are live.
func (s *Signal[T, A]) Empty() bool {
	return s.bindings.Empty()
}

// Bound reports whether handle refers to a live binding.
func (s *Signal[T, A]) Bound(handle Handle) bool {
	return s.bindings.Valid(handle)
}

// Bind registers fn to be invoked on target and returns the unbind token.
func (s *Signal[T, A]) Bind(target *T, fn Func[T, A]) Handle {
	assert.That(target != nil, "signal: nil target")
	assert.That(fn != nil, "signal: nil func")
	return s.bindings.Borrow(binding[T, A]{target: target, fn: fn})
}

// Unbind removes the binding handle refers to. The handle must be bound.
func (s *Signal[T, A]) Unbind(handle Handle) {
	assert.That(s.Bound(handle), "signal: unbind of stale handle")
	s.bindings.Return(handle)
}

// Invoke calls every live binding with arg, in slot order. The countdown
// from the live count stops the scan once every binding seen at entry has
// been visited; callbacks may bind and unbind freely during the walk (see
// the package comment for the exact contract).
func (s *Signal[T, A]) Invoke(arg A) {
	remaining := s.bindings.Count()
	for i := 0; remaining > 0 && i < s.bindings.Len(); i++ {
		b, ok := s.bindings.At(i)
		if !ok {
			continue
		}
		assert.That(b.target != nil && b.fn != nil, "signal: corrupt binding")
		// Copy out before calling: a callback that binds may grow the
		// backing buffer and invalidate b.
		target, fn := b.target, b.fn
		fn(target, arg)
		remaining--
	}
}

// Clear removes every binding. Outstanding handles become stale.
func (s *Signal[T, A]) Clear() {
	s.bindings.Clear()
}

// Close clears the signal and releases its backing storage.
func (s *Signal[T, A]) Close() {
	s.bindings.Delete()
}
