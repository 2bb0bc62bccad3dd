package slab

import (
	"github.com/joshuapare/memkit/container/vec"
	"github.com/joshuapare/memkit/internal/assert"
)

// Handle identifies a borrowed entry. The zero Handle is never valid.
type Handle struct {
	Index uint32
	Age   uint32
}

// entry is one backing slot. age == 0 marks the slot vacant.
type entry[T any] struct {
	data T
	age  uint32
}

// Slab is a pool of T addressed by generation-checked handles. Construct
// with New.
type Slab[T any] struct {
	count int
	next  Handle // lowest vacant index and the age of the next borrow
	slots *vec.Vector[entry[T]]
	del   func(*T)
}

// New returns a slab whose backing buffer is pre-sized for capacity entries.
// deleter, when non-nil, runs on an entry's data as it is returned or
// cleared.
func New[T any](capacity int, deleter func(*T)) *Slab[T] {
	assert.That(capacity > 0, "slab: capacity must be positive")
	return &Slab[T]{
		next:  Handle{Index: 0, Age: 1},
		slots: vec.New[entry[T]](capacity, nil),
		del:   deleter,
	}
}

// Copy returns a shallow copy sharing no state with the original. Handles
// issued by the original are valid on the copy and vice versa.
func (s *Slab[T]) Copy() *Slab[T] {
	return &Slab[T]{
		count: s.count,
		next:  s.next,
		slots: s.slots.Copy(),
		del:   s.del,
	}
}

// Count returns the number of borrowed entries.
func (s *Slab[T]) Count() int {
	return s.count
}

// Empty reports whether no entries are borrowed.
func (s *Slab[T]) Empty() bool {
	return s.count == 0
}

// Cap returns the backing buffer's reserved capacity.
func (s *Slab[T]) Cap() int {
	return s.slots.Cap()
}

// Len returns the backing buffer's slot count, vacant slots included. Slots
// [0, Len) are probeable with At.
func (s *Slab[T]) Len() int {
	return s.slots.Count()
}

// Valid reports whether id refers to a currently borrowed entry.
func (s *Slab[T]) Valid(id Handle) bool {
	if s.count == 0 || int(id.Index) >= s.slots.Count() {
		return false
	}
	age := s.slots.Get(int(id.Index)).age
	return age != 0 && age == id.Age
}

// Get returns a pointer to the entry id refers to. id must be valid. The
// pointer is invalidated by any later Borrow.
func (s *Slab[T]) Get(id Handle) *T {
	assert.That(s.Valid(id), "slab: invalid handle")
	return &s.slots.Get(int(id.Index)).data
}

// At probes backing slot i directly, returning its data and true when the
// slot is occupied. This is the raw iteration surface used by signal.Invoke;
// unlike Foreach it tolerates slots changing state between probes.
func (s *Slab[T]) At(i int) (*T, bool) {
	assert.That(i >= 0 && i < s.slots.Count(), "slab: slot index out of range")
	slot := s.slots.Get(i)
	if slot.age == 0 {
		return nil, false
	}
	return &slot.data, true
}

// Borrow stores data in the lowest vacant slot and returns its handle. The
// backing buffer grows when every slot is occupied. Reusing a vacated slot
// advances the age counter first, so the new handle outranks every earlier
// occupant of that slot; handles at never-used indices share the current age
// and are distinct by index alone.
func (s *Slab[T]) Borrow(data T) Handle {
	assert.That(s.count <= s.slots.Count(), "slab: count exceeds backing length")
	if int(s.next.Index) == s.slots.Count() {
		id := s.next
		s.slots.Push(entry[T]{data: data, age: id.Age})
		s.next.Index++
		s.count++
		return id
	}
	s.next.Age++
	assert.That(s.next.Age != 0, "slab: age counter wrapped")
	id := s.next
	slot := s.slots.Get(int(id.Index))
	assert.That(slot.age == 0, "slab: next hint points at an occupied slot")
	slot.data = data
	slot.age = id.Age
	// Advance the hint to the next vacant slot, or the end.
	for {
		s.next.Index++
		if int(s.next.Index) >= s.slots.Count() {
			break
		}
		if s.slots.Get(int(s.next.Index)).age == 0 {
			break
		}
	}
	s.count++
	return id
}

// Return frees the entry id refers to, running the deleter on its data. id
// must be valid and is invalid forever after. The freed index becomes the
// next-borrow hint when lower than the current one, keeping the live set
// dense at the front.
func (s *Slab[T]) Return(id Handle) {
	assert.That(s.count > 0, "slab: return on empty slab")
	assert.That(s.Valid(id), "slab: invalid handle")
	s.count--
	if s.next.Index > id.Index {
		s.next.Index = id.Index
	}
	slot := s.slots.Get(int(id.Index))
	s.delete(slot)
}

// Clear returns every borrowed entry. The age counter is preserved, so
// handles issued before Clear never revalidate.
func (s *Slab[T]) Clear() {
	if s.count == 0 {
		return
	}
	for i := 0; s.count > 0 && i < s.slots.Count(); i++ {
		slot := s.slots.Get(i)
		if slot.age == 0 {
			continue
		}
		s.delete(slot)
		s.count--
	}
	assert.That(s.count == 0, "slab: count drifted from occupied slots")
	s.next.Index = 0
}

// Foreach calls action on each borrowed entry in slot order. It visits
// exactly Count entries and assumes no mutation during the walk.
func (s *Slab[T]) Foreach(action func(T)) {
	assert.That(action != nil, "slab: nil action")
	remaining := s.count
	for i := 0; remaining > 0 && i < s.slots.Count(); i++ {
		slot := s.slots.Get(i)
		if slot.age == 0 {
			continue
		}
		action(slot.data)
		remaining--
	}
	assert.That(remaining == 0, "slab: count drifted from occupied slots")
}

// Delete clears the slab and releases its backing buffer.
func (s *Slab[T]) Delete() {
	s.Clear()
	s.slots.Delete()
}

func (s *Slab[T]) delete(slot *entry[T]) {
	if s.del != nil {
		s.del(&slot.data)
	}
	var zero T
	slot.data = zero
	slot.age = 0
}
