package slab

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memkit/internal/assert"
)

// Test_BorrowReturn walks the basic handle lifecycle: borrow yields
// {index 0, age 1}, return invalidates it, and the next borrow of the same
// slot carries a fresh age.
func Test_BorrowReturn(t *testing.T) {
	s := New[int](4, nil)
	defer s.Delete()

	id := s.Borrow(42)
	require.Equal(t, Handle{Index: 0, Age: 1}, id)
	require.True(t, s.Valid(id))
	require.Equal(t, 42, *s.Get(id))
	require.Equal(t, 1, s.Count())

	s.Return(id)
	require.False(t, s.Valid(id), "returned handle must not validate")
	require.Equal(t, 0, s.Count())
	require.True(t, s.Empty())

	// The slot is reused but under a new generation.
	id2 := s.Borrow(7)
	require.Equal(t, Handle{Index: 0, Age: 2}, id2, "lowest vacant slot reused, age advanced")
	require.False(t, s.Valid(id), "stale handle must not revalidate on reuse")
	require.True(t, s.Valid(id2))
	require.Equal(t, 7, *s.Get(id2))
}

// Test_ReuseScenario pins the two-borrow reuse sequence: fresh slots share
// the initial age and differ by index, and reusing a returned slot bumps
// the generation.
func Test_ReuseScenario(t *testing.T) {
	s := New[int](2, nil)
	defer s.Delete()

	id0 := s.Borrow(10)
	id1 := s.Borrow(11)
	require.Equal(t, Handle{Index: 0, Age: 1}, id0)
	require.Equal(t, Handle{Index: 1, Age: 1}, id1)

	s.Return(id0)
	id2 := s.Borrow(12)
	require.Equal(t, Handle{Index: 0, Age: 2}, id2)
	require.False(t, s.Valid(id0), "the slot's first occupant is stale")
	require.True(t, s.Valid(id1))
	require.Equal(t, 12, *s.Get(id2))
}

// Test_HandleUniqueness verifies that no two handles ever issued by one
// slab compare equal, even across heavy reuse of the same slots.
func Test_HandleUniqueness(t *testing.T) {
	s := New[int](4, nil)
	defer s.Delete()

	seen := make(map[Handle]bool)
	var live []Handle
	for i := 0; i < 1000; i++ {
		if len(live) == 4 {
			// Return the oldest to force slot reuse.
			s.Return(live[0])
			live = live[1:]
		}
		id := s.Borrow(i)
		require.False(t, seen[id], "handle %v issued twice", id)
		seen[id] = true
		live = append(live, id)
	}
}

// Test_DensePacking verifies that borrows always fill the lowest vacant
// index, keeping live entries packed at the front.
func Test_DensePacking(t *testing.T) {
	s := New[string](8, nil)
	defer s.Delete()

	a := s.Borrow("a")
	b := s.Borrow("b")
	c := s.Borrow("c")
	require.Equal(t, uint32(0), a.Index)
	require.Equal(t, uint32(1), b.Index)
	require.Equal(t, uint32(2), c.Index)

	// Free the middle, then the front. The next borrows must take index 0
	// then index 1, not append.
	s.Return(b)
	s.Return(a)

	d := s.Borrow("d")
	require.Equal(t, uint32(0), d.Index)
	e := s.Borrow("e")
	require.Equal(t, uint32(1), e.Index)
	f := s.Borrow("f")
	require.Equal(t, uint32(3), f.Index, "index 2 is occupied, next vacancy is 3")

	require.Equal(t, "c", *s.Get(c))
	require.Equal(t, "d", *s.Get(d))
	require.Equal(t, "e", *s.Get(e))
	require.Equal(t, "f", *s.Get(f))
}

// Test_Deleter verifies the deleter runs exactly once per returned entry,
// including via Clear and Delete.
func Test_Deleter(t *testing.T) {
	deleted := make(map[int]int)
	s := New[int](4, func(v *int) { deleted[*v]++ })

	a := s.Borrow(1)
	s.Borrow(2)
	s.Borrow(3)

	s.Return(a)
	require.Equal(t, map[int]int{1: 1}, deleted)

	s.Clear()
	require.Equal(t, map[int]int{1: 1, 2: 1, 3: 1}, deleted)

	s.Borrow(4)
	s.Delete()
	require.Equal(t, map[int]int{1: 1, 2: 1, 3: 1, 4: 1}, deleted)
}

// Test_ClearPreservesGenerations verifies handles issued before Clear do
// not validate against entries borrowed after it.
func Test_ClearPreservesGenerations(t *testing.T) {
	s := New[int](4, nil)
	defer s.Delete()

	old := s.Borrow(1)
	s.Borrow(2)
	s.Clear()
	require.Equal(t, 0, s.Count())

	fresh := s.Borrow(3)
	require.Equal(t, old.Index, fresh.Index, "slot 0 should be reused after Clear")
	require.False(t, s.Valid(old), "pre-Clear handle must stay dead")
	require.True(t, s.Valid(fresh))
}

// Test_Growth verifies the slab grows past its initial capacity without
// disturbing existing entries.
func Test_Growth(t *testing.T) {
	s := New[int](2, nil)
	defer s.Delete()

	handles := make([]Handle, 50)
	for i := range handles {
		handles[i] = s.Borrow(i * 10)
	}
	require.Equal(t, 50, s.Count())
	require.GreaterOrEqual(t, s.Cap(), 50)

	for i, id := range handles {
		require.True(t, s.Valid(id))
		require.Equal(t, i*10, *s.Get(id))
	}
	for _, id := range handles {
		s.Return(id)
	}
	require.True(t, s.Empty())
}

// Test_Foreach verifies iteration visits exactly the borrowed entries in
// slot order, skipping vacancies.
func Test_Foreach(t *testing.T) {
	s := New[int](8, nil)
	defer s.Delete()

	ids := make([]Handle, 5)
	for i := range ids {
		ids[i] = s.Borrow(i)
	}
	s.Return(ids[1])
	s.Return(ids[3])

	var got []int
	s.Foreach(func(v int) { got = append(got, v) })
	require.Equal(t, []int{0, 2, 4}, got)
}

// Test_Copy verifies a copied slab shares handles but not storage.
func Test_Copy(t *testing.T) {
	s := New[int](4, nil)
	defer s.Delete()

	id := s.Borrow(10)
	dup := s.Copy()
	defer dup.Delete()

	require.True(t, dup.Valid(id))
	require.Equal(t, 10, *dup.Get(id))

	*dup.Get(id) = 99
	require.Equal(t, 10, *s.Get(id), "copies must not share storage")

	dup.Return(id)
	require.True(t, s.Valid(id), "return on the copy must not affect the original")
}

// Test_InvalidHandlePanics verifies the guarded accessors reject stale and
// malformed handles.
func Test_InvalidHandlePanics(t *testing.T) {
	if !assert.Enabled {
		t.Skip("assertions disabled")
	}

	s := New[int](4, nil)
	defer s.Delete()

	id := s.Borrow(1)
	s.Return(id)

	require.Panics(t, func() { s.Get(id) })
	require.Panics(t, func() { s.Return(id) })
	require.Panics(t, func() { s.Get(Handle{Index: 99, Age: 1}) })
	require.False(t, s.Valid(Handle{}), "zero handle is never valid")
}
