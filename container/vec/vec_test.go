package vec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memkit/internal/assert"
)

// Test_PushGetPop verifies the basic stack discipline and index access.
func Test_PushGetPop(t *testing.T) {
	v := New[int](4, nil)
	defer v.Delete()

	require.True(t, v.Empty())
	for i := 0; i < 10; i++ {
		v.Push(i * 2)
	}
	require.Equal(t, 10, v.Count())
	require.False(t, v.Empty())
	for i := 0; i < 10; i++ {
		require.Equal(t, i*2, *v.Get(i))
	}

	v.Pop()
	require.Equal(t, 9, v.Count())
	require.Equal(t, 16, *v.Get(8))
}

// Test_Growth verifies capacity doubles exactly when full.
func Test_Growth(t *testing.T) {
	v := New[int](2, nil)
	defer v.Delete()

	require.Equal(t, 2, v.Cap())
	v.Push(1)
	v.Push(2)
	require.Equal(t, 2, v.Cap(), "no growth until full")
	v.Push(3)
	require.Equal(t, 4, v.Cap())
	for it := 0; it < 5; it++ {
		v.Push(0)
	}
	require.Equal(t, 8, v.Cap())
}

// Test_InsertErase verifies positional edits preserve order.
func Test_InsertErase(t *testing.T) {
	v := New[string](4, nil)
	defer v.Delete()

	v.Push("a")
	v.Push("c")
	v.Insert(1, "b")
	v.Insert(3, "d") // insert at Count appends

	require.Equal(t, 4, v.Count())
	for i, want := range []string{"a", "b", "c", "d"} {
		require.Equal(t, want, *v.Get(i))
	}

	v.Erase(1)
	require.Equal(t, 3, v.Count())
	for i, want := range []string{"a", "c", "d"} {
		require.Equal(t, want, *v.Get(i))
	}
}

// Test_Deleter verifies the deleter runs on erase, pop, truncation, filter
// rejects and clear, and never on surviving elements.
func Test_Deleter(t *testing.T) {
	var deleted []int
	v := New[int](8, func(e *int) { deleted = append(deleted, *e) })

	for i := 1; i <= 6; i++ {
		v.Push(i)
	}
	v.Erase(0) // deletes 1
	v.Pop()    // deletes 6
	require.Equal(t, []int{1, 6}, deleted)

	v.Resize(2) // truncates 4, 5
	require.Equal(t, []int{1, 6, 4, 5}, deleted)
	require.Equal(t, 2, v.Count())

	v.Delete() // clears 2, 3
	require.Equal(t, []int{1, 6, 4, 5, 2, 3}, deleted)
}

// Test_Functional covers Map, Filter, Reduce and Foreach.
func Test_Functional(t *testing.T) {
	v := New[int](8, nil)
	defer v.Delete()

	for i := 1; i <= 6; i++ {
		v.Push(i)
	}

	v.Map(func(e int) int { return e * 10 })
	require.Equal(t, 60, *v.Get(5))

	kept := v.Filter(func(e int) bool { return e%20 == 0 })
	require.Equal(t, 3, kept)
	require.Equal(t, 3, v.Count())
	for i, want := range []int{20, 40, 60} {
		require.Equal(t, want, *v.Get(i))
	}

	sum := v.Reduce(0, func(acc, e int) int { return acc + e })
	require.Equal(t, 120, sum)

	var visited []int
	v.Foreach(func(e int) { visited = append(visited, e) })
	require.Equal(t, []int{20, 40, 60}, visited)
}

// Test_Reverse verifies in-place reversal for even and odd counts.
func Test_Reverse(t *testing.T) {
	v := New[int](4, nil)
	defer v.Delete()

	for i := 1; i <= 5; i++ {
		v.Push(i)
	}
	v.Reverse()
	for i, want := range []int{5, 4, 3, 2, 1} {
		require.Equal(t, want, *v.Get(i))
	}
}

// Test_CopyIndependence verifies a copy shares no buffer with the original.
func Test_CopyIndependence(t *testing.T) {
	v := New[int](4, nil)
	defer v.Delete()
	v.Push(1)
	v.Push(2)

	dup := v.Copy()
	defer dup.Delete()
	require.Equal(t, v.Count(), dup.Count())
	require.Equal(t, v.Cap(), dup.Cap())

	*dup.Get(0) = 99
	dup.Push(3)
	require.Equal(t, 1, *v.Get(0))
	require.Equal(t, 2, v.Count())
}

// Test_ClearRetainsCapacity verifies clear empties without reallocating.
func Test_ClearRetainsCapacity(t *testing.T) {
	v := New[int](4, nil)
	defer v.Delete()

	for i := 0; i < 10; i++ {
		v.Push(i)
	}
	capBefore := v.Cap()
	v.Clear()
	require.Equal(t, 0, v.Count())
	require.Equal(t, capBefore, v.Cap())

	v.Push(42)
	require.Equal(t, 42, *v.Get(0))
}

// Test_Bounds verifies out-of-range access is rejected.
func Test_Bounds(t *testing.T) {
	if !assert.Enabled {
		t.Skip("assertions disabled")
	}

	v := New[int](4, nil)
	defer v.Delete()
	v.Push(1)

	require.Panics(t, func() { v.Get(1) })
	require.Panics(t, func() { v.Get(-1) })
	require.Panics(t, func() { v.Erase(1) })
	require.Panics(t, func() { v.Insert(3, 0) })
	require.Panics(t, func() { New[int](0, nil) })

	v.Pop()
	require.Panics(t, func() { v.Pop() })
}
