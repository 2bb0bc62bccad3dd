package signal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memkit/internal/assert"
)

type counter struct {
	hits int
	last int
}

func record(c *counter, arg int) {
	c.hits++
	c.last = arg
}

// Test_BindInvoke verifies every binding fires with the argument.
func Test_BindInvoke(t *testing.T) {
	s := New[counter, int](4)
	defer s.Close()

	var a, b counter
	s.Bind(&a, record)
	s.Bind(&b, record)
	require.Equal(t, 2, s.Count())

	s.Invoke(7)
	require.Equal(t, 1, a.hits)
	require.Equal(t, 7, a.last)
	require.Equal(t, 1, b.hits)
	require.Equal(t, 7, b.last)

	s.Invoke(9)
	require.Equal(t, 2, a.hits)
	require.Equal(t, 9, a.last)
}

// Test_SameTargetTwice verifies one target may carry several bindings and
// each fires.
func Test_SameTargetTwice(t *testing.T) {
	s := New[counter, int](4)
	defer s.Close()

	var a counter
	s.Bind(&a, record)
	s.Bind(&a, record)
	s.Invoke(1)
	require.Equal(t, 2, a.hits)
}

// Test_Unbind verifies an unbound binding stops firing and its handle goes
// stale.
func Test_Unbind(t *testing.T) {
	s := New[counter, int](4)
	defer s.Close()

	var a, b counter
	ha := s.Bind(&a, record)
	s.Bind(&b, record)

	require.True(t, s.Bound(ha))
	s.Unbind(ha)
	require.False(t, s.Bound(ha))
	require.Equal(t, 1, s.Count())

	s.Invoke(5)
	require.Equal(t, 0, a.hits, "unbound target must not fire")
	require.Equal(t, 1, b.hits)
}

// Test_UnbindForwardFromCallback has the first binding remove the second
// mid-invoke: the removed binding's slot is vacant when the scan reaches
// it, so it never fires and the invoke completes cleanly.
func Test_UnbindForwardFromCallback(t *testing.T) {
	type node struct {
		hits  int
		other *Handle
	}
	s := New[node, int](4)
	defer s.Close()

	var a, b node
	var hb Handle
	a.other = &hb
	s.Bind(&a, func(n *node, _ int) {
		n.hits++
		s.Unbind(*n.other)
	})
	hb = s.Bind(&b, func(n *node, _ int) { n.hits++ })

	s.Invoke(0)
	require.Equal(t, 1, a.hits)
	require.Equal(t, 0, b.hits, "binding removed before its slot is reached must not fire")
	require.Equal(t, 1, s.Count())
}

// Test_UnbindBackwardFromCallback has the second binding remove the first,
// which has already fired: both run exactly once.
func Test_UnbindBackwardFromCallback(t *testing.T) {
	type node struct {
		hits  int
		other *Handle
	}
	s := New[node, int](4)
	defer s.Close()

	var a, b node
	var ha Handle
	b.other = &ha
	ha = s.Bind(&a, func(n *node, _ int) { n.hits++ })
	s.Bind(&b, func(n *node, _ int) {
		n.hits++
		s.Unbind(*n.other)
	})

	s.Invoke(0)
	require.Equal(t, 1, a.hits, "already-visited binding fired before its removal")
	require.Equal(t, 1, b.hits)
	require.Equal(t, 1, s.Count())
}

// Test_UnbindSelfFromCallback verifies a binding may remove itself while
// firing, and later bindings still run.
func Test_UnbindSelfFromCallback(t *testing.T) {
	type node struct {
		hits int
		self Handle
	}
	s := New[node, int](4)
	defer s.Close()

	var a, b node
	once := func(n *node, _ int) {
		n.hits++
		s.Unbind(n.self)
	}
	a.self = s.Bind(&a, once)
	b.self = s.Bind(&b, once)

	s.Invoke(0)
	require.Equal(t, 1, a.hits)
	require.Equal(t, 1, b.hits)
	require.Equal(t, 0, s.Count(), "both bindings removed themselves")

	s.Invoke(0)
	require.Equal(t, 1, a.hits, "empty signal fires nothing")
}

// Test_BindFromCallback verifies a callback may register new bindings; a
// binding landing behind the scan position waits for the next invoke.
func Test_BindFromCallback(t *testing.T) {
	type node struct{ hits int }
	s := New[node, int](4)
	defer s.Close()

	var a, late node
	s.Bind(&a, func(n *node, _ int) {
		n.hits++
		if late.hits == 0 && n.hits == 1 {
			s.Bind(&late, func(n *node, _ int) { n.hits++ })
		}
	})

	s.Invoke(0)
	require.Equal(t, 1, a.hits)
	require.Equal(t, 2, s.Count())

	s.Invoke(0)
	require.Equal(t, 2, a.hits)
	require.Equal(t, 1, late.hits, "binding added mid-invoke fires on the next pass")
}

// Test_Clear verifies clear drops every binding and stales their handles.
func Test_Clear(t *testing.T) {
	s := New[counter, int](4)
	defer s.Close()

	var a counter
	h := s.Bind(&a, record)
	s.Clear()
	require.True(t, s.Empty())
	require.False(t, s.Bound(h))

	s.Invoke(1)
	require.Equal(t, 0, a.hits)

	// The signal stays usable after Clear.
	s.Bind(&a, record)
	s.Invoke(2)
	require.Equal(t, 1, a.hits)
}

// Test_Copy verifies a copied signal dispatches independently to the same
// targets.
func Test_Copy(t *testing.T) {
	s := New[counter, int](4)
	defer s.Close()

	var a counter
	h := s.Bind(&a, record)

	dup := s.Copy()
	defer dup.Close()

	dup.Invoke(3)
	require.Equal(t, 1, a.hits)

	dup.Unbind(h)
	require.True(t, s.Bound(h), "unbind on the copy must not affect the original")
	s.Invoke(4)
	require.Equal(t, 2, a.hits)
}

// Test_BindContract verifies nil targets and functions are rejected.
func Test_BindContract(t *testing.T) {
	if !assert.Enabled {
		t.Skip("assertions disabled")
	}

	s := New[counter, int](4)
	defer s.Close()

	var a counter
	require.Panics(t, func() { s.Bind(nil, record) })
	require.Panics(t, func() { s.Bind(&a, nil) })
	require.Panics(t, func() { s.Unbind(Handle{}) })
}
