package hashmap

import (
	"github.com/joshuapare/memkit/internal/assert"
	"github.com/joshuapare/memkit/internal/intmath"
)

// Load factor bound: count/capacity stays at or below loadNum/loadDen.
const (
	loadNum = 1
	loadDen = 2

	// growthFactor is applied to capacity when the map is overloaded.
	growthFactor = 2
)

// Bucket states.
const (
	stateEmpty uint8 = iota // never occupied; terminates probe sequences
	stateOccupied
	stateSkip // tombstone; probed past, reusable by Insert
)

type bucket[K, V any] struct {
	key   K
	value V
	state uint8
}

// Map is an open-addressing hash map from K to V. Construct with New.
type Map[K, V any] struct {
	count   int
	buckets []bucket[K, V]
	hash    func(K) uint64
	eq      func(K, K) bool
	del     func(*V)
}

// New returns a map with the given initial bucket capacity. hash and eq are
// the key hash and equality functions; both must be pure and consistent with
// each other. deleter, when non-nil, runs on a value as it is overwritten,
// erased or cleared.
func New[K, V any](capacity int, hash func(K) uint64, eq func(K, K) bool, deleter func(*V)) *Map[K, V] {
	assert.That(capacity > 0, "hashmap: capacity must be positive")
	assert.That(hash != nil, "hashmap: nil hash function")
	assert.That(eq != nil, "hashmap: nil equality function")
	return &Map[K, V]{
		buckets: make([]bucket[K, V], capacity),
		hash:    hash,
		eq:      eq,
		del:     deleter,
	}
}

// Copy returns a shallow copy with the same buckets, capacity and functions.
func (m *Map[K, V]) Copy() *Map[K, V] {
	out := &Map[K, V]{
		count:   m.count,
		buckets: make([]bucket[K, V], len(m.buckets)),
		hash:    m.hash,
		eq:      m.eq,
		del:     m.del,
	}
	copy(out.buckets, m.buckets)
	return out
}

// Count returns the number of live entries.
func (m *Map[K, V]) Count() int {
	return m.count
}

// Capacity returns the current bucket-array size.
func (m *Map[K, V]) Capacity() int {
	return len(m.buckets)
}

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool {
	return m.count == 0
}

// Find returns a pointer to the value stored under key, or nil when the key
// is absent. The pointer is invalidated by any later Insert or Resize.
func (m *Map[K, V]) Find(key K) *V {
	capacity := len(m.buckets)
	h := int(m.hash(key) % uint64(capacity))
	remaining := m.count
	for i := 0; remaining > 0 && i < capacity; i++ {
		b := &m.buckets[(h+i)%capacity]
		if b.state == stateEmpty {
			return nil
		}
		if b.state == stateSkip {
			continue
		}
		if m.eq(key, b.key) {
			return &b.value
		}
		remaining--
	}
	assert.That(remaining == 0, "hashmap: count drifted from occupied buckets")
	return nil
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.Find(key) != nil
}

// Insert stores value under key and reports whether an existing value was
// replaced. A replaced value is deleted first. The map resizes before the
// insert whenever it would push the load factor above 1/2.
func (m *Map[K, V]) Insert(key K, value V) bool {
	if loadDen*(m.count+1) > loadNum*len(m.buckets) {
		m.grow()
	}
	h := m.hash(key)
	for {
		capacity := len(m.buckets)
		start := int(h % uint64(capacity))
		var target *bucket[K, V]
		for i := 0; i < capacity; i++ {
			b := &m.buckets[(start+i)%capacity]
			if b.state == stateEmpty {
				// New key. Land in the earliest tombstone seen, else here.
				if target == nil {
					target = b
				}
				target.key = key
				target.value = value
				target.state = stateOccupied
				m.count++
				return false
			}
			if b.state == stateSkip {
				if target == nil {
					target = b
				}
				continue
			}
			if m.eq(key, b.key) {
				m.delete(&b.value)
				b.value = value
				return true
			}
		}
		// Every bucket was occupied or skip and the key was not found.
		// Rehashing drops the tombstones and retries the probe.
		m.grow()
	}
}

// Erase removes key's entry, deleting its value, and reports whether a match
// was found. The bucket becomes a tombstone, never Empty, so probe sequences
// through it stay correct.
func (m *Map[K, V]) Erase(key K) bool {
	capacity := len(m.buckets)
	h := int(m.hash(key) % uint64(capacity))
	remaining := m.count
	for i := 0; remaining > 0 && i < capacity; i++ {
		b := &m.buckets[(h+i)%capacity]
		if b.state == stateEmpty {
			return false
		}
		if b.state == stateSkip {
			continue
		}
		if m.eq(key, b.key) {
			m.count--
			m.delete(&b.value)
			var zeroK K
			var zeroV V
			b.key = zeroK
			b.value = zeroV
			b.state = stateSkip
			return true
		}
		remaining--
	}
	return false
}

// Resize rehashes into a fresh bucket array of the given capacity, which
// must hold at least Count entries. Tombstones are dropped; every occupied
// bucket re-probes from its recomputed hash and takes the first open slot.
func (m *Map[K, V]) Resize(capacity int) {
	assert.That(capacity > 0, "hashmap: capacity must be positive")
	assert.That(capacity >= m.count, "hashmap: capacity below count")
	if capacity == len(m.buckets) {
		return
	}
	next := make([]bucket[K, V], capacity)
	remaining := m.count
	for i := 0; remaining > 0 && i < len(m.buckets); i++ {
		b := &m.buckets[i]
		if b.state != stateOccupied {
			continue
		}
		start := int(m.hash(b.key) % uint64(capacity))
		// Keys are already unique, so the first open slot wins.
		for j := 0; j < capacity; j++ {
			t := &next[(start+j)%capacity]
			if t.state == stateOccupied {
				continue
			}
			*t = *b
			break
		}
		remaining--
	}
	assert.That(remaining == 0, "hashmap: count drifted from occupied buckets")
	m.buckets = next
}

// Clear deletes every value and empties all buckets. Capacity is retained.
func (m *Map[K, V]) Clear() {
	for i := 0; m.count > 0 && i < len(m.buckets); i++ {
		if m.buckets[i].state != stateOccupied {
			continue
		}
		m.count--
		m.delete(&m.buckets[i].value)
	}
	clear(m.buckets)
}

// Foreach calls action on each entry in bucket-array order. It visits
// exactly Count entries and assumes no mutation during the walk.
func (m *Map[K, V]) Foreach(action func(K, V)) {
	assert.That(action != nil, "hashmap: nil action")
	remaining := m.count
	for i := 0; remaining > 0 && i < len(m.buckets); i++ {
		b := &m.buckets[i]
		if b.state != stateOccupied {
			continue
		}
		action(b.key, b.value)
		remaining--
	}
	assert.That(remaining == 0, "hashmap: count drifted from occupied buckets")
}

// ForeachKey calls action on each key in bucket-array order.
func (m *Map[K, V]) ForeachKey(action func(K)) {
	assert.That(action != nil, "hashmap: nil action")
	m.Foreach(func(k K, _ V) { action(k) })
}

// ForeachValue calls action on each value in bucket-array order.
func (m *Map[K, V]) ForeachValue(action func(V)) {
	assert.That(action != nil, "hashmap: nil action")
	m.Foreach(func(_ K, v V) { action(v) })
}

// Delete clears the map and releases the bucket array.
func (m *Map[K, V]) Delete() {
	m.Clear()
	m.buckets = nil
}

func (m *Map[K, V]) grow() {
	next, ok := intmath.MulOK(len(m.buckets), growthFactor)
	assert.That(ok, "hashmap: capacity overflow")
	m.Resize(next)
}

func (m *Map[K, V]) delete(value *V) {
	if m.del != nil {
		m.del(value)
	}
}
