package arena

import (
	"encoding/binary"

	"github.com/joshuapare/memkit/internal/assert"
	"github.com/joshuapare/memkit/internal/intmath"
	"github.com/joshuapare/memkit/internal/region"
)

const (
	// alignment is the boundary every payload size is rounded up to.
	alignment = 8

	// headerSize is the in-place block header: a uint64 size word and a
	// uint64 link word. Payloads therefore start 16-byte aligned.
	headerSize = 16

	// nilOff terminates the free list. Offset 0 is a real block, so the
	// sentinel must live outside the region.
	nilOff = ^uint64(0)
)

// Ref is a byte offset into an arena's region identifying an allocation's
// payload. The zero Ref is the null reference.
type Ref uint64

// NilRef is the null reference. Free and Realloc accept it; Bytes does not.
const NilRef Ref = 0

// Stats holds allocator counters, inspected by tests and instrumentation.
type Stats struct {
	AllocCalls       int   // Alloc calls that attempted a carve
	FreeCalls        int   // Free calls on non-nil refs
	BytesAllocated   int64 // payload bytes handed out
	BytesFreed       int64 // payload bytes returned
	SplitCount       int   // allocations that split a free block
	CoalesceForward  int   // merges with the following free block
	CoalesceBackward int   // merges with the preceding free block
	FailedAllocs     int   // Alloc calls that returned ErrNoSpace
}

// Arena is a first-fit block allocator over one contiguous region.
type Arena struct {
	buf       []byte
	free      uint64 // offset of the first free block, nilOff when exhausted
	leakCheck bool
	stats     Stats
}

// New builds an arena whose region holds at least size usable bytes. The
// region is one allocation and is released as one by Close. Close asserts
// that every allocation was freed; SetLeakCheck(false) disables that.
func New(size int) *Arena {
	assert.That(size >= alignment, "arena: size too small")
	total := intmath.AlignUp(size, alignment) + headerSize
	buf, err := region.Map(total)
	assert.That(err == nil, "arena: region allocation failed")
	a := &Arena{
		buf:       buf,
		free:      0,
		leakCheck: true,
	}
	a.putSpan(0, uint64(total))
	a.putNext(0, nilOff)
	return a
}

// SetLeakCheck controls whether Close asserts that the free list has
// collapsed back to one block spanning the whole region.
func (a *Arena) SetLeakCheck(enabled bool) {
	a.leakCheck = enabled
}

// Cap returns the total region size in bytes, headers included.
func (a *Arena) Cap() int {
	return len(a.buf)
}

// Stats returns a copy of the allocator counters.
func (a *Arena) Stats() Stats {
	return a.stats
}

// Alloc carves at least size bytes out of the first free block that fits.
// size is rounded up to the arena alignment. Alloc(0) returns NilRef with no
// error. When no block fits, the Ref is NilRef and the error is ErrNoSpace.
func (a *Arena) Alloc(size int) (Ref, []byte, error) {
	assert.That(a.buf != nil, "arena: use after Close")
	assert.That(size >= 0, "arena: negative size")
	if size == 0 {
		return NilRef, nil, nil
	}
	size = intmath.AlignUp(size, alignment)
	a.stats.AllocCalls++

	need := uint64(size) + headerSize
	prev := nilOff
	cur := a.free
	for cur != nilOff {
		span := a.span(cur)
		if span >= need {
			next := a.next(cur)
			if span-need >= headerSize {
				// Carve the head, keep the tail free in place of the
				// original block.
				tail := cur + need
				a.putSpan(tail, span-need)
				a.putNext(tail, next)
				a.relink(prev, tail)
				a.putSize(cur, uint64(size))
				a.stats.SplitCount++
			} else {
				// Absorb the remainder; it is too small to hold a header.
				a.relink(prev, next)
				a.putSize(cur, span-headerSize)
				size = int(span - headerSize)
			}
			a.putNext(cur, 0)
			a.stats.BytesAllocated += int64(size)
			payload := cur + headerSize
			return Ref(payload), a.buf[payload : payload+uint64(size)], nil
		}
		prev = cur
		cur = a.next(cur)
	}
	a.stats.FailedAllocs++
	return NilRef, nil, ErrNoSpace
}

// Calloc allocates a zeroed count*size byte payload. The multiply is
// overflow-checked.
func (a *Arena) Calloc(count, size int) (Ref, []byte, error) {
	total, ok := intmath.MulOK(count, size)
	assert.That(ok, "arena: calloc size overflow")
	ref, buf, err := a.Alloc(total)
	if err != nil {
		return NilRef, nil, err
	}
	clear(buf)
	return ref, buf, nil
}

// Realloc resizes the allocation at ref to hold at least size bytes.
// Realloc(NilRef, n) behaves as Alloc(n); Realloc(ref, 0) behaves as
// Free(ref) and returns NilRef. When the existing block is already large
// enough the same ref comes back unchanged; otherwise the old payload is
// copied into a fresh allocation and the old block is freed. On ErrNoSpace
// the old allocation is left intact.
func (a *Arena) Realloc(ref Ref, size int) (Ref, []byte, error) {
	assert.That(a.buf != nil, "arena: use after Close")
	if ref == NilRef {
		return a.Alloc(size)
	}
	a.checkRef(ref)
	if size == 0 {
		a.Free(ref)
		return NilRef, nil, nil
	}
	old := uint64(ref) - headerSize
	oldSize := a.size(old)
	if oldSize >= uint64(size) {
		return ref, a.buf[ref : uint64(ref)+oldSize], nil
	}
	newRef, buf, err := a.Alloc(size)
	if err != nil {
		return NilRef, nil, err
	}
	copy(buf, a.buf[ref:uint64(ref)+oldSize])
	a.Free(ref)
	return newRef, buf, nil
}

// Free returns the allocation at ref to the free list, coalescing with the
// following free block and then the preceding one when physically adjacent.
// Free(NilRef) is a no-op.
func (a *Arena) Free(ref Ref) {
	assert.That(a.buf != nil, "arena: use after Close")
	if ref == NilRef {
		return
	}
	a.checkRef(ref)
	a.stats.FreeCalls++

	off := uint64(ref) - headerSize
	span := a.size(off) + headerSize
	a.stats.BytesFreed += int64(span - headerSize)

	// Walk to the sorted position: prev < off < cur.
	prev := nilOff
	cur := a.free
	for cur != nilOff && cur < off {
		prev = cur
		cur = a.next(cur)
	}
	a.putSpan(off, span)
	a.putNext(off, cur)
	a.relink(prev, off)

	// Forward merge, then backward merge. One pass each, not recursive.
	if cur != nilOff && off+span == cur {
		a.stats.CoalesceForward++
		a.putSpan(off, span+a.span(cur))
		a.putNext(off, a.next(cur))
	}
	if prev != nilOff && prev+a.span(prev) == off {
		a.stats.CoalesceBackward++
		a.putSpan(prev, a.span(prev)+a.span(off))
		a.putNext(prev, a.next(off))
	}
}

// Bytes returns the payload slice for a live allocation.
func (a *Arena) Bytes(ref Ref) []byte {
	assert.That(a.buf != nil, "arena: use after Close")
	a.checkRef(ref)
	off := uint64(ref) - headerSize
	return a.buf[ref : uint64(ref)+a.size(off)]
}

// Close releases the region. With leak checking enabled it first asserts
// that the free list has collapsed back to a single block spanning the
// whole region, i.e. that no allocation is still outstanding.
func (a *Arena) Close() {
	assert.That(a.buf != nil, "arena: double Close")
	if a.leakCheck {
		assert.That(
			a.free == 0 && a.next(0) == nilOff && a.span(0) == uint64(len(a.buf)),
			"arena: leaked allocations at Close",
		)
	}
	err := region.Unmap(a.buf)
	assert.That(err == nil, "arena: region release failed")
	a.buf = nil
	a.free = nilOff
}

// FreeBlocks returns the (offset, span) pairs of the free list in address
// order. Exposed for tests and diagnostics.
func (a *Arena) FreeBlocks() [][2]uint64 {
	var out [][2]uint64
	for cur := a.free; cur != nilOff; cur = a.next(cur) {
		out = append(out, [2]uint64{cur, a.span(cur)})
	}
	return out
}

func (a *Arena) checkRef(ref Ref) {
	assert.That(
		uint64(ref) >= headerSize && uint64(ref) < uint64(len(a.buf)),
		"arena: ref outside region",
	)
}

// relink points prev's link (or the list head) at off.
func (a *Arena) relink(prev, off uint64) {
	if prev == nilOff {
		a.free = off
	} else {
		a.putNext(prev, off)
	}
}

// Header accessors. The size word doubles as the free-block span; the link
// word is only meaningful while the block is free.

func (a *Arena) span(off uint64) uint64 {
	return binary.LittleEndian.Uint64(a.buf[off:])
}

func (a *Arena) size(off uint64) uint64 {
	return binary.LittleEndian.Uint64(a.buf[off:])
}

func (a *Arena) putSpan(off, span uint64) {
	binary.LittleEndian.PutUint64(a.buf[off:], span)
}

func (a *Arena) putSize(off, size uint64) {
	binary.LittleEndian.PutUint64(a.buf[off:], size)
}

func (a *Arena) next(off uint64) uint64 {
	return binary.LittleEndian.Uint64(a.buf[off+8:])
}

func (a *Arena) putNext(off, next uint64) {
	binary.LittleEndian.PutUint64(a.buf[off+8:], next)
}
