// Package arena implements a block allocator over a single owned memory
// region.
//
// # Overview
//
// An Arena acquires one contiguous region up front (an anonymous mapping on
// unix, a heap slice elsewhere) and sub-allocates it through an in-place free
// list. Allocation is first-fit; freeing re-inserts the block into the
// address-sorted free list and coalesces it with physically adjacent free
// neighbors. The arena never grows: when no free block fits, Alloc returns
// ErrNoSpace and the caller decides what to do.
//
// This is a deterministic alternative to the process heap for workloads that
// want bounded memory and O(1) teardown.
//
// # References
//
// Callers hold Ref values, not pointers. A Ref is a byte offset into the
// arena's region; Bytes turns it back into the allocation's payload slice.
// Offsets stay valid for the lifetime of the arena, and keeping the region
// private to the arena means no pointer arithmetic ever escapes it.
//
// # Block layout
//
// Every allocation is preceded by a 16-byte header recording the payload
// size. While a block sits on the free list the header instead records the
// block's full span (header included) and the offset of the next free block,
// keeping the list address-sorted for coalescing:
//
//	allocated:  [ size | _    | payload ... ]
//	free:       [ span | next | dead bytes ... ]
//
// # Failure model
//
// Exhaustion of the region is the one expected failure and surfaces as
// ErrNoSpace from Alloc, Calloc and Realloc. Everything else (freeing an
// offset outside the region, closing an arena with live allocations while
// leak checking) is a caller bug and trips an internal/assert panic in
// debug builds.
//
// # Thread safety
//
// An Arena is not safe for concurrent use. Callers must serialize access
// externally.
package arena
