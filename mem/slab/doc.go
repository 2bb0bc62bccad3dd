// Package slab implements a generational object pool with stable, validity-
// checked handles.
//
// # Overview
//
// A Slab maps lightweight Handle values to same-typed entries in one backing
// buffer. Borrow places a value in the lowest vacant slot (growing the buffer
// when none is vacant) and Return frees it for reuse. Both are O(1); Borrow
// additionally advances a cached next-vacant hint.
//
// # Generations
//
// Each slot carries an age. A Handle is valid only while the slot's stored
// age is nonzero and matches the handle's. The shared age counter advances
// whenever a vacated slot is reused and never revisits zero, so successive
// occupants of one slot carry strictly increasing ages and a handle to a
// returned slot stays invalid forever. The classic stale-handle ABA bug is
// caught at O(1) cost per check instead of silently corrupting state.
//
// # Pointer stability
//
// Borrow may grow the backing buffer, which invalidates any pointer
// previously obtained from Get. Handles are the only stable way to refer to
// an entry; re-fetch pointers after any Borrow.
//
// # Thread safety
//
// A Slab is not safe for concurrent use.
package slab
