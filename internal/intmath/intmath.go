// Package intmath provides overflow-checked arithmetic for container sizing.
//
// Capacity and byte-count math throughout memkit runs through these helpers so
// that a pathological count*size request trips an explicit check instead of
// silently wrapping and under-allocating.
package intmath

import "math"

// MulOK multiplies two non-negative sizes, returning ok = false when the
// product would overflow int.
func MulOK(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// AddOK adds two non-negative sizes, returning ok = false when the sum would
// overflow int.
func AddOK(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// AlignUp rounds size up to the next multiple of align. align must be a power
// of two.
func AlignUp(size, align int) int {
	return (size + align - 1) &^ (align - 1)
}
