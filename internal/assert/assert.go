//go:build !memkit_noassert

// Package assert provides debug-mode contract checks for memkit containers.
//
// Checks are compiled in by default and panic with a diagnostic when a caller
// breaks a documented contract (out-of-range index, stale handle, pop from an
// empty container). Building with the memkit_noassert tag removes every check,
// matching the zero-overhead release mode of the allocators this library is
// designed around. A failed assertion is always a programmer error, never a
// condition to recover from.
package assert

// Enabled reports whether contract checks are compiled into this build.
const Enabled = true

// That panics with msg when cond is false.
func That(cond bool, msg string) {
	if !cond {
		panic("memkit: assertion failed: " + msg)
	}
}
