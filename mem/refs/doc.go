// Package refs implements explicit ownership wrappers: reference-counted
// Shared handles, their non-owning Weak counterparts, and a single-owner
// Unique box.
//
// # Control block
//
// Every Shared and Weak handle to one logical value points at the same
// control block holding a strong count, a weak count and the value cell.
// The invariant maintained throughout is
//
//	sharedCount > 0  <=>  value cell present
//
// The value is deleted the moment the strong count reaches zero, regardless
// of outstanding weak handles; the control block itself dies only when both
// counts are zero. That gives the block three states: live
// (shared > 0), expired-but-observed (shared == 0, weak > 0, where Valid
// reports false and Upgrade is forbidden), and fully dead.
//
// # Lifecycle discipline
//
// Handles are manual: every constructor and Copy must be paired with exactly
// one Delete. Delete is where deleters run, so leaking a handle leaks the
// value, and double-deleting trips an assertion. Weak handles are the
// prescribed escape hatch for ownership cycles; this package performs no
// cycle detection.
//
// # Thread safety
//
// Counts are plain integers with no atomicity. Handles to the same control
// block must not be used from multiple goroutines without external locking.
package refs
