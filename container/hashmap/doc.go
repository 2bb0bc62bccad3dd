// Package hashmap implements an open-addressing hash map with linear probing
// and tombstone deletion.
//
// # Overview
//
// All entries live directly in the bucket array. A lookup probes forward from
// hash(key) mod capacity, wrapping around; an Empty bucket ends the probe, a
// Skip bucket (a tombstone left by Erase) is passed over so that probe
// sequences for other keys survive deletions. Insert keeps the load factor at
// or below 1/2 by doubling capacity and rehashing before the insert lands.
//
// Hashing and key equality are caller-supplied, which keeps the map free of
// comparability constraints on K. The default hash is byte-oriented FNV-1a
// (see FNV1a and the HashString/HashBytes/HashUint64 helpers); whatever the
// caller supplies must be pure, and equal keys must hash equal.
//
// Iteration visits exactly Count entries in bucket-array order: not
// insertion order, not key order, and not stable across resizes.
//
// # Thread safety
//
// A Map is not safe for concurrent use, and no traversal tolerates mutation
// mid-walk.
package hashmap
