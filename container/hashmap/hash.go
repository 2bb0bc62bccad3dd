package hashmap

import "encoding/binary"

// FNV-1a parameters.
const (
	fnvOffset = 2166136261
	fnvPrime  = 16777619
)

// FNV1a hashes data as a byte sequence using FNV-1a. It is the map's default
// hash primitive; the helpers below wrap it for common key types.
func FNV1a(data []byte) uint64 {
	hash := uint64(fnvOffset)
	for _, b := range data {
		hash ^= uint64(b)
		hash *= fnvPrime
	}
	return hash
}

// HashBytes hashes a byte-slice key.
func HashBytes(key []byte) uint64 {
	return FNV1a(key)
}

// HashString hashes a string key without copying it.
func HashString(key string) uint64 {
	hash := uint64(fnvOffset)
	for i := 0; i < len(key); i++ {
		hash ^= uint64(key[i])
		hash *= fnvPrime
	}
	return hash
}

// HashUint64 hashes a fixed-width integer key by its little-endian bytes.
func HashUint64(key uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], key)
	return FNV1a(b[:])
}

// HashInt hashes an int key.
func HashInt(key int) uint64 {
	return HashUint64(uint64(key))
}
