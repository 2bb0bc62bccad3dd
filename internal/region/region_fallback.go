//go:build !unix

package region

// Map allocates a zeroed region of exactly size bytes on the Go heap when
// anonymous mappings are not available.
func Map(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// Unmap releases a region returned by Map. The heap fallback lets the garbage
// collector reclaim it.
func Unmap(data []byte) error {
	return nil
}
