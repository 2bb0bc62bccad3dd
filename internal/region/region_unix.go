//go:build unix

// Package region provides the raw memory regions backing mem/arena.
//
// On unix systems regions come from anonymous private mappings so that a large
// arena never stresses the Go heap and is returned to the OS in one call. On
// other platforms a plain heap slice is used instead; the arena does not care
// which it gets.
package region

import (
	"golang.org/x/sys/unix"
)

// Map allocates a zeroed region of exactly size bytes outside the Go heap.
func Map(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// Unmap releases a region returned by Map. The slice must not be used after.
func Unmap(data []byte) error {
	if data == nil {
		return nil
	}
	return unix.Munmap(data)
}
