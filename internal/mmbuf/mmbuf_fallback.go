//go:build !unix

// Package mmbuf provides platform-specific helpers for reserving the pool's
// backing region outside the Go heap.
package mmbuf

import "fmt"

// Map allocates a plain slice when anonymous mmap is not available.
func Map(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("mmbuf: invalid mapping size %d", size)
	}
	return make([]byte, size), func() error { return nil }, nil
}
