// Package arena implements a fixed-capacity memory allocator over a single
// pre-reserved byte region.
//
// # Overview
//
// An Arena carves allocations out of one contiguous pool. Every block in the
// pool, free or allocated, starts with a 16-byte header holding its payload
// size, status, and offset-based links to its address-order neighbors. The
// allocator uses first-fit search, splits oversized free blocks, and merges
// adjacent free blocks on release, so after any Free no two neighboring
// blocks are both free.
//
// # Usage Example
//
//	a, err := arena.New(10*1024, nil)
//	if err != nil {
//	    return err
//	}
//
//	ref, buf, err := a.Alloc(256)
//	if err != nil {
//	    return err
//	}
//
//	// Write into buf...
//	copy(buf, payload)
//
//	// Later, release the block.
//	err = a.Free(ref)
//
// # Block References
//
// References (Ref) are uint32 offsets of the payload start relative to the
// pool start. NilRef is the absent reference; Free(NilRef) is a no-op.
// Callers hold only payload references, never headers, and must not retain a
// reference past the Free of its block.
//
// # Invariants
//
// After every completed operation:
//
//   - Blocks tile the pool exactly: header plus payload sizes sum to the
//     pool capacity, with no overlap and no gaps.
//   - The block list is sorted by ascending offset and is the canonical
//     traversal order.
//   - After any Free, no two address-adjacent blocks are both free.
//
// The arena/verify package checks these invariants over a raw pool snapshot.
//
// # Failure Modes
//
// Alloc returns ErrInvalidSize for requests that round to zero and ErrNoSpace
// when no free block fits; failed allocations leave the pool untouched.
// Free of a reference whose derived header lies outside the pool reports the
// event to the configured diagnostic logger and returns ErrBadRef without
// mutating state. Double free and release of a foreign in-pool reference are
// undetected caller misuse.
//
// # Thread Safety
//
// Arena instances are not thread-safe. Callers must serialize access
// externally, typically with a single lock around the whole arena.
package arena
