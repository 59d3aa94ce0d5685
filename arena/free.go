package arena

import "github.com/joshuapare/memkit/internal/format"

// Free releases the block that owns ref. NilRef is tolerated as a no-op.
// A reference whose derived header lies outside the pool is reported to the
// diagnostic logger and rejected with ErrBadRef; the pool is not touched.
// Releasing a foreign in-pool reference or releasing twice is undetected
// misuse and corrupts the block list.
func (a *Arena) Free(ref Ref) error {
	if ref == NilRef {
		return nil
	}
	a.Init()

	if ref < format.HeaderSize || int(ref) >= len(a.buf) {
		a.log.Warn("release outside pool bounds",
			"ref", ref, "capacity", len(a.buf))
		return ErrBadRef
	}
	a.stats.FreeCalls++
	off := ref - format.HeaderSize

	a.setStatus(off, format.StatusFree)
	a.stats.BytesFreed += int64(a.payloadSize(off))

	// Absorb the next block first so a free-allocated-free gap closes into
	// one maximal free block within this single call.
	if nxt := a.next(off); nxt != format.InvalidOffset && a.status(nxt) == format.StatusFree {
		a.absorb(off, nxt)
	}
	if prv := a.prev(off); prv != format.InvalidOffset && a.status(prv) == format.StatusFree {
		a.absorb(prv, off)
	}
	return nil
}

// absorb merges the block at victim into its lower neighbor at off. The
// victim's header is reclaimed as payload and ceases to exist as a block.
func (a *Arena) absorb(off, victim uint32) {
	a.setPayloadSize(off, a.payloadSize(off)+format.HeaderSize+a.payloadSize(victim))
	a.setNext(off, a.next(victim))
	if nxt := a.next(victim); nxt != format.InvalidOffset {
		a.setPrev(nxt, off)
	}
	a.stats.MergeCount++
}
