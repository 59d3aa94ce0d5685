package arena

import "github.com/joshuapare/memkit/internal/format"

// Alloc grants a payload of at least size bytes, rounded up to the arena's
// alignment. The search is first-fit in address order. On success it returns
// the payload reference and a slice aliasing the payload region. A failed
// allocation leaves the pool unmodified.
func (a *Arena) Alloc(size int) (Ref, []byte, error) {
	a.Init()

	if size < 0 {
		return NilRef, nil, ErrInvalidSize
	}
	if size > len(a.buf)-format.HeaderSize {
		// Larger than the pool can ever hold. This bound also keeps the
		// rounding below from overflowing for sizes near MaxInt.
		return NilRef, nil, ErrNoSpace
	}
	need := format.AlignUp(size, a.alignment)
	if need == 0 {
		return NilRef, nil, ErrInvalidSize
	}
	a.stats.AllocCalls++

	for off := uint32(0); off != format.InvalidOffset; off = a.next(off) {
		if a.status(off) != format.StatusFree || int(a.payloadSize(off)) < need {
			continue
		}
		a.split(off, uint32(need))
		a.setStatus(off, format.StatusAllocated)
		a.stats.BytesAllocated += int64(a.payloadSize(off))
		return off + format.HeaderSize, a.payload(off), nil
	}
	return NilRef, nil, ErrNoSpace
}

// split carves need bytes out of the free block at off, installing a new
// free block header for the remainder when the remainder can hold a header
// plus the minimum payload. Otherwise the whole block is granted and the
// excess stays as internal fragmentation.
func (a *Arena) split(off, need uint32) {
	have := a.payloadSize(off)
	if int(have) < int(need)+format.HeaderSize+a.minPayload {
		return
	}

	rem := off + format.HeaderSize + need
	a.setPayloadSize(rem, have-need-format.HeaderSize)
	a.setStatus(rem, format.StatusFree)
	a.setNext(rem, a.next(off))
	a.setPrev(rem, off)

	a.setPayloadSize(off, need)
	a.setNext(off, rem)

	if nxt := a.next(rem); nxt != format.InvalidOffset {
		a.setPrev(nxt, rem)
	}
	a.stats.SplitCount++
}
