package arena

import (
	"log/slog"

	"github.com/joshuapare/memkit/internal/format"
	"github.com/joshuapare/memkit/internal/mmbuf"
)

// maxPoolSize caps the pool capacity so every header offset, including the
// one-past-end position, stays below the InvalidOffset sentinel.
const maxPoolSize = 0x7FFFFFFF

// Ref is a payload reference: the offset of a payload start relative to the
// pool start. Refs are handed out by Alloc and consumed by Free.
type Ref = uint32

// NilRef is the absent reference. Free(NilRef) is a no-op.
const NilRef Ref = format.InvalidOffset

// Arena is a fixed-capacity allocator over a single contiguous pool.
// The zero value is not usable; construct with New, NewFromBuf, or NewMapped.
type Arena struct {
	buf        []byte
	alignment  int
	minPayload int
	log        *slog.Logger

	cleanup     func() error // releases mapped backing; nil otherwise
	initialized bool

	stats Stats
}

// Stats holds cumulative operation counters for an arena. Calls rejected
// during argument validation (invalid sizes, out-of-bounds references,
// NilRef) are not counted.
type Stats struct {
	AllocCalls     int   // Alloc() calls that reached the free-list search
	FreeCalls      int   // Free() calls that named an in-pool reference
	SplitCount     int   // Free blocks split during allocation
	MergeCount     int   // Neighbor absorptions during release
	BytesAllocated int64 // Total payload bytes granted
	BytesFreed     int64 // Total payload bytes released
}

// New returns an arena backed by a heap-allocated pool of the given capacity.
// A capacity of 0 selects format.DefaultPoolSize (10 KiB). opts may be nil.
func New(capacity int, opts *Options) (*Arena, error) {
	if capacity == 0 {
		capacity = format.DefaultPoolSize
	}
	if capacity >= maxPoolSize {
		return nil, ErrPoolTooLarge
	}
	if capacity < 0 {
		return nil, ErrPoolTooSmall
	}
	return NewFromBuf(make([]byte, capacity), opts)
}

// NewFromBuf returns an arena that manages the caller-supplied region. The
// arena owns buf for its lifetime; the caller must not touch it afterwards
// except through payload slices returned by Alloc.
func NewFromBuf(buf []byte, opts *Options) (*Arena, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	o, err := o.normalize()
	if err != nil {
		return nil, err
	}
	if len(buf) >= maxPoolSize {
		return nil, ErrPoolTooLarge
	}
	if len(buf) < format.HeaderSize+o.Alignment {
		return nil, ErrPoolTooSmall
	}
	a := &Arena{
		buf:        buf,
		alignment:  o.Alignment,
		minPayload: o.MinPayload,
		log:        o.Logger,
	}
	a.Init()
	return a, nil
}

// NewMapped returns an arena whose pool lives in an anonymous private
// mapping outside the Go heap. Close releases the mapping.
func NewMapped(capacity int, opts *Options) (*Arena, error) {
	if capacity == 0 {
		capacity = format.DefaultPoolSize
	}
	if capacity >= maxPoolSize {
		return nil, ErrPoolTooLarge
	}
	buf, cleanup, err := mmbuf.Map(capacity)
	if err != nil {
		return nil, err
	}
	a, err := NewFromBuf(buf, opts)
	if err != nil {
		_ = cleanup()
		return nil, err
	}
	a.cleanup = cleanup
	return a, nil
}

// Init installs the bootstrap block: one free block spanning the whole pool
// minus one header. Init is idempotent; constructors call it, and every
// operation re-checks it, so callers never need to sequence it explicitly.
func (a *Arena) Init() {
	if a.initialized {
		return
	}
	a.setPayloadSize(0, uint32(len(a.buf)-format.HeaderSize))
	a.setStatus(0, format.StatusFree)
	a.setNext(0, format.InvalidOffset)
	a.setPrev(0, format.InvalidOffset)
	a.initialized = true
}

// Close releases the mapped backing region, if any. The arena must not be
// used after Close.
func (a *Arena) Close() error {
	if a.cleanup == nil {
		return nil
	}
	err := a.cleanup()
	a.cleanup = nil
	a.buf = nil
	a.initialized = false
	return err
}

// Capacity returns the total pool size in bytes, headers included.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Alignment returns the payload rounding granularity in bytes.
func (a *Arena) Alignment() int {
	return a.alignment
}

// Bytes exposes the raw pool for snapshotting and invariant checks.
// Callers must treat the slice as read-only.
func (a *Arena) Bytes() []byte {
	return a.buf
}

// Stats returns a copy of the cumulative operation counters.
func (a *Arena) Stats() Stats {
	return a.stats
}
