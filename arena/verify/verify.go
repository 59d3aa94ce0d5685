package verify

import (
	"fmt"

	"github.com/joshuapare/memkit/internal/format"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Type    string
	Message string
	Offset  int
}

func (e *ValidationError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset 0x%X: %s", e.Type, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// AllInvariants validates all allocator invariants in one call, assuming the
// default payload alignment. Pools built with a custom Options.Alignment must
// use AllInvariantsWithAlignment instead.
// Returns the first error encountered, or nil if all checks pass.
func AllInvariants(pool []byte) error {
	return AllInvariantsWithAlignment(pool, format.PayloadAlignment)
}

// AllInvariantsWithAlignment validates all allocator invariants against the
// given payload alignment (see arena.Arena.Alignment).
func AllInvariantsWithAlignment(pool []byte, align int) error {
	if err := Conservation(pool); err != nil {
		return err
	}
	if err := Linkage(pool); err != nil {
		return err
	}
	if err := MaximalCoalescing(pool); err != nil {
		return err
	}
	return Alignment(pool, align)
}

// Conservation checks that walking the pool by declared block sizes reaches
// the pool end exactly: the sum of header and payload sizes equals capacity.
func Conservation(pool []byte) error {
	off := 0
	for off < len(pool) {
		if off+format.HeaderSize > len(pool) {
			return &ValidationError{
				Type:    "Conservation",
				Message: fmt.Sprintf("truncated header (pool capacity %d)", len(pool)),
				Offset:  off,
			}
		}
		size := int(format.ReadU32(pool, off+format.BlockSizeOffset))
		next := off + format.HeaderSize + size
		if next > len(pool) {
			return &ValidationError{
				Type:    "Conservation",
				Message: fmt.Sprintf("payload size %d overruns pool end %d", size, len(pool)),
				Offset:  off,
			}
		}
		off = next
	}
	if off != len(pool) {
		return &ValidationError{
			Type:    "Conservation",
			Message: fmt.Sprintf("blocks cover %d of %d bytes", off, len(pool)),
			Offset:  -1,
		}
	}
	return nil
}

// Linkage checks that the embedded list matches the physical layout: next
// points at the physically following header, prev points back, the head has
// no predecessor, the tail terminates with the sentinel, and every status
// field holds a legal value.
func Linkage(pool []byte) error {
	if len(pool) < format.HeaderSize {
		return &ValidationError{
			Type:    "Linkage",
			Message: "pool too small for a header",
			Offset:  -1,
		}
	}
	if prev := format.ReadU32(pool, format.BlockPrevOffset); prev != format.InvalidOffset {
		return &ValidationError{
			Type:    "Linkage",
			Message: fmt.Sprintf("head block has predecessor 0x%X", prev),
			Offset:  0,
		}
	}

	off := 0
	for {
		status := format.ReadU32(pool, off+format.BlockStatusOffset)
		if status != format.StatusFree && status != format.StatusAllocated {
			return &ValidationError{
				Type:    "Linkage",
				Message: fmt.Sprintf("illegal status %d", status),
				Offset:  off,
			}
		}

		size := int(format.ReadU32(pool, off+format.BlockSizeOffset))
		physNext := off + format.HeaderSize + size
		next := format.ReadU32(pool, off+format.BlockNextOffset)

		if next == format.InvalidOffset {
			if physNext != len(pool) {
				return &ValidationError{
					Type:    "Linkage",
					Message: fmt.Sprintf("tail block ends at %d, pool ends at %d", physNext, len(pool)),
					Offset:  off,
				}
			}
			return nil
		}
		if int(next) != physNext {
			return &ValidationError{
				Type:    "Linkage",
				Message: fmt.Sprintf("next link 0x%X does not match physical neighbor 0x%X", next, physNext),
				Offset:  off,
			}
		}
		if int(next)+format.HeaderSize > len(pool) {
			return &ValidationError{
				Type:    "Linkage",
				Message: fmt.Sprintf("next link 0x%X leaves no room for a header", next),
				Offset:  off,
			}
		}
		if prev := format.ReadU32(pool, int(next)+format.BlockPrevOffset); int(prev) != off {
			return &ValidationError{
				Type:    "Linkage",
				Message: fmt.Sprintf("block 0x%X back-reference 0x%X does not point here", next, prev),
				Offset:  off,
			}
		}
		off = int(next)
	}
}

// MaximalCoalescing checks that no two address-adjacent blocks are both free.
func MaximalCoalescing(pool []byte) error {
	off := 0
	prevFree := false
	for off+format.HeaderSize <= len(pool) {
		free := format.ReadU32(pool, off+format.BlockStatusOffset) == format.StatusFree
		if free && prevFree {
			return &ValidationError{
				Type:    "MaximalCoalescing",
				Message: "two adjacent free blocks",
				Offset:  off,
			}
		}
		prevFree = free
		size := int(format.ReadU32(pool, off+format.BlockSizeOffset))
		next := off + format.HeaderSize + size
		if next <= off || next > len(pool) {
			// Structure is broken; Conservation reports the details.
			return nil
		}
		off = next
	}
	return nil
}

// Alignment checks that every payload size is a multiple of align.
func Alignment(pool []byte, align int) error {
	off := 0
	for off+format.HeaderSize <= len(pool) {
		size := int(format.ReadU32(pool, off+format.BlockSizeOffset))
		if size%align != 0 {
			return &ValidationError{
				Type:    "Alignment",
				Message: fmt.Sprintf("payload size %d not %d-byte aligned", size, align),
				Offset:  off,
			}
		}
		next := off + format.HeaderSize + size
		if next <= off || next > len(pool) {
			return nil
		}
		off = next
	}
	return nil
}
