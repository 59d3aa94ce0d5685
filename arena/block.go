package arena

import "github.com/joshuapare/memkit/internal/format"

// Header field accessors. All block state lives in the pool itself; an
// offset names a block by the position of its header.

func (a *Arena) payloadSize(off uint32) uint32 {
	return format.ReadU32(a.buf, int(off)+format.BlockSizeOffset)
}

func (a *Arena) setPayloadSize(off, size uint32) {
	format.PutU32(a.buf, int(off)+format.BlockSizeOffset, size)
}

func (a *Arena) status(off uint32) uint32 {
	return format.ReadU32(a.buf, int(off)+format.BlockStatusOffset)
}

func (a *Arena) setStatus(off, status uint32) {
	format.PutU32(a.buf, int(off)+format.BlockStatusOffset, status)
}

func (a *Arena) next(off uint32) uint32 {
	return format.ReadU32(a.buf, int(off)+format.BlockNextOffset)
}

func (a *Arena) setNext(off, next uint32) {
	format.PutU32(a.buf, int(off)+format.BlockNextOffset, next)
}

func (a *Arena) prev(off uint32) uint32 {
	return format.ReadU32(a.buf, int(off)+format.BlockPrevOffset)
}

func (a *Arena) setPrev(off, prev uint32) {
	format.PutU32(a.buf, int(off)+format.BlockPrevOffset, prev)
}

// payload returns the payload slice of the block at off, capped at the
// block's current payload size.
func (a *Arena) payload(off uint32) []byte {
	start := int(off) + format.HeaderSize
	end := start + int(a.payloadSize(off))
	return a.buf[start:end:end]
}
