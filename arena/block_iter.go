package arena

import (
	"fmt"
	"io"

	"github.com/joshuapare/memkit/internal/format"
)

// Block is a read-only view of one tracked block.
type Block struct {
	Offset      int    // Header offset relative to the pool start
	PayloadSize int    // Payload bytes, excluding the header
	Free        bool   // True when the block is marked free
	Payload     []byte // Payload bytes (alias of the pool)
}

// BlockIterator walks the block list in canonical address order.
type BlockIterator struct {
	a    *Arena
	off  uint32
	done bool
}

// Blocks returns an iterator positioned at the head block.
func (a *Arena) Blocks() *BlockIterator {
	a.Init()
	return &BlockIterator{a: a}
}

// Next returns the next block, or io.EOF after the tail block.
func (it *BlockIterator) Next() (Block, error) {
	if it.done {
		return Block{}, io.EOF
	}

	a := it.a
	off := it.off
	if int(off)+format.HeaderSize > len(a.buf) {
		it.done = true
		return Block{}, fmt.Errorf("arena: block header at %d exceeds pool (capacity %d)", off, len(a.buf))
	}
	size := a.payloadSize(off)
	if int(off)+format.HeaderSize+int(size) > len(a.buf) {
		it.done = true
		return Block{}, fmt.Errorf("arena: block at %d declares %d payload bytes past pool end", off, size)
	}

	b := Block{
		Offset:      int(off),
		PayloadSize: int(size),
		Free:        a.status(off) == format.StatusFree,
		Payload:     a.payload(off),
	}

	nxt := a.next(off)
	if nxt == format.InvalidOffset {
		it.done = true
	} else if nxt <= off {
		// A link pointing backwards means a corrupted list; stop rather
		// than loop forever.
		it.done = true
		return Block{}, fmt.Errorf("arena: block at %d links backwards to %d", off, nxt)
	} else {
		it.off = nxt
	}
	return b, nil
}
