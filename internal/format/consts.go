// Package format houses the low-level byte layout of pool block headers.
// The goal is to keep the encoding focused and allocation-free so the arena
// package can orchestrate the data in a more ergonomic form.
package format

const (
	// HeaderSize is the number of bytes used by the block header preceding
	// every payload (free or in-use) within the pool.
	HeaderSize = 16

	// BlockSizeOffset is the offset of the u32 payload size field within a
	// block header. The payload size excludes the header itself.
	BlockSizeOffset = 0x00

	// BlockStatusOffset is the offset of the u32 status field.
	BlockStatusOffset = 0x04

	// BlockNextOffset is the offset of the u32 link to the next block header,
	// expressed as an offset from the pool start.
	BlockNextOffset = 0x08

	// BlockPrevOffset is the offset of the u32 link to the previous block
	// header, expressed as an offset from the pool start.
	BlockPrevOffset = 0x0C

	// StatusFree and StatusAllocated are the only legal status values.
	StatusFree      = 0
	StatusAllocated = 1

	// InvalidOffset is the sentinel stored in next/prev when no neighbor
	// exists. It doubles as the nil payload reference.
	InvalidOffset = ^uint32(0)

	// PayloadAlignment is the default rounding granularity for payload sizes.
	PayloadAlignment = 4

	// PayloadAlignmentMask is PayloadAlignment - 1, for mask arithmetic.
	PayloadAlignmentMask = PayloadAlignment - 1

	// DefaultPoolSize is the default pool capacity in bytes (10 KiB).
	DefaultPoolSize = 10 * 1024
)
