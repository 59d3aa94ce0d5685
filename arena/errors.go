package arena

import "errors"

var (
	// ErrInvalidSize indicates an allocation request that rounds to zero bytes.
	ErrInvalidSize = errors.New("arena: allocation size must round to at least one byte")

	// ErrNoSpace indicates that no free block large enough was found.
	ErrNoSpace = errors.New("arena: no free block large enough")

	// ErrBadRef indicates a reference whose derived header lies outside the pool.
	ErrBadRef = errors.New("arena: reference outside pool bounds")

	// ErrPoolTooSmall indicates a backing region too small to hold even one
	// block header plus an aligned payload.
	ErrPoolTooSmall = errors.New("arena: pool too small for a block header and payload")

	// ErrPoolTooLarge indicates a requested capacity beyond the uint32 offset range.
	ErrPoolTooLarge = errors.New("arena: pool capacity exceeds offset range")

	// ErrBadAlignment indicates an Options.Alignment that is not a power of two.
	ErrBadAlignment = errors.New("arena: alignment must be a power of two")
)
