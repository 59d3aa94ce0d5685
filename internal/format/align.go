package format

// Alignment utilities. Payload sizes are rounded up to a small fixed boundary
// so that payload starts stay aligned for typical scalar access.

// Align4 returns n aligned up to the next 4-byte boundary.
//
// Example:
//
//	Align4(1) = 4
//	Align4(4) = 4
//	Align4(5) = 8
func Align4(n int) int {
	return (n + PayloadAlignmentMask) &^ PayloadAlignmentMask
}

// AlignUp returns n aligned up to the next multiple of align.
// align must be a power of two.
func AlignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
