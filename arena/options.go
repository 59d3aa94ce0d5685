package arena

import (
	"io"
	"log/slog"

	"github.com/joshuapare/memkit/internal/format"
)

// Options controls construction-time allocator behavior.
type Options struct {
	// Alignment is the rounding granularity for payload sizes, in bytes.
	// Must be a power of two.
	// Default: 4
	Alignment int

	// MinPayload is the smallest payload retained when splitting a free
	// block. Remainders smaller than a header plus MinPayload are granted to
	// the caller as internal fragmentation instead of being split off.
	// Default: format.HeaderSize (16)
	MinPayload int

	// Logger is the diagnostic sink for invalid releases. All output is
	// discarded when nil.
	Logger *slog.Logger
}

// DefaultOptions returns sensible defaults for an arena.
func DefaultOptions() Options {
	return Options{
		Alignment:  format.PayloadAlignment,
		MinPayload: format.HeaderSize,
	}
}

// normalize fills zero fields with defaults and validates the result.
func (o Options) normalize() (Options, error) {
	if o.Alignment == 0 {
		o.Alignment = format.PayloadAlignment
	}
	if !format.IsPowerOfTwo(o.Alignment) {
		return o, ErrBadAlignment
	}
	if o.MinPayload == 0 {
		o.MinPayload = format.HeaderSize
	}
	o.MinPayload = format.AlignUp(o.MinPayload, o.Alignment)
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o, nil
}
