// Package printer renders arena introspection reports. The allocator engine
// only produces Report values; how they are displayed is decided here, by
// the caller.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/memkit/arena"
)

const DefaultIndentSize = 2

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// ShowBlocks includes the per-block listing in the output.
	// Default: true
	ShowBlocks bool

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		ShowBlocks: true,
		IndentSize: DefaultIndentSize,
	}
}

// Printer renders reports to a writer.
type Printer struct {
	writer io.Writer
	opts   Options
}

// New creates a Printer writing to w with the given options.
func New(w io.Writer, opts Options) *Printer {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if opts.IndentSize == 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{writer: w, opts: opts}
}

// Print renders a report in the configured format.
func (p *Printer) Print(r arena.Report) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(r)
	case FormatText:
		return p.printText(r)
	default:
		return fmt.Errorf("printer: unknown format %q", p.opts.Format)
	}
}
