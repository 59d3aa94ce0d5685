package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/memkit/arena"
)

// printText renders a report in human-readable text format.
func (p *Printer) printText(r arena.Report) error {
	indent := strings.Repeat(" ", p.opts.IndentSize)

	if p.opts.ShowBlocks {
		for i, b := range r.Blocks {
			status := "ALLOCATED"
			if b.Free {
				status = "FREE"
			}
			_, err := fmt.Fprintf(p.writer, "Block %d: offset 0x%04X, payload %d, status %s\n",
				i, b.Offset, b.PayloadSize, status)
			if err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(p.writer); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(p.writer, "Summary:"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.writer,
		"%sTotal blocks: %d\n%sFree blocks: %d\n%sTotal free space: %d bytes\n%sLargest free block: %d bytes\n%sPool capacity: %d bytes\n",
		indent, r.TotalBlocks,
		indent, r.FreeBlocks,
		indent, r.FreeBytes,
		indent, r.LargestFree,
		indent, r.Capacity)
	return err
}
