package printer

import (
	"encoding/json"

	"github.com/joshuapare/memkit/arena"
)

// printJSON renders a report as indented JSON. The Report struct carries its
// own json tags, so the wire shape is defined in one place.
func (p *Printer) printJSON(r arena.Report) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	if !p.opts.ShowBlocks {
		r.Blocks = nil
	}
	return enc.Encode(r)
}
