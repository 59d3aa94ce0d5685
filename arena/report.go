package arena

import "io"

// BlockInfo describes one block in an introspection report.
type BlockInfo struct {
	Offset      int  `json:"offset"`
	PayloadSize int  `json:"payload_size"`
	Free        bool `json:"free"`
}

// Report is a point-in-time snapshot of the block list. It is a plain value:
// rendering is the caller's concern (see arena/printer).
type Report struct {
	Capacity    int         `json:"capacity"`
	TotalBlocks int         `json:"total_blocks"`
	FreeBlocks  int         `json:"free_blocks"`
	FreeBytes   int         `json:"free_bytes"`
	LargestFree int         `json:"largest_free"`
	Blocks      []BlockInfo `json:"blocks"`
}

// Introspect traverses the block list from the head and returns a snapshot
// report. It never mutates the pool and is safe to call at any time.
func (a *Arena) Introspect() Report {
	r := Report{Capacity: len(a.buf)}
	it := a.Blocks()
	for {
		b, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A corrupted list still yields the blocks walked so far.
			break
		}
		r.TotalBlocks++
		r.Blocks = append(r.Blocks, BlockInfo{
			Offset:      b.Offset,
			PayloadSize: b.PayloadSize,
			Free:        b.Free,
		})
		if b.Free {
			r.FreeBlocks++
			r.FreeBytes += b.PayloadSize
			if b.PayloadSize > r.LargestFree {
				r.LargestFree = b.PayloadSize
			}
		}
	}
	return r
}
