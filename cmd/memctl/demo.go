package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/memkit/arena"
	"github.com/joshuapare/memkit/arena/printer"
)

var demoCapacity int

func init() {
	cmd := newDemoCmd()
	cmd.Flags().IntVar(&demoCapacity, "capacity", 0, "Pool capacity in bytes (default 10 KiB)")
	rootCmd.AddCommand(cmd)
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the canonical allocate/free walkthrough",
		Long: `The demo command allocates 100, 200, and 300 bytes from a fresh pool,
then releases the middle, first, and last block in that order, printing a
block-list report after every step. The final report shows the pool collapsed
back to a single free block.

Example:
  memctl demo
  memctl demo --capacity 4096 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(os.Stdout)
		},
	}
}

func runDemo(w io.Writer) error {
	a, err := arena.New(demoCapacity, nil)
	if err != nil {
		return fmt.Errorf("create pool: %w", err)
	}

	report := func(stage string) error {
		if !quiet {
			fmt.Fprintf(w, "%s:\n", stage)
		}
		return printReport(w, a.Introspect())
	}

	if err := report("Initial pool state"); err != nil {
		return err
	}

	refs := make([]arena.Ref, 0, 3)
	for _, size := range []int{100, 200, 300} {
		ref, _, allocErr := a.Alloc(size)
		if allocErr != nil {
			return fmt.Errorf("allocate %d bytes: %w", size, allocErr)
		}
		refs = append(refs, ref)
		if err := report(fmt.Sprintf("After allocating %d bytes", size)); err != nil {
			return err
		}
	}

	for _, step := range []struct {
		label string
		ref   arena.Ref
	}{
		{"second", refs[1]},
		{"first", refs[0]},
		{"third", refs[2]},
	} {
		if err := a.Free(step.ref); err != nil {
			return fmt.Errorf("free %s allocation: %w", step.label, err)
		}
		if err := report(fmt.Sprintf("After freeing the %s allocation", step.label)); err != nil {
			return err
		}
	}
	return nil
}

// printReport renders a report honoring the global --json and --quiet flags.
func printReport(w io.Writer, r arena.Report) error {
	if quiet {
		return nil
	}
	opts := printer.DefaultOptions()
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	return printer.New(w, opts).Print(r)
}
