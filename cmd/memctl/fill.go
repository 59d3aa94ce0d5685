package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-faker/faker/v4"
	"github.com/spf13/cobra"

	"github.com/joshuapare/memkit/arena"
)

var (
	fillCapacity int
	fillKeep     int
)

func init() {
	cmd := newFillCmd()
	cmd.Flags().IntVar(&fillCapacity, "capacity", 0, "Pool capacity in bytes (default 10 KiB)")
	cmd.Flags().IntVar(&fillKeep, "keep", 0, "Release every Nth allocation while filling (0 = keep all)")
	rootCmd.AddCommand(cmd)
}

func newFillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fill",
		Short: "Fill a pool with fake payloads until it runs out of space",
		Long: `The fill command stuffs generated words into a fresh pool until the
first allocation failure, optionally releasing every Nth block along the way
to provoke fragmentation, then prints the resulting block-list report.

Example:
  memctl fill
  memctl fill --capacity 65536 --keep 3 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFill()
		},
	}
}

func runFill() error {
	a, err := arena.New(fillCapacity, nil)
	if err != nil {
		return fmt.Errorf("create pool: %w", err)
	}

	count := 0
	for {
		word := []byte(faker.Word())
		ref, payload, allocErr := a.Alloc(len(word))
		if allocErr != nil {
			if errors.Is(allocErr, arena.ErrNoSpace) {
				break
			}
			return fmt.Errorf("allocate %d bytes: %w", len(word), allocErr)
		}
		copy(payload, word)
		count++

		if fillKeep > 0 && count%fillKeep == 0 {
			if err := a.Free(ref); err != nil {
				return fmt.Errorf("free block %d: %w", count, err)
			}
		}
	}

	printInfo("Pool exhausted after %d allocations:\n", count)
	return printReport(os.Stdout, a.Introspect())
}
