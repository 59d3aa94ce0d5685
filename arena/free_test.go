package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memkit/arena/verify"
	"github.com/joshuapare/memkit/internal/format"
)

func TestFreeNilRefIsNoop(t *testing.T) {
	a, err := New(1024, nil)
	require.NoError(t, err)

	before := snapshot(a)
	require.NoError(t, a.Free(NilRef))
	assert.Equal(t, before, a.Bytes())
	assert.Zero(t, a.Stats().FreeCalls, "nil release is not counted as an operation")
}

func TestFreeOutOfBoundsRef(t *testing.T) {
	a, err := New(1024, nil)
	require.NoError(t, err)
	_, _, err = a.Alloc(100)
	require.NoError(t, err)

	before := snapshot(a)

	// Header would start one byte before the pool.
	assert.ErrorIs(t, a.Free(Ref(format.HeaderSize-1)), ErrBadRef)
	// Payload at the pool end and past it.
	assert.ErrorIs(t, a.Free(Ref(1024)), ErrBadRef)
	assert.ErrorIs(t, a.Free(Ref(5000)), ErrBadRef)

	assert.Equal(t, before, a.Bytes(), "bad release must leave the block list unchanged")
}

func TestFreeIsolatedBlockNoMerge(t *testing.T) {
	a, err := New(2048, nil)
	require.NoError(t, err)

	r1, _, err := a.Alloc(64)
	require.NoError(t, err)
	r2, _, err := a.Alloc(64)
	require.NoError(t, err)
	_, _, err = a.Alloc(64)
	require.NoError(t, err)
	_ = r1

	// Both neighbors of r2 stay allocated: the freed block stays isolated.
	require.NoError(t, a.Free(r2))

	r := a.Introspect()
	assert.Equal(t, 4, r.TotalBlocks)
	assert.Equal(t, 2, r.FreeBlocks) // the isolated block and the tail
	require.NoError(t, verify.AllInvariants(a.Bytes()))
}

func TestFreeRightMerge(t *testing.T) {
	a, err := New(2048, nil)
	require.NoError(t, err)

	r1, _, err := a.Alloc(64)
	require.NoError(t, err)
	r2, _, err := a.Alloc(96)
	require.NoError(t, err)
	_, _, err = a.Alloc(64)
	require.NoError(t, err)

	require.NoError(t, a.Free(r2))
	// r1's right neighbor is now free: one merge absorbs it.
	require.NoError(t, a.Free(r1))

	r := a.Introspect()
	assert.Equal(t, 3, r.TotalBlocks)
	assert.Equal(t, 64+format.HeaderSize+96, r.Blocks[0].PayloadSize,
		"absorbed neighbor contributes header and payload")
	assert.True(t, r.Blocks[0].Free)
	require.NoError(t, verify.AllInvariants(a.Bytes()))
}

func TestFreeLeftMerge(t *testing.T) {
	a, err := New(2048, nil)
	require.NoError(t, err)

	r1, _, err := a.Alloc(64)
	require.NoError(t, err)
	r2, _, err := a.Alloc(96)
	require.NoError(t, err)
	_, _, err = a.Alloc(64)
	require.NoError(t, err)

	require.NoError(t, a.Free(r1))
	// r2's left neighbor is free: r2 is absorbed into it.
	require.NoError(t, a.Free(r2))

	r := a.Introspect()
	assert.Equal(t, 3, r.TotalBlocks)
	assert.Equal(t, 0, r.Blocks[0].Offset)
	assert.Equal(t, 64+format.HeaderSize+96, r.Blocks[0].PayloadSize)
	assert.True(t, r.Blocks[0].Free)
	require.NoError(t, verify.AllInvariants(a.Bytes()))
}

func TestFreeClosesGapInOnePass(t *testing.T) {
	a, err := New(2048, nil)
	require.NoError(t, err)

	r1, _, err := a.Alloc(64)
	require.NoError(t, err)
	r2, _, err := a.Alloc(96)
	require.NoError(t, err)
	r3, _, err := a.Alloc(64)
	require.NoError(t, err)
	_, _, err = a.Alloc(64) // guard before the tail
	require.NoError(t, err)

	require.NoError(t, a.Free(r1))
	require.NoError(t, a.Free(r3))

	// Freeing the middle block must close the free-allocated-free gap into
	// one maximal free block within this single call.
	require.NoError(t, a.Free(r2))

	r := a.Introspect()
	assert.Equal(t, 3, r.TotalBlocks)
	assert.Equal(t, 64+96+64+2*format.HeaderSize, r.Blocks[0].PayloadSize)
	require.NoError(t, verify.MaximalCoalescing(a.Bytes()))
	require.NoError(t, verify.AllInvariants(a.Bytes()))
}

func TestFullClosureAnyReleaseOrder(t *testing.T) {
	const capacity = 4096
	orders := [][]int{
		{0, 1, 2, 3, 4},
		{4, 3, 2, 1, 0},
		{2, 0, 4, 1, 3},
		{1, 3, 0, 4, 2},
	}
	sizes := []int{100, 24, 300, 52, 8}

	for _, order := range orders {
		a, err := New(capacity, nil)
		require.NoError(t, err)

		refs := make([]Ref, len(sizes))
		for i, sz := range sizes {
			refs[i], _, err = a.Alloc(sz)
			require.NoError(t, err)
		}
		for _, i := range order {
			require.NoError(t, a.Free(refs[i]))
			require.NoError(t, verify.AllInvariants(a.Bytes()))
		}

		// Releasing everything restores the bootstrap state exactly.
		r := a.Introspect()
		assert.Equal(t, 1, r.TotalBlocks, "order %v", order)
		assert.Equal(t, 1, r.FreeBlocks, "order %v", order)
		assert.Equal(t, capacity-format.HeaderSize, r.FreeBytes, "order %v", order)
	}
}
