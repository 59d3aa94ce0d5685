//go:build unix

package mmbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapWriteUnmap(t *testing.T) {
	data, cleanup, err := Map(4096)
	require.NoError(t, err)
	require.Len(t, data, 4096)

	// Pages must be writable and zero-filled.
	for _, b := range data[:64] {
		require.Zero(t, b)
	}
	data[0] = 0xAB
	data[4095] = 0xCD
	require.Equal(t, byte(0xAB), data[0])

	require.NoError(t, cleanup())
	// Double cleanup is tolerated.
	require.NoError(t, cleanup())
}

func TestMapRejectsBadSize(t *testing.T) {
	_, _, err := Map(0)
	require.Error(t, err)
	_, _, err = Map(-1)
	require.Error(t, err)
}
