// Package verify provides validation functions for pool block-list
// structures. These helpers are used in tests to ensure allocator
// invariants are maintained.
//
// Validation categories:
//   - Conservation: header plus payload sizes tile the pool exactly
//   - Linkage: next/prev offsets are mutual, sorted, and terminated
//   - MaximalCoalescing: no two address-adjacent blocks are both free
//   - Alignment: every payload size is a multiple of the alignment
//
// All functions operate on a raw pool snapshot ([]byte), so they can check
// a live arena via Arena.Bytes or a copied snapshot equally well.
//
// Typical test pattern:
//
//	ref, _, err := a.Alloc(64)
//	require.NoError(t, err)
//	require.NoError(t, verify.AllInvariants(a.Bytes()))
package verify
