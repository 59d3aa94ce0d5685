package arena

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memkit/arena/verify"
	"github.com/joshuapare/memkit/internal/format"
)

// TestRandomAllocFreeGuardInvariants performs random alloc/free traffic and
// validates the structural invariants after every step.
func TestRandomAllocFreeGuardInvariants(t *testing.T) {
	const capacity = 16384

	a, err := New(capacity, nil)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42)) // Fixed seed for reproducibility
	live := make([]Ref, 0, 64)

	for i := 0; i < 500; i++ {
		if rng.Intn(2) == 0 {
			size := 1 + rng.Intn(512)
			ref, payload, allocErr := a.Alloc(size)
			switch allocErr {
			case nil:
				require.GreaterOrEqual(t, len(payload), size)
				live = append(live, ref)
			case ErrNoSpace:
				// Expected under pressure; must be side-effect-free, which
				// the invariant check below confirms.
			default:
				t.Fatalf("step %d: unexpected alloc error: %v", i, allocErr)
			}
		} else if len(live) > 0 {
			j := rng.Intn(len(live))
			require.NoError(t, a.Free(live[j]), "step %d", i)
			live = append(live[:j], live[j+1:]...)
		}

		require.NoError(t, verify.AllInvariants(a.Bytes()), "step %d", i)
	}

	// Drain in random order: the pool must collapse to the bootstrap state.
	rng.Shuffle(len(live), func(i, j int) { live[i], live[j] = live[j], live[i] })
	for _, ref := range live {
		require.NoError(t, a.Free(ref))
		require.NoError(t, verify.AllInvariants(a.Bytes()))
	}

	r := a.Introspect()
	require.Equal(t, 1, r.TotalBlocks)
	require.Equal(t, capacity-format.HeaderSize, r.FreeBytes)
}

// TestConservationUnderFragmentation drives the pool to heavy fragmentation
// and checks that headers plus payloads always tile the capacity exactly.
func TestConservationUnderFragmentation(t *testing.T) {
	const capacity = 8192

	a, err := New(capacity, nil)
	require.NoError(t, err)

	var refs []Ref
	for {
		ref, _, allocErr := a.Alloc(32)
		if allocErr != nil {
			require.ErrorIs(t, allocErr, ErrNoSpace)
			break
		}
		refs = append(refs, ref)
	}

	// Free every other block to maximize fragmentation.
	for i := 0; i < len(refs); i += 2 {
		require.NoError(t, a.Free(refs[i]))
	}
	require.NoError(t, verify.Conservation(a.Bytes()))
	require.NoError(t, verify.MaximalCoalescing(a.Bytes()))

	total := 0
	for _, b := range a.Introspect().Blocks {
		total += format.HeaderSize + b.PayloadSize
	}
	require.Equal(t, capacity, total)
}
