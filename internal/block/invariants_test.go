package block

import (
	"math/rand"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// activeSet tracks which positions are active independently of Block's own linked list, the same
// way the teacher pack's circuitbreaker stats track a rolling window of outcome bits in a
// bitset.BitSet - repurposed here to shadow "is position i active" instead of "was execution i a
// success", and cross-checked against the Block after every mutation.
type activeSet struct {
	bits *bitset.BitSet
	k    uint
}

func newActiveSet(k int) *activeSet {
	return &activeSet{bits: bitset.New(uint(k)), k: uint(k)}
}

func (s *activeSet) set(i int)   { s.bits.Set(uint(i)) }
func (s *activeSet) clear(i int) { s.bits.Clear(uint(i)) }
func (s *activeSet) count() int  { return int(s.bits.Count()) }

// checkInvariants verifies P1 (nondecreasing merged order), P2 (cycle cardinality) and P3 (cursor
// rank) against the independent active-set bitmap.
func checkInvariants[T Number](t *testing.T, b *Block[T], values []T, active *activeSet) {
	t.Helper()

	require.Equal(t, active.count(), b.Len(), "P2: active-set cardinality vs block n_element")

	// Walk the cycle from tail back to tail, counting distinct positions visited (P2) and
	// checking nondecreasing order (P1).
	visited := 0
	p := b.next[b.tail]
	var prevVal T
	haveSeen := false
	for p != b.tail {
		require.True(t, active.bits.Test(uint(p)), "position %d visited by the list but not marked active", p)
		if haveSeen {
			require.True(t, values[p] >= prevVal, "P1 violated: %v should be >= %v", values[p], prevVal)
		}
		prevVal = values[p]
		haveSeen = true
		visited++
		require.LessOrEqual(t, visited, active.count()+1, "cycle did not terminate at tail")
		p = b.next[p]
	}
	require.Equal(t, active.count(), visited, "P2: cycle length vs active-set cardinality")

	if b.Len() > 0 && !b.AtEnd() {
		rank := 0
		q := b.next[b.tail]
		for q != b.m {
			rank++
			q = b.next[q]
		}
		require.Equal(t, rank, b.CurrentIndex(), "P3: cursor rank")
	}
}

func TestBlockInvariantsUnderRandomDeleteUndelete(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		k := 1 + rng.Intn(12)
		values := make([]int, k)
		for i := range values {
			values[i] = rng.Intn(20)
		}

		buf := &Buffers{}
		b, err := New(values, NaNError[int](), buf)
		require.NoError(t, err)

		active := newActiveSet(k)
		for i := range values {
			active.set(i)
		}
		checkInvariants(t, b, values, active)

		perm := rng.Perm(k)
		for _, i := range perm {
			b.Delete(i)
			active.clear(i)
			checkInvariants(t, b, values, active)
		}
		assert.True(t, b.IsEmpty())

		for i := len(perm) - 1; i >= 0; i-- {
			b.Undelete(perm[i])
			active.set(perm[i])
			checkInvariants(t, b, values, active)
		}
		assert.Equal(t, k, b.Len())
	}
}

func TestBlockUnwindRestoresViaUndeleteInTimeOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 20; trial++ {
		k := 1 + rng.Intn(10)
		values := make([]float64, k)
		for i := range values {
			values[i] = rng.Float64() * 100
		}

		buf := &Buffers{}
		b, err := New(values, NaNError[float64](), buf)
		require.NoError(t, err)

		b.Unwind()
		active := newActiveSet(k)
		checkInvariants(t, b, values, active)

		for i := 0; i < k; i++ {
			b.Undelete(i)
			active.set(i)
			checkInvariants(t, b, values, active)
		}
		assert.Equal(t, k, b.Len())
	}
}
