package block

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBlockInsertThenDelete mirrors Scenario 1 of the reference filter: insert a full block in
// time order via UndeleteSetMedian, then remove it in the same order via DeleteSetMedian.
func TestBlockInsertThenDelete(t *testing.T) {
	values := []int{2, 8, 5, 9, 1, 3, 4, 10}
	buf := &Buffers{}
	b, err := New(values, NaNError[int](), buf)
	require.NoError(t, err)

	b.Unwind()

	wantInsert := []int{2, 8, 5, 8, 5, 5, 4, 5}
	for i := 0; i < len(values); i++ {
		b.UndeleteSetMedian(i)
		v, ok := b.Peek()
		require.True(t, ok)
		assert.Equal(t, wantInsert[i], v, "peek after undelete_set_median(%d)", i)
	}

	wantDelete := []int{5, 5, 4, 4, 4, 10, 10}
	for i := 0; i < len(values)-1; i++ {
		b.DeleteSetMedian(i)
		v, ok := b.Peek()
		require.True(t, ok)
		assert.Equal(t, wantDelete[i], v, "peek after delete_set_median(%d)", i)
	}
}

// TestBlockSmallOdd mirrors Scenario 2.
func TestBlockSmallOdd(t *testing.T) {
	values := []int{9, 1, 2}
	buf := &Buffers{}
	b, err := New(values, NaNError[int](), buf)
	require.NoError(t, err)

	b.Unwind()

	want := []int{9, 9, 2}
	for i := 0; i < len(values); i++ {
		b.UndeleteSetMedian(i)
		v, ok := b.Peek()
		require.True(t, ok)
		assert.Equal(t, want[i], v)
	}
}

// TestBlockRoundTripR1 checks that Unwind followed by Undelete in index order restores the
// initial fully-active state (spec's R1).
func TestBlockRoundTripR1(t *testing.T) {
	values := []int{4, 1, 7, 7, 2, 9, 0}
	buf := &Buffers{}
	b, err := New(values, NaNError[int](), buf)
	require.NoError(t, err)

	b.Unwind()
	assert.True(t, b.IsEmpty())
	assert.True(t, b.AtEnd())

	for i := range values {
		b.Undelete(i)
	}

	assert.Equal(t, len(values), b.Len())
	b.Reset()
	got := make([]int, 0, len(values))
	for !b.AtEnd() {
		v, _ := b.Peek()
		got = append(got, v)
		b.Advance()
	}
	assert.Equal(t, []int{0, 1, 2, 4, 7, 7, 9}, got)
}

// TestBlockRoundTripR2 checks that deleting a permutation and undeleting it in reverse restores
// the original state (spec's R2).
func TestBlockRoundTripR2(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	perm := []int{5, 2, 0, 7, 1, 3, 6, 4}

	buf := &Buffers{}
	b, err := New(values, NaNError[float64](), buf)
	require.NoError(t, err)

	for _, i := range perm {
		b.Delete(i)
	}
	assert.True(t, b.IsEmpty())

	for i := len(perm) - 1; i >= 0; i-- {
		b.Undelete(perm[i])
	}

	assert.Equal(t, len(values), b.Len())
	b.Reset()
	got := make([]float64, 0, len(values))
	for !b.AtEnd() {
		v, _ := b.Peek()
		got = append(got, v)
		b.Advance()
	}
	assert.Equal(t, []float64{1, 1, 2, 3, 4, 5, 6, 9}, got)
}

func TestArgSortStableOnTies(t *testing.T) {
	values := []int{5, 3, 5, 1, 3}
	perm, err := ArgSort(values, NaNError[int](), nil)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 4, 0, 2}, perm)
}

func TestArgSortReportsUnorderedUnderNaNError(t *testing.T) {
	values := []float64{1, math.NaN(), 2}
	_, err := ArgSort(values, NaNError[float64](), nil)
	require.Error(t, err)
	var unordered *UnorderedError
	assert.ErrorAs(t, err, &unordered)
}

func TestArgSortSortsNaNHighUnderNaNHigh(t *testing.T) {
	values := []float64{3, math.NaN(), 1, 2}
	perm, err := ArgSort(values, NaNHigh[float64](), nil)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 0, 1}, perm)
}
