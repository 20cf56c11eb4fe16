package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowth_TriplesDelegateToEuclid(t *testing.T) {
	tbl, err := Growth(params(3, 1, 25, false))
	require.NoError(t, err)
	assert.Equal(t, knownTriples1to25, lines(tbl))
}

func TestGrowth_TriplesPrimitive(t *testing.T) {
	tbl, err := Growth(params(3, 1, 25, true))
	require.NoError(t, err)
	assert.Equal(t, []string{"(3,4,5)", "(5,12,13)", "(8,15,17)", "(7,24,25)"}, lines(tbl))
}

func TestGrowth_Quadruples_1_13(t *testing.T) {
	// Only (5,12,13) has a splittable leg in range: 5 -> (3,4).
	tbl, err := Growth(params(4, 1, 13, false))
	require.NoError(t, err)
	assert.Equal(t, []string{"(3,4,12,13)"}, lines(tbl))
}

func TestGrowth_Quadruples_1_25(t *testing.T) {
	tbl, err := Growth(params(4, 1, 25, false))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"(3,4,12,13)",  // (5,12,13), 5 -> (3,4)
		"(8,9,12,17)",  // (8,15,17), 15 -> (9,12)
		"(9,12,20,25)", // (15,20,25), 15 -> (9,12)
		"(12,15,16,25)", // (15,20,25), 20 -> (12,16)
	}, lines(tbl))
}

func TestGrowth_DocumentedGap(t *testing.T) {
	// 1^2+2^2+2^2 = 3^2 has no split-chain decomposition: the growth
	// engine never produces it, while the exhaustive engine must.
	grown, err := Growth(params(4, 1, 3, false))
	require.NoError(t, err)
	assert.Equal(t, 0, grown.Len())

	exhaustive, err := Exhaustive(params(4, 1, 3, false))
	require.NoError(t, err)
	assert.Equal(t, []string{"(1,2,2,3)"}, lines(exhaustive))

	wide, err := Growth(params(4, 1, 25, false))
	require.NoError(t, err)
	assert.NotContains(t, lines(wide), "(1,2,2,3)")
}

func TestGrowth_SoundnessAndCanonicalForm(t *testing.T) {
	tbl, err := Growth(params(5, 1, 50, false))
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < tbl.Len(); i++ {
		e := tbl.At(i)
		require.Len(t, e.A, 4)

		sum := newSumOfSquares(e.A)
		assert.Zero(t, sum.Cmp(newSquare(e.B)), "invariant fails for %s", e)

		for j := 1; j < len(e.A); j++ {
			assert.LessOrEqual(t, e.A[j-1].Cmp(e.A[j]), 0)
		}

		key := e.String()
		assert.False(t, seen[key], "duplicate %s", key)
		seen[key] = true
	}
}

func TestGrowth_Determinism(t *testing.T) {
	first, err := Growth(params(4, 1, 30, false))
	require.NoError(t, err)
	second, err := Growth(params(4, 1, 30, false))
	require.NoError(t, err)
	assert.Equal(t, lines(first), lines(second))
}
