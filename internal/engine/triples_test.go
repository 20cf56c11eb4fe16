package engine

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pythag/ptuples/internal/tuple"
)

// lines renders a table as canonical strings for comparison.
func lines(t *tuple.Table) []string {
	out := make([]string, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		out = append(out, t.At(i).String())
	}
	return out
}

// knownTriples1to25 is the complete set of Pythagorean triples with
// hypotenuse in [1,25], canonical order.
var knownTriples1to25 = []string{
	"(3,4,5)",
	"(6,8,10)",
	"(5,12,13)",
	"(9,12,15)",
	"(8,15,17)",
	"(12,16,20)",
	"(7,24,25)",
	"(15,20,25)",
}

func TestBuildTriples_AllInRange(t *testing.T) {
	tbl := &tuple.Table{}
	BuildTriples(tbl, false, big.NewInt(1), big.NewInt(25))
	tbl.SortCanonical()

	assert.Equal(t, knownTriples1to25, lines(tbl))
}

func TestBuildTriples_PrimitivesOnly(t *testing.T) {
	tbl := &tuple.Table{}
	BuildTriples(tbl, true, big.NewInt(1), big.NewInt(25))
	tbl.SortCanonical()

	want := []string{"(3,4,5)", "(5,12,13)", "(8,15,17)", "(7,24,25)"}
	assert.Equal(t, want, lines(tbl))
}

func TestBuildTriples_MultiplesBelowBMinRecovered(t *testing.T) {
	// (6,8,10) is a multiple of (3,4,5), whose own hypotenuse is below
	// b_min. Non-primitive generation must still find it.
	tbl := &tuple.Table{}
	BuildTriples(tbl, false, big.NewInt(10), big.NewInt(10))
	tbl.SortCanonical()

	assert.Equal(t, []string{"(6,8,10)"}, lines(tbl))
}

func TestBuildTriples_PrimitiveBoundsRespectBMin(t *testing.T) {
	// Primitives-only: (3,4,5) is below b_min and must not appear.
	tbl := &tuple.Table{}
	BuildTriples(tbl, true, big.NewInt(6), big.NewInt(25))
	tbl.SortCanonical()

	want := []string{"(5,12,13)", "(8,15,17)", "(7,24,25)"}
	assert.Equal(t, want, lines(tbl))
}

func TestBuildTriples_EmptyWhenRangeTooSmall(t *testing.T) {
	tbl := &tuple.Table{}
	BuildTriples(tbl, false, big.NewInt(1), big.NewInt(4))
	require.Equal(t, 0, tbl.Len())
}

func TestBuildTriples_Soundness(t *testing.T) {
	tbl := &tuple.Table{}
	BuildTriples(tbl, false, big.NewInt(1), big.NewInt(100))

	for i := 0; i < tbl.Len(); i++ {
		e := tbl.At(i)
		require.Len(t, e.A, 2)

		sum := new(big.Int)
		for _, a := range e.A {
			sum.Add(sum, new(big.Int).Mul(a, a))
		}
		bsqr := new(big.Int).Mul(e.B, e.B)
		assert.Zero(t, sum.Cmp(bsqr), "a^2 sum mismatch for %s", e)
		assert.LessOrEqual(t, e.B.Cmp(big.NewInt(100)), 0)
		assert.GreaterOrEqual(t, e.B.Cmp(big.NewInt(1)), 0)
	}
}
