package tuple

import (
	"math/big"
	"strings"
)

// Entry is a single Pythagorean tuple: a-values in ascending order plus the
// hypotenuse B. The invariant sum(A[i]^2) == B^2 holds for every entry an
// engine produces; the table itself never recomputes it.
type Entry struct {
	A []*big.Int // a-values, ascending after Move
	B *big.Int
}

// String renders the entry in the canonical output form "(a_1,...,a_n,b)".
func (e *Entry) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for _, a := range e.A {
		sb.WriteString(a.String())
		sb.WriteByte(',')
	}
	sb.WriteString(e.B.String())
	sb.WriteByte(')')
	return sb.String()
}

// sameA reports whether two entries have pointwise-equal a-vectors.
// This is the duplicate relation: b is determined by the a-vector.
func sameA(e1, e2 *Entry) bool {
	if len(e1.A) != len(e2.A) {
		return false
	}
	for i := range e1.A {
		if e1.A[i].Cmp(e2.A[i]) != 0 {
			return false
		}
	}
	return true
}

// compareCanonical orders entries by b ascending, then by a-vector
// lexicographically ascending.
func compareCanonical(e1, e2 *Entry) int {
	if c := e1.B.Cmp(e2.B); c != 0 {
		return c
	}
	n := len(e1.A)
	if len(e2.A) < n {
		n = len(e2.A)
	}
	for i := 0; i < n; i++ {
		if c := e1.A[i].Cmp(e2.A[i]); c != 0 {
			return c
		}
	}
	return 0
}
