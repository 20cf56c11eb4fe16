package tuple

import (
	"log/slog"
	"math/big"
)

// Primitive reports whether the entry is a primitive tuple, i.e. whether
// gcd(a_1, ..., a_n, b) == 1.
//
// The running gcd starts from gcd(a_0, a_1), folds in each remaining
// a-value in order, and short-circuits the moment it reaches 1; b is folded
// in last, only if still needed.
//
// PRECONDITION: the entry has at least 2 a-values. Engines never produce
// smaller entries; if one slips through, the violation is logged as an
// internal error and the entry is reported as not primitive.
func Primitive(e *Entry) bool {
	if len(e.A) < 2 {
		slog.Error("internal error: primitivity check requires at least 2 a-values",
			"a_count", len(e.A))
		return false
	}

	gcd := new(big.Int).GCD(nil, nil, e.A[0], e.A[1])
	if gcd.Cmp(bigOne) == 0 {
		return true
	}

	for _, a := range e.A[2:] {
		gcd.GCD(nil, nil, gcd, a)
		if gcd.Cmp(bigOne) == 0 {
			return true
		}
	}

	gcd.GCD(nil, nil, gcd, e.B)
	return gcd.Cmp(bigOne) == 0
}

var bigOne = big.NewInt(1)
