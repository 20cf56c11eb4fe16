package engine

import (
	"fmt"
	"math/big"
)

// MaxExhaustiveB is the largest b_max the exhaustive engine accepts. Its
// square-value lookup indexes every integer below b_max, so the ceiling
// keeps both the lookup length and each square within uint64 range.
const MaxExhaustiveB = 1<<32 - 2

// Params describes one search: the total tuple size (a-count + 1), the
// inclusive hypotenuse range, and whether to restrict the output to
// primitive tuples.
type Params struct {
	TupleSize      int
	BMin           *big.Int
	BMax           *big.Int
	PrimitivesOnly bool
}

// validate checks the shared parameter constraints. A non-nil ceiling adds
// the engine-specific upper bound on b_max (the exhaustive engine's fixed
// ceiling). Every failure carries a coded, user-facing ValidationError.
func (p Params) validate(ceiling *big.Int) error {
	if p.TupleSize < 3 {
		return newValidationError(ErrCodeTupleSize, "tuple size must be >= 3")
	}
	if p.BMin == nil || p.BMax == nil {
		return newValidationError(ErrCodeBadInteger, "b_min and b_max must be decimal integers")
	}
	if p.BMin.Cmp(bigOne) < 0 {
		return newValidationError(ErrCodeBMinRange, "b_min must be >= 1")
	}
	if p.BMin.Cmp(p.BMax) > 0 {
		return newValidationError(ErrCodeRangeInverted, "b_min must be <= b_max")
	}
	if ceiling != nil && p.BMax.Cmp(ceiling) > 0 {
		return newValidationError(ErrCodeCeilingExceeded,
			fmt.Sprintf("b_max must be <= %d", uint64(MaxExhaustiveB)))
	}
	return nil
}

var (
	bigOne         = big.NewInt(1)
	maxExhaustiveB = new(big.Int).SetUint64(MaxExhaustiveB)
)
