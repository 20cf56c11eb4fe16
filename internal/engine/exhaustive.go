package engine

import (
	"log/slog"
	"math/big"

	"github.com/pythag/ptuples/internal/tuple"
)

// Exhaustive enumerates every tuple of the requested size with hypotenuse
// in [BMin, BMax] by odometer enumeration over square values.
//
// One digit exists per a-position; each ranges over the squares of
// 1..BMax-1 and the least significant digit increments fastest. Digits are
// not forced non-decreasing, so permutations of the same a-vector are
// generated and collapsed by deduplication afterwards. Two prunings keep
// the enumeration tractable: a skip-ahead that jumps a freshly reset digit
// near the smallest value able to reach BMin^2, and an early carry once
// the running sum exceeds BMax^2.
//
// The square lookup is sized to BMax and lives only for this call, which
// is why BMax is capped at MaxExhaustiveB.
func Exhaustive(p Params) (*tuple.Table, error) {
	if err := p.validate(maxExhaustiveB); err != nil {
		return nil, err
	}

	out := &tuple.Table{}

	bMinSqr := new(big.Int).Mul(p.BMin, p.BMin)
	bMaxSqr := new(big.Int).Mul(p.BMax, p.BMax)

	// Squares of 1..BMax-1. An a-value can never reach b, and within the
	// ceiling every square fits in a uint64.
	numSqrs := int(new(big.Int).Sub(p.BMax, bigOne).Int64())
	if numSqrs < 1 {
		return out, nil
	}
	sqrs := make([]uint64, numSqrs)
	for i := range sqrs {
		v := uint64(i + 1)
		sqrs[i] = v * v
	}

	numDigits := p.TupleSize - 1
	last := numDigits - 1

	// digit[i] indexes sqrs; subtotal[i] is the running sum of the
	// selected squares through position i.
	digit := make([]int, numDigits)
	subtotal := make([]*big.Int, numDigits)
	for i := range subtotal {
		subtotal[i] = new(big.Int)
	}

	tmp := &tuple.Table{}
	temp := new(big.Int)

	for i := 0; i >= 0; {
		// Recompute subtotals from the lowest changed position through
		// the fastest digit.
		for ; i < last; i++ {
			subtotal[i].SetUint64(sqrs[digit[i]])
			if i > 0 {
				subtotal[i].Add(subtotal[i], subtotal[i-1])
			}
		}
		subtotal[i].SetUint64(sqrs[digit[i]])
		subtotal[i].Add(subtotal[i], subtotal[i-1])

		// First visit after a reset: jump near the smallest square that
		// can lift the sum to BMin^2, minus one step of safety margin.
		if digit[i] == 0 {
			temp.Sub(bMinSqr, subtotal[i-1])
			if temp.Cmp(bigOne) >= 0 {
				idx := int(temp.Sqrt(temp).Int64())
				if idx > 0 {
					idx--
				}
				if idx >= numSqrs {
					idx = numSqrs - 1
				}
				digit[i] = idx
				subtotal[i].SetUint64(sqrs[idx])
				subtotal[i].Add(subtotal[i], subtotal[i-1])
			}
		}

		belowMin := subtotal[i].Cmp(bMinSqr) < 0
		aboveMax := subtotal[i].Cmp(bMaxSqr) > 0

		if !belowMin && !aboveMax {
			if root, ok := perfectSquare(subtotal[i]); ok {
				avals := make([]*big.Int, numDigits)
				for j := range avals {
					avals[j] = big.NewInt(int64(digit[j] + 1))
				}
				tmp.Move(avals, root)
			}
		}

		if aboveMax {
			// Everything further in this digit's range is larger still.
			digit[i] = numSqrs
		} else {
			digit[i]++
		}

		// Carry: reset exhausted digits and advance the next slower one,
		// applying the same over-limit pruning there. The search ends
		// when the slowest digit carries out.
		for i >= 0 && digit[i] >= numSqrs {
			digit[i] = 0
			i--
			if i >= 0 {
				if subtotal[i].Cmp(bMaxSqr) > 0 {
					digit[i] = numSqrs
				} else {
					digit[i]++
				}
			}
		}
	}

	tmp.Dedup()
	slog.Debug("exhaustive enumeration complete",
		"tuple_size", p.TupleSize, "candidates", tmp.Len())

	for i := 0; i < tmp.Len(); i++ {
		e := tmp.Take(i)
		if p.PrimitivesOnly && !tuple.Primitive(e) {
			continue
		}
		out.MoveEntry(e)
	}
	tmp.Reset()

	out.SortCanonical()
	return out, nil
}

// perfectSquare returns the exact integer square root of z when z is a
// perfect square.
func perfectSquare(z *big.Int) (*big.Int, bool) {
	root := new(big.Int).Sqrt(z)
	if temp := new(big.Int).Mul(root, root); temp.Cmp(z) != 0 {
		return nil, false
	}
	return root, true
}
