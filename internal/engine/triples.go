package engine

import (
	"math/big"

	"github.com/pythag/ptuples/internal/tuple"
)

// BuildTriples generates Pythagorean triples with hypotenuse in
// [bMin, bMax] into dst using Euclid's formula: for coprime m > n of
// opposite parity, a = m^2-n^2, b = 2mn, c = m^2+n^2 is a primitive
// triple, and every triple is a scalar multiple of one.
//
// With primitivesOnly set, only the primitives themselves are emitted and
// bMin bounds them directly. Otherwise every multiple k*(a,b,c) with k*c
// in [bMin, bMax] is emitted, and the primitives are generated over
// [1, bMax] so that multiples of small triples below bMin are not lost.
//
// Entries land in dst unsorted; callers sort as needed.
func BuildTriples(dst *tuple.Table, primitivesOnly bool, bMin, bMax *big.Int) {
	workingMin := bigOne
	if primitivesOnly {
		workingMin = bMin
	}

	// n ranges from 1 to floor(sqrt(ceil(bMax/2))).
	nMax := new(big.Int).Add(bMax, bigOne)
	nMax.Rsh(nMax, 1)
	nMax.Sqrt(nMax)

	var (
		nSquared = new(big.Int)
		mSquared = new(big.Int)
		mMin     = new(big.Int)
		mMax     = new(big.Int)
		gcd      = new(big.Int)
		temp     = new(big.Int)
		k        = new(big.Int)
		kc       = new(big.Int)
	)

	for n := big.NewInt(1); n.Cmp(nMax) <= 0; n.Add(n, bigOne) {
		nSquared.Mul(n, n)

		// Smallest m that can reach workingMin, with a one-unit safety
		// margin against floor-sqrt truncation.
		mMin.Sub(workingMin, nSquared)
		if mMin.Cmp(bigOne) < 0 {
			mMin.Set(bigOne)
		}
		mMin.Sqrt(mMin)
		mMin.Sub(mMin, bigOne)

		mMax.Sub(bMax, nSquared)
		if mMax.Cmp(bigOne) < 0 {
			mMax.Set(bigOne)
		}
		mMax.Sqrt(mMax)

		// First candidate m: at least n+1, at least mMin, opposite
		// parity from n so that m-n is odd.
		m := new(big.Int)
		if n.Cmp(mMin) < 0 {
			m.Set(mMin)
			temp.Sub(m, n)
			if temp.Bit(0) == 0 {
				m.Add(m, bigOne)
			}
		} else {
			m.Add(n, bigOne)
		}

		for ; m.Cmp(mMax) <= 0; m.Add(m, bigTwo) {
			// Non-coprime (m,n) pairs repeat triples already produced
			// by their reduced form.
			gcd.GCD(nil, nil, m, n)
			if gcd.Cmp(bigOne) != 0 {
				continue
			}

			mSquared.Mul(m, m)

			a := new(big.Int).Sub(mSquared, nSquared)
			b := new(big.Int).Mul(m, n)
			b.Lsh(b, 1)
			c := new(big.Int).Add(mSquared, nSquared)

			if c.Cmp(workingMin) < 0 || c.Cmp(bMax) > 0 {
				continue
			}

			if primitivesOnly {
				dst.Move([]*big.Int{a, b}, c)
				continue
			}

			// Scalar multiples: k starts at floor(bMin/c), which may be
			// one step short when bMin is not a multiple of c.
			k.Div(bMin, c)
			for kc.Mul(c, k); kc.Cmp(bMax) <= 0; kc.Mul(c, k.Add(k, bigOne)) {
				if kc.Cmp(bMin) < 0 {
					continue
				}
				ka := new(big.Int).Mul(a, k)
				kb := new(big.Int).Mul(b, k)
				dst.Move([]*big.Int{ka, kb}, new(big.Int).Set(kc))
			}
		}
	}
}

var bigTwo = big.NewInt(2)
