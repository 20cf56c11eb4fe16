package engine

import (
	"log/slog"
	"math/big"

	"github.com/pythag/ptuples/internal/tuple"
)

// growthHelperMin is the smallest triple hypotenuse (3,4,5); the helper
// table of splittable triples starts there.
var growthHelperMin = big.NewInt(5)

// Growth builds tuples of the requested size by substitution growth:
// starting from triples, one a-value at a time is replaced by the two legs
// of a triple whose hypotenuse equals it, growing the arity by one while
// preserving the sum of squares.
//
// The engine is fast but incomplete: it reaches only tuples expressible as
// a chain of single-square splits from a base triple. Tuples with no such
// decomposition, e.g. 1^2+2^2+2^2 = 3^2 or 1^2+1^2+1^2+1^2 = 2^2, are
// never produced. Everything it does produce is a sound solution within
// [BMin, BMax].
func Growth(p Params) (*tuple.Table, error) {
	if err := p.validate(nil); err != nil {
		return nil, err
	}

	out := &tuple.Table{}

	if p.TupleSize == 3 {
		BuildTriples(out, p.PrimitivesOnly, p.BMin, p.BMax)
		out.SortCanonical()
		return out, nil
	}

	// Helper table: every triple with hypotenuse in [5, BMax], primitives
	// and multiples alike, sorted for hypotenuse lookup. Substitutions
	// draw their legs from here.
	helper := &tuple.Table{}
	BuildTriples(helper, false, growthHelperMin, p.BMax)
	helper.SortCanonical()

	// Seed: arity-3 tuples already inside the requested range. Their b
	// never changes during growth, so the range holds for every stage.
	current := &tuple.Table{}
	for i := 0; i < helper.Len(); i++ {
		e := helper.At(i)
		if e.B.Cmp(p.BMin) < 0 {
			continue
		}
		avals := []*big.Int{
			new(big.Int).Set(e.A[0]),
			new(big.Int).Set(e.A[1]),
		}
		current.Move(avals, new(big.Int).Set(e.B))
	}

	// Each stage consumes the previous table and produces a fresh one of
	// arity one larger.
	for tsize := 4; tsize <= p.TupleSize; tsize++ {
		next := &tuple.Table{}

		for i := 0; i < current.Len(); i++ {
			entry := current.At(i)
			for j := range entry.A {
				idx := helper.FirstBIndex(entry.A[j])
				if idx < 0 {
					continue
				}
				// Substitute position j with each matching triple's legs.
				for ; idx < helper.Len() && helper.At(idx).B.Cmp(entry.A[j]) == 0; idx++ {
					avals := splitAt(entry, j, helper.At(idx))
					next.Move(avals, new(big.Int).Set(entry.B))
				}
			}
		}

		next.Dedup()
		slog.Debug("growth stage complete", "arity", tsize, "tuples", next.Len())

		current.Reset()
		current = next
	}

	for i := 0; i < current.Len(); i++ {
		e := current.Take(i)
		if p.PrimitivesOnly && !tuple.Primitive(e) {
			continue
		}
		out.MoveEntry(e)
	}
	current.Reset()

	out.SortCanonical()
	return out, nil
}

// splitAt builds the a-vector of e with position j replaced by the two
// a-values of triple, whose hypotenuse equals e.A[j]. Valid because
// e.A[j]^2 equals the sum of the two substituted squares, so the
// sum-of-squares invariant is preserved with b unchanged. Every value is
// freshly allocated; Table.Move restores canonical order.
func splitAt(e *tuple.Entry, j int, triple *tuple.Entry) []*big.Int {
	avals := make([]*big.Int, 0, len(e.A)+1)
	for k := 0; k < j; k++ {
		avals = append(avals, new(big.Int).Set(e.A[k]))
	}
	avals = append(avals,
		new(big.Int).Set(triple.A[0]),
		new(big.Int).Set(triple.A[1]))
	for k := j + 1; k < len(e.A); k++ {
		avals = append(avals, new(big.Int).Set(e.A[k]))
	}
	return avals
}
