// Package engine implements the two Pythagorean tuple search strategies.
//
// Both engines solve the same problem: find integer tuples with
// a_1^2 + ... + a_{n-1}^2 = b^2 for b in [b_min, b_max], optionally
// restricted to primitive tuples (gcd of all terms 1). They differ in
// strategy and guarantees:
//
// Exhaustive (odometer enumeration):
// Enumerates combinations of squares with a mixed-radix counter, pruning
// digit ranges that cannot reach b_min^2 or that already exceed b_max^2.
// Complete within its ceiling (b_max <= 2^32-2), but slow for large ranges.
//
// Growth (substitution growth):
// Builds arity-N tuples from arity-(N-1) tuples by replacing one a-value
// with the two legs of a triple sharing that value as hypotenuse, which
// preserves the sum-of-squares invariant. Fast, but provably incomplete:
// only tuples reachable by a chain of single-square splits from a base
// triple are found. (1,2,2,3) is a documented miss.
//
// Both engines are single-threaded and fully synchronous; they buffer all
// results in memory and return a deduplicated, canonically sorted table.
// Evaluation is deterministic: identical parameters yield identical tables.
package engine
