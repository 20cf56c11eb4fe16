// Package tuple provides the shared tuple-table abstraction used by both
// search engines.
//
// A tuple is an integer solution to a_1^2 + a_2^2 + ... = b^2, stored as an
// Entry: the a-values in ascending order plus the hypotenuse b. A Table owns
// a growable collection of entries and supplies the operations every engine
// needs: insertion with ownership transfer, canonical sorting, duplicate
// collapsing, and binary search by hypotenuse.
//
// OWNERSHIP:
//
// A Table exclusively owns the big.Int values of every entry it holds.
// Entries move between tables (MoveEntry, Take); they are never aliased, so
// no two tables ever reference the same big.Int storage. Engines build
// entries with freshly allocated values and hand them over via Move.
//
// Duplicate detection is defined purely on a-vectors: two entries with
// pointwise-equal a-values necessarily share the same b, since b is
// determined by the sum of squares.
package tuple
