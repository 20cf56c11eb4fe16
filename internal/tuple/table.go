package tuple

import (
	"math/big"
	"sort"
)

// Table is an owned, growable collection of entries.
//
// The zero value is an empty table ready for use. Ordering is a derived
// property: callers must apply SortCanonical or SortByB before relying on
// any positional operation (Dedup sorts for itself, FirstBIndex requires a
// b-sorted table).
type Table struct {
	entries []*Entry
}

// Len returns the number of entries, counting slots emptied by Take as gone.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// At returns the entry at index i. The table retains ownership.
func (t *Table) At(i int) *Entry {
	return t.entries[i]
}

// Move inserts a new entry, taking exclusive ownership of avals and b.
// The a-values are sorted ascending in place to establish canonical form.
// Callers must not retain references to avals, its elements, or b.
func (t *Table) Move(avals []*big.Int, b *big.Int) {
	sort.Slice(avals, func(i, j int) bool {
		return avals[i].Cmp(avals[j]) < 0
	})
	t.entries = append(t.entries, &Entry{A: avals, B: b})
}

// MoveEntry appends an entry built elsewhere, transferring ownership.
func (t *Table) MoveEntry(e *Entry) {
	t.entries = append(t.entries, e)
}

// Take removes and returns the entry at index i, nilling the slot so the
// source table no longer references the entry's storage. The table's length
// is unchanged; callers typically Take during a left-to-right drain and then
// Reset the source.
func (t *Table) Take(i int) *Entry {
	e := t.entries[i]
	t.entries[i] = nil
	return e
}

// Reset drops all entries and the backing storage. Safe on a nil table and
// idempotent on an empty one.
func (t *Table) Reset() {
	if t == nil {
		return
	}
	t.entries = nil
}

// SortCanonical orders entries by (b ascending, a-vector lexicographically
// ascending). Required before final output and before Dedup's scan.
func (t *Table) SortCanonical() {
	sort.Slice(t.entries, func(i, j int) bool {
		return compareCanonical(t.entries[i], t.entries[j]) < 0
	})
}

// SortByB orders entries by hypotenuse only. FirstBIndex requires this
// order (canonical order satisfies it too, since b is the primary key).
func (t *Table) SortByB() {
	sort.Slice(t.entries, func(i, j int) bool {
		return t.entries[i].B.Cmp(t.entries[j].B) < 0
	})
}

// Dedup sorts canonically and collapses every maximal run of adjacent
// entries with pointwise-equal a-vectors into its first entry. The
// discarded entries are released to the collector.
func (t *Table) Dedup() {
	if t.Len() <= 1 {
		return
	}
	t.SortCanonical()

	kept := t.entries[:0:0]
	for i := 0; i < len(t.entries); i++ {
		if i > 0 && sameA(t.entries[i-1], t.entries[i]) {
			continue
		}
		kept = append(kept, t.entries[i])
	}
	t.entries = kept
}

// FirstBIndex locates the first entry in the contiguous run of entries
// whose hypotenuse equals b. The table must be sorted by b (SortByB or
// SortCanonical). Returns -1 when no entry matches. Duplicate hypotenuses
// are common: one integer can be the hypotenuse of several Euclid
// parameter pairs.
func (t *Table) FirstBIndex(b *big.Int) int {
	i := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].B.Cmp(b) >= 0
	})
	if i >= len(t.entries) || t.entries[i].B.Cmp(b) != 0 {
		return -1
	}
	return i
}
