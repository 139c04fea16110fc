package regex

import (
	"github.com/bits-and-blooms/bitset"
)

// Table records which substrings of a line a pattern matches. Entry [b][e]
// is set when text[b:e] matches. Only entries with b <= e are meaningful.
type Table struct {
	n    int
	bits *bitset.BitSet
}

// NewTable returns an empty table for a line of length n.
func NewTable(n int) *Table {
	return &Table{n: n, bits: bitset.New(uint((n + 1) * (n + 1)))}
}

// Len is the length of the line the table was sized for.
func (t *Table) Len() int { return t.n }

func (t *Table) index(b, e int) uint {
	return uint(b*(t.n+1) + e)
}

func (t *Table) Get(b, e int) bool {
	return t.bits.Test(t.index(b, e))
}

func (t *Table) Set(b, e int) {
	t.bits.Set(t.index(b, e))
}

// Union sets every entry that is set in other. Both tables must have the
// same length.
func (t *Table) Union(other *Table) {
	t.bits.InPlaceUnion(other.bits)
}

// Any reports whether at least one substring matched, including empty ones.
func (t *Table) Any() bool {
	return t.bits.Any()
}

// Longest returns the largest e > b with [b][e] set.
func (t *Table) Longest(b int) (int, bool) {
	for e := t.n; e > b; e-- {
		if t.Get(b, e) {
			return e, true
		}
	}
	return 0, false
}

// Equal reports whether both tables have the same length and entries.
func (t *Table) Equal(other *Table) bool {
	return t.n == other.n && t.bits.Equal(other.bits)
}

// Pairs lists every set entry as {begin, end}, ordered by begin then end.
func (t *Table) Pairs() [][2]int {
	var out [][2]int
	for i, ok := t.bits.NextSet(0); ok; i, ok = t.bits.NextSet(i + 1) {
		out = append(out, [2]int{int(i) / (t.n + 1), int(i) % (t.n + 1)})
	}
	return out
}
