package testutil

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thruflo/sortvis/internal/sequence"
)

// AssertSorted asserts that seq is in ascending order.
func AssertSorted(t *testing.T, seq *sequence.Sequence) bool {
	t.Helper()
	return assert.True(t, seq.IsSorted(), "sequence not sorted: %v", seq.Values())
}

// AssertPermutation asserts that seq holds exactly 1..N.
func AssertPermutation(t *testing.T, seq *sequence.Sequence) bool {
	t.Helper()
	return assert.True(t, seq.IsPermutation(), "sequence is not a permutation: %v", seq.Values())
}

// AssertSameValues asserts that got is a rearrangement of want.
func AssertSameValues(t *testing.T, want, got []int) bool {
	t.Helper()
	w := append([]int(nil), want...)
	g := append([]int(nil), got...)
	sort.Ints(w)
	sort.Ints(g)
	return assert.Equal(t, w, g, "multiset changed")
}
