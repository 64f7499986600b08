// internal/nodeid/compare_test.go
package nodeid

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare_GoalsBeforeTasks(t *testing.T) {
	ids := []string{"G2", "T2", "G1", "T1"}
	slices.SortFunc(ids, Compare)
	assert.Equal(t, []string{"G1", "G2", "T1", "T2"}, ids)
}

func TestCompare_NumericNotLexical(t *testing.T) {
	ids := []string{"G10", "G2", "AT11", "AT3", "G1"}
	slices.SortFunc(ids, Compare)
	assert.Equal(t, []string{"G1", "G2", "G10", "AT3", "AT11"}, ids)
}

func TestCompare_NonConformingLast(t *testing.T) {
	ids := []string{"zeta", "T1", "alpha", "G1"}
	slices.SortFunc(ids, Compare)
	assert.Equal(t, []string{"G1", "T1", "alpha", "zeta"}, ids)
}

func TestCompare_TotalOrder(t *testing.T) {
	ids := []string{"G1", "T1", "AT1", "G2", "x", "T10", "AT2"}
	for _, a := range ids {
		assert.Zero(t, Compare(a, a))
		for _, b := range ids {
			assert.Equal(t, -Compare(b, a), Compare(a, b), "antisymmetry %s %s", a, b)
		}
	}
	// Same number, different task prefix falls back to the prefix.
	assert.Negative(t, Compare("AT1", "T1"))
}

func TestCompare_SameAddressDifferentSpelling(t *testing.T) {
	assert.Negative(t, Compare("G01", "G1"))
	assert.Positive(t, Compare("G1", "G01"))
	assert.Zero(t, CompareAddress(NewAddress("G", 1), NewAddress("G", 1)))

	for _, ids := range [][]string{{"G1", "G01", "G001"}, {"G001", "G1", "G01"}} {
		slices.SortFunc(ids, Compare)
		assert.Equal(t, []string{"G001", "G01", "G1"}, ids)
	}
}

func TestAddress_String(t *testing.T) {
	assert.Equal(t, "AT4", NewAddress("AT", 4).String())
	assert.Equal(t, "", (*Address)(nil).String())
	assert.True(t, (*Address)(nil).Equal(nil))
	assert.False(t, NewAddress("G", 1).Equal(nil))
}
