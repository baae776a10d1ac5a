package postal

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_ExactMatch(t *testing.T) {
	assert.Equal(t, "Oslo", Resolve("0010"))
	assert.Equal(t, "Bergen", Resolve("5003"))
	assert.Equal(t, "Trondheim", Resolve("7010"))
	assert.Equal(t, "Tromsø", Resolve("9006"))

	// Table quirk: 860x codes say Rana, the range fallback says Mo i Rana.
	// The exact match wins.
	assert.Equal(t, "Rana", Resolve("8601"))
	assert.Equal(t, "Mo i Rana", Resolve("8650"))
}

func TestResolve_Normalization(t *testing.T) {
	assert.Equal(t, "Oslo", Resolve(" 0010 "))
	assert.Equal(t, "Oslo", Resolve("00 10"))
	// Short codes are left-padded with zeros.
	assert.Equal(t, "Oslo", Resolve("10"))
}

func TestResolve_RangeFallback(t *testing.T) {
	// Codes outside the exact table fall back to ordered half-open ranges.
	assert.Equal(t, "Oslo", Resolve("0999"))
	assert.Equal(t, "Bærum", Resolve("1310"))
	assert.Equal(t, "Stavanger", Resolve("4050"))
	assert.Equal(t, "Tromsø", Resolve("9099"))
}

func TestResolve_HalfOpenBoundaries(t *testing.T) {
	// [0,1300) is Oslo; 1300 itself starts the Bærum range.
	assert.Equal(t, "Oslo", Resolve("1299"))
	assert.Equal(t, "Bærum", Resolve("1300"))
	// Upper bound of the last range is exclusive.
	assert.Equal(t, "", Resolve("9100"))
}

func TestResolve_Unmatched(t *testing.T) {
	assert.Equal(t, "", Resolve("1950"))
	assert.Equal(t, "", Resolve("9999"))
	assert.Equal(t, "", Resolve("abcd"))
	assert.Equal(t, "", Resolve(""))
}

func TestMunicipalities(t *testing.T) {
	got := Municipalities()
	assert.NotEmpty(t, got)
	assert.True(t, sort.StringsAreSorted(got))
	assert.Contains(t, got, "Oslo")
	assert.Contains(t, got, "Bergen")
	assert.NotContains(t, got, "")

	seen := make(map[string]bool)
	for _, m := range got {
		assert.False(t, seen[m], "duplicate municipality %q", m)
		seen[m] = true
	}
}
