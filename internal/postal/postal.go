// Package postal maps Norwegian 4-digit postal codes to municipality names.
// The exact-match table covers city-center codes; a hand-curated list of
// numeric ranges catches the rest of the known districts. Resolution is a
// pure lookup with no I/O.
package postal

import (
	"sort"
	"strconv"
	"strings"
)

// Resolve returns the municipality for a postal code, or "" when the code
// falls outside every known range. Input is normalized by stripping
// whitespace and left-padding to 4 digits; validating the [0-9]{4} shape is
// the caller's job.
func Resolve(code string) string {
	clean := strings.Join(strings.Fields(code), "")
	if len(clean) < 4 {
		clean = strings.Repeat("0", 4-len(clean)) + clean
	}

	if m, ok := codeTable[clean]; ok {
		return m
	}

	n, err := strconv.Atoi(clean)
	if err != nil {
		return ""
	}
	for _, r := range districtRanges {
		if n >= r.lo && n < r.hi {
			return r.municipality
		}
	}
	return ""
}

// Municipalities returns the sorted unique municipality names of the
// exact-match table, for use as a dropdown source.
func Municipalities() []string {
	seen := make(map[string]struct{}, len(codeTable))
	for _, m := range codeTable {
		seen[m] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

type district struct {
	lo, hi       int // half-open [lo, hi)
	municipality string
}

// districtRanges is checked in order after an exact-match miss. The list is
// not exhaustive; unmatched codes resolve to "".
var districtRanges = []district{
	{0, 1300, "Oslo"},
	{1300, 1400, "Bærum"},
	{1400, 1500, "Nordre Follo"},
	{1500, 1600, "Lørenskog"},
	{1600, 1700, "Fredrikstad"},
	{1700, 1800, "Sarpsborg"},
	{1800, 1900, "Askim"},
	{2000, 2100, "Lillestrøm"},
	{2300, 2400, "Hamar"},
	{2600, 2700, "Lillehammer"},
	{2800, 2900, "Gjøvik"},
	{3000, 3100, "Drammen"},
	{3100, 3200, "Tønsberg"},
	{3200, 3300, "Sandefjord"},
	{3700, 3800, "Skien"},
	{4000, 4100, "Stavanger"},
	{4300, 4400, "Sandnes"},
	{4600, 4700, "Kristiansand"},
	{4800, 4900, "Arendal"},
	{5000, 5100, "Bergen"},
	{5500, 5600, "Haugesund"},
	{6000, 6100, "Ålesund"},
	{6400, 6500, "Molde"},
	{7000, 7100, "Trondheim"},
	{8000, 8100, "Bodø"},
	{8600, 8700, "Mo i Rana"},
	{9000, 9100, "Tromsø"},
}
