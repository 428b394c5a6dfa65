package techdata

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fragment is one tab of raw specification markup attached to a catalog item.
type Fragment struct {
	Markup string `json:"markup"`
	Title  string `json:"title,omitempty"`
	Order  int    `json:"order"`
}

// SortFragments returns a copy of fragments ordered by Order.
// Fragments with equal Order keep their input order.
func SortFragments(fragments []Fragment) []Fragment {
	sorted := slices.Clone(fragments)
	slices.SortStableFunc(sorted, func(a, b Fragment) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return sorted
}

// HashFragments computes an xxHash over the ordered fragments.
// Equal hashes mean extraction would see identical input.
func HashFragments(fragments []Fragment) string {
	d := xxhash.New()
	for _, f := range SortFragments(fragments) {
		_, _ = d.WriteString(strconv.Itoa(f.Order))
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(f.Title)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(f.Markup)
		_, _ = d.WriteString("\x01")
	}
	return fmt.Sprintf("%x", d.Sum64())
}
