package techdata_test

import (
	"math"
	"testing"

	"github.com/fwojciec/techdata"
	"github.com/stretchr/testify/assert"
)

func TestSortFragments(t *testing.T) {
	t.Parallel()

	t.Run("orders by Order keeping ties in input order", func(t *testing.T) {
		t.Parallel()

		in := []techdata.Fragment{
			{Title: "c", Order: 2},
			{Title: "a", Order: 1},
			{Title: "b", Order: 1},
		}

		got := techdata.SortFragments(in)

		assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].Title, got[1].Title, got[2].Title})
		assert.Equal(t, "c", in[0].Title, "input must not be reordered")
	})

	t.Run("orders extreme Order values", func(t *testing.T) {
		t.Parallel()

		in := []techdata.Fragment{
			{Title: "max", Order: math.MaxInt},
			{Title: "min", Order: math.MinInt},
			{Title: "zero", Order: 0},
		}

		got := techdata.SortFragments(in)

		assert.Equal(t, []string{"min", "zero", "max"}, []string{got[0].Title, got[1].Title, got[2].Title})
	})
}

func TestHashFragments(t *testing.T) {
	t.Parallel()

	a := []techdata.Fragment{{Markup: "<p>x</p>", Order: 1}, {Markup: "<p>y</p>", Order: 2}}
	b := []techdata.Fragment{{Markup: "<p>y</p>", Order: 2}, {Markup: "<p>x</p>", Order: 1}}
	c := []techdata.Fragment{{Markup: "<p>x</p>", Order: 1}, {Markup: "<p>z</p>", Order: 2}}

	assert.Equal(t, techdata.HashFragments(a), techdata.HashFragments(b))
	assert.NotEqual(t, techdata.HashFragments(a), techdata.HashFragments(c))
}

func TestItem_Stale(t *testing.T) {
	t.Parallel()

	fragments := []techdata.Fragment{{Markup: "<table></table>"}}

	item := &techdata.Item{Name: "amp", Fragments: fragments}
	assert.True(t, item.Stale())

	item.Data = &techdata.TechnicalData{}
	item.SourceHash = techdata.HashFragments(fragments)
	assert.False(t, item.Stale())

	item.Fragments = append(item.Fragments, techdata.Fragment{Markup: "<p>new</p>"})
	assert.True(t, item.Stale())
}
