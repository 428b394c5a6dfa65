package goquery_test

import (
	"testing"

	"github.com/fwojciec/techdata/goquery"
	"github.com/stretchr/testify/assert"
)

func TestClassifyHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want goquery.Header
	}{
		{
			name: "direct header row",
			html: `<table>
<tr><th></th><th>Power Amp A</th><th>Power Amp B</th></tr>
<tr><td>Impedance</td><td>4Ω</td><td>8Ω</td></tr>
</table>`,
			want: goquery.Header{Shape: goquery.ShapeDirect, Variants: []string{"Power Amp A", "Power Amp B"}, Skip: 1},
		},
		{
			name: "direct header row with label cell as group title",
			html: `<table>
<tr><td>Audio</td><th>A</th><th>B</th></tr>
<tr><td>Power</td><td>1</td><td>2</td></tr>
</table>`,
			want: goquery.Header{Shape: goquery.ShapeDirect, Variants: []string{"A", "B"}, Skip: 1, Title: "Audio"},
		},
		{
			name: "rowspan and colspan mix",
			html: `<table>
<tr><th rowspan="2"></th><th rowspan="2">Base</th><th colspan="2">Pro</th></tr>
<tr><th>A</th><th>B</th></tr>
<tr><td>Power</td><td>1</td><td>2</td><td>3</td></tr>
</table>`,
			want: goquery.Header{Shape: goquery.ShapeRowspanMix, Variants: []string{"Base", "Pro A", "Pro B"}, Skip: 2},
		},
		{
			name: "rowspan and colspan mix keeps plain first-row cells",
			html: `<table>
<tr><th rowspan="2">Base</th><th colspan="2">Pro</th><th>Max</th></tr>
<tr><th>A</th><th>B</th></tr>
</table>`,
			want: goquery.Header{Shape: goquery.ShapeRowspanMix, Variants: []string{"Base", "Pro A", "Pro B", "Max"}, Skip: 2},
		},
		{
			name: "colspan groups over variant row",
			html: `<table>
<tr><th></th><th colspan="2">Pro</th><th colspan="2">Max</th></tr>
<tr><td></td><th>16GB</th><th>32GB</th><th>16GB</th><th>32GB</th></tr>
</table>`,
			want: goquery.Header{Shape: goquery.ShapeColspanGroups, Variants: []string{"Pro 16GB", "Pro 32GB", "Max 16GB", "Max 32GB"}, Skip: 2},
		},
		{
			name: "colspan groups with empty row-spanning label column",
			html: `<table>
<tr><th rowspan="2"></th><th colspan="2">Pro</th></tr>
<tr><th>A</th><th>B</th></tr>
</table>`,
			want: goquery.Header{Shape: goquery.ShapeColspanGroups, Variants: []string{"Pro A", "Pro B"}, Skip: 2},
		},
		{
			name: "colspan groups do not repeat a prefix equal to the name",
			html: `<table>
<tr><th></th><th colspan="2">Pro</th><th>Max</th></tr>
<tr><td></td><th>A</th><th>B</th><th>Max</th></tr>
</table>`,
			want: goquery.Header{Shape: goquery.ShapeColspanGroups, Variants: []string{"Pro A", "Pro B", "Max"}, Skip: 2},
		},
		{
			name: "full-width title row over variant row",
			html: `<table>
<tr><th colspan="3">Engine</th></tr>
<tr><td></td><th>Model X</th><th>Model Y</th></tr>
<tr><td>Power</td><td>100 kW</td><td>120 kW</td></tr>
</table>`,
			want: goquery.Header{Shape: goquery.ShapeTitleRow, Variants: []string{"Model X", "Model Y"}, Skip: 2, Title: "Engine"},
		},
		{
			name: "rowspan and colspan mix with td cells only",
			html: `<table>
<tr><td rowspan="2"></td><td rowspan="2">Base</td><td colspan="2">Pro</td></tr>
<tr><td>A</td><td>B</td></tr>
<tr><td>Power</td><td>1</td><td>2</td><td>3</td></tr>
</table>`,
			want: goquery.Header{Shape: goquery.ShapeRowspanMix, Variants: []string{"Base", "Pro A", "Pro B"}, Skip: 2},
		},
		{
			name: "colspan groups with td cells only",
			html: `<table>
<tr><td>Parametr</td><td colspan="2">Wersja</td></tr>
<tr><td></td><td>A</td><td>B</td></tr>
<tr><td>Moc</td><td>1</td><td>2</td></tr>
</table>`,
			want: goquery.Header{Shape: goquery.ShapeColspanGroups, Variants: []string{"Wersja A", "Wersja B"}, Skip: 2},
		},
		{
			name: "colspan groups drop a label column whose second-row cell is empty",
			html: `<table>
<tr><th>Parametr</th><th colspan="2">Pro</th></tr>
<tr><td></td><th>A</th><th>B</th></tr>
</table>`,
			want: goquery.Header{Shape: goquery.ShapeColspanGroups, Variants: []string{"Pro A", "Pro B"}, Skip: 2},
		},
		{
			name: "full-width title row with td cells only",
			html: `<table>
<tr><td colspan="3">Engine</td></tr>
<tr><td></td><td>Model X</td><td>Model Y</td></tr>
<tr><td>Power</td><td>100 kW</td><td>120 kW</td></tr>
</table>`,
			want: goquery.Header{Shape: goquery.ShapeTitleRow, Variants: []string{"Model X", "Model Y"}, Skip: 2, Title: "Engine"},
		},
		{
			name: "no header shape",
			html: `<table>
<tr><td>Weight</td><td>5 kg</td></tr>
<tr><td>Height</td><td>1 m</td></tr>
</table>`,
			want: goquery.Header{Shape: goquery.ShapeNone},
		},
		{
			name: "three data cells without header flags",
			html: `<table><tr><td>Weight</td><td>5 kg</td><td>6 kg</td></tr></table>`,
			want: goquery.Header{Shape: goquery.ShapeNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := goquery.ClassifyHeader(goquery.ParseTable(tt.html))

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyHeader_Precedence(t *testing.T) {
	t.Parallel()

	// Both a standalone row-spanning variant and column groups are present,
	// so the colspan-only reading must not win.
	tbl := goquery.ParseTable(`<table>
<tr><th rowspan="2"></th><th rowspan="2">Base</th><th colspan="2">Pro</th><th colspan="2">Max</th></tr>
<tr><th>A</th><th>B</th><th>A</th><th>B</th></tr>
</table>`)

	got := goquery.ClassifyHeader(tbl)

	assert.Equal(t, goquery.ShapeRowspanMix, got.Shape)
	assert.Equal(t, []string{"Base", "Pro A", "Pro B", "Max A", "Max B"}, got.Variants)
	assert.Equal(t, 2, got.Skip)
}

func TestShape_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", goquery.ShapeNone.String())
	assert.Equal(t, "rowspan_mix", goquery.ShapeRowspanMix.String())
	assert.Equal(t, "colspan_groups", goquery.ShapeColspanGroups.String())
	assert.Equal(t, "title_row", goquery.ShapeTitleRow.String())
	assert.Equal(t, "direct", goquery.ShapeDirect.String())
}
