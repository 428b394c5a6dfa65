package goquery_test

import (
	"testing"

	"github.com/fwojciec/techdata"
	"github.com/fwojciec/techdata/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements techdata.Extractor at compile time.
var _ techdata.Extractor = (*goquery.Extractor)(nil)

func newTestExtractor() *goquery.Extractor {
	e := goquery.NewExtractor()
	e.NewKey = sequentialKeys()
	return e
}

func extract(markup ...string) *techdata.TechnicalData {
	fragments := make([]techdata.Fragment, len(markup))
	for i, m := range markup {
		fragments[i] = techdata.Fragment{Markup: m, Order: i}
	}
	return newTestExtractor().Extract(fragments)
}

func groupTitles(data *techdata.TechnicalData) []string {
	titles := make([]string, 0, len(data.Groups))
	for _, g := range data.Groups {
		titles = append(titles, g.Title)
	}
	return titles
}

const ampTable = `<table>
<tr><th></th><th>Power Amp A</th><th>Power Amp B</th></tr>
<tr><td>Impedance</td><td>4Ω</td><td>8Ω</td></tr>
</table>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts variants and rows from a direct header table", func(t *testing.T) {
		t.Parallel()

		data := extract(ampTable)

		assert.Equal(t, []string{"Power Amp A", "Power Amp B"}, data.Variants)
		require.Len(t, data.Groups, 1)
		require.Len(t, data.Groups[0].Rows, 1)
		row := data.Groups[0].Rows[0]
		assert.Equal(t, "Impedance", row.Title)
		require.Len(t, row.Values, 2)
		assert.Equal(t, "4Ω", row.Values[0].Text())
		assert.Equal(t, "8Ω", row.Values[1].Text())
		assert.NoError(t, data.Validate())
	})

	t.Run("extracts variants from a two-row header", func(t *testing.T) {
		t.Parallel()

		data := extract(`<table>
<tr><th rowspan="2"></th><th rowspan="2">Base</th><th colspan="2">Pro</th></tr>
<tr><th>A</th><th>B</th></tr>
<tr><td>Power</td><td>1 W</td><td>2 W</td><td>3 W</td></tr>
</table>`)

		assert.Equal(t, []string{"Base", "Pro A", "Pro B"}, data.Variants)
		require.Len(t, data.Groups, 1)
		assert.Len(t, data.Groups[0].Rows[0].Values, 3)
	})

	t.Run("skips a grouped header written with td cells", func(t *testing.T) {
		t.Parallel()

		data := extract(`<table>
<tr><td>Parametr</td><td colspan="2">Wersja</td></tr>
<tr><td></td><td>A</td><td>B</td></tr>
<tr><td>Moc</td><td>1</td><td>2</td></tr>
</table>`)

		assert.Equal(t, []string{"Wersja A", "Wersja B"}, data.Variants)
		require.Len(t, data.Groups, 1)
		rows := data.Groups[0].Rows
		require.Len(t, rows, 1)
		assert.Equal(t, "Moc", rows[0].Title)
		require.Len(t, rows[0].Values, 2)
		assert.Equal(t, "1", rows[0].Values[0].Text())
		assert.Equal(t, "2", rows[0].Values[1].Text())
	})

	t.Run("titles a group with the preceding heading", func(t *testing.T) {
		t.Parallel()

		data := extract(`<h2>Specyfikacja</h2><table><tr><td>Waga</td><td>5 kg</td></tr></table>`)

		assert.Equal(t, []string{"Specyfikacja"}, groupTitles(data))
		assert.Nil(t, data.Variants)
	})

	t.Run("strips a trailing colon from paragraph titles", func(t *testing.T) {
		t.Parallel()

		data := extract(`<p><strong>Dane techniczne:</strong></p><table><tr><td>Waga</td><td>5 kg</td></tr></table>`)

		assert.Equal(t, []string{"Dane techniczne"}, groupTitles(data))
	})

	t.Run("uses the latest title and clears it after a table", func(t *testing.T) {
		t.Parallel()

		data := extract(`<p>One</p><p>Two</p>
<table><tr><td>A</td><td>1</td></tr></table>
<table><tr><td>B</td><td>2</td></tr></table>`)

		assert.Equal(t, []string{"Two", ""}, groupTitles(data))
	})

	t.Run("prefers an external title over the header label cell", func(t *testing.T) {
		t.Parallel()

		table := `<table>
<tr><td>Audio</td><th>A</th><th>B</th></tr>
<tr><td>Power</td><td>1</td><td>2</td></tr>
</table>`

		assert.Equal(t, []string{"Spec"}, groupTitles(extract(`<h3>Spec</h3>`+table)))
		assert.Equal(t, []string{"Audio"}, groupTitles(extract(table)))
	})

	t.Run("omits tables without rows", func(t *testing.T) {
		t.Parallel()

		data := extract(`<h2>Notes</h2><table><tr><td>Note</td></tr></table>`)

		assert.Empty(t, data.Groups)
		assert.NotNil(t, data.Groups)
	})

	t.Run("skips embedded media", func(t *testing.T) {
		t.Parallel()

		var stats techdata.Stats
		e := newTestExtractor()
		e.Events = stats.Observe

		data := e.Extract([]techdata.Fragment{{Markup: `<p>Demo</p>
<div><iframe src="https://example.com/embed"></iframe><table><tr><td>Hidden</td><td>1</td></tr></table></div>
<video src="demo.mp4"></video>
<table><tr><td>Shown</td><td>2</td></tr></table>`}})

		require.Len(t, data.Groups, 1)
		assert.Equal(t, "Shown", data.Groups[0].Rows[0].Title)
		assert.Equal(t, "Demo", data.Groups[0].Title)
		assert.Equal(t, 2, stats.SkippedMedia)
	})

	t.Run("finds tables inside containers", func(t *testing.T) {
		t.Parallel()

		data := extract(`<section><div class="tab">
<h3>Audio</h3>
<table><tr><td>Power</td><td>10 W</td></tr></table>
</div></section>`)

		assert.Equal(t, []string{"Audio"}, groupTitles(data))
	})

	t.Run("processes a table nested in a heading under the pending title", func(t *testing.T) {
		t.Parallel()

		data := extract(`<h2>Main</h2><h3><table><tr><td>Power</td><td>10 W</td></tr></table></h3>`)

		require.Len(t, data.Groups, 1)
		assert.Equal(t, "Main", data.Groups[0].Title)
		assert.Equal(t, "Power", data.Groups[0].Rows[0].Title)
	})

	t.Run("returns an empty result for empty input", func(t *testing.T) {
		t.Parallel()

		var stats techdata.Stats
		e := newTestExtractor()
		e.Events = stats.Observe

		data := e.Extract([]techdata.Fragment{{Markup: ""}, {Markup: "   "}})

		require.NotNil(t, data)
		assert.Empty(t, data.Groups)
		assert.Nil(t, data.Variants)
		assert.Equal(t, 2, stats.EmptyFragments)

		assert.NotNil(t, newTestExtractor().Extract(nil))
	})

	t.Run("reports parsed tables and dropped rows", func(t *testing.T) {
		t.Parallel()

		var events []techdata.Event
		e := newTestExtractor()
		e.Events = func(ev techdata.Event) { events = append(events, ev) }

		e.Extract([]techdata.Fragment{{Markup: `<table><tr><td>-</td><td>1</td></tr></table>`}})

		require.Len(t, events, 3)
		assert.Equal(t, techdata.EventTableParsed, events[0].Type)
		assert.Equal(t, 0, events[0].Table)
		assert.Equal(t, techdata.EventRowDropped, events[1].Type)
		assert.Equal(t, techdata.EventGroupDropped, events[2].Type)
	})
}

func TestExtractor_Extract_Fragments(t *testing.T) {
	t.Parallel()

	t.Run("assigns the fragment title to its first untitled group", func(t *testing.T) {
		t.Parallel()

		table := `<table><tr><td>Power</td><td>10 W</td></tr></table>`

		data := newTestExtractor().Extract([]techdata.Fragment{
			{Markup: table + table, Title: "Audio", Order: 1},
			{Markup: `<h2>Own</h2>` + table, Title: "Ignored", Order: 2},
		})

		assert.Equal(t, []string{"Audio", "", "Own"}, groupTitles(data))
	})

	t.Run("processes fragments by order", func(t *testing.T) {
		t.Parallel()

		data := newTestExtractor().Extract([]techdata.Fragment{
			{Markup: `<table><tr><td>Second</td><td>2</td></tr></table>`, Order: 2},
			{Markup: `<table><tr><td>First</td><td>1</td></tr></table>`, Order: 1},
		})

		require.Len(t, data.Groups, 2)
		assert.Equal(t, "First", data.Groups[0].Rows[0].Title)
		assert.Equal(t, "Second", data.Groups[1].Rows[0].Title)
	})

	t.Run("does not carry a pending title across fragments", func(t *testing.T) {
		t.Parallel()

		data := extract(`<h2>Dangling</h2>`, `<table><tr><td>Power</td><td>10 W</td></tr></table>`)

		assert.Equal(t, []string{""}, groupTitles(data))
	})

	t.Run("uses the widest variant set and pads every row to it", func(t *testing.T) {
		t.Parallel()

		data := extract(
			`<table><tr><td>Weight</td><td>5 kg</td></tr></table>`,
			ampTable,
			`<table>
<tr><th></th><th>X</th><th>Y</th></tr>
<tr><td>Height</td><td>1 m</td><td>2 m</td></tr>
</table>`,
		)

		assert.Equal(t, []string{"Power Amp A", "Power Amp B"}, data.Variants)
		require.Len(t, data.Groups, 3)
		weight := data.Groups[0].Rows[0]
		require.Len(t, weight.Values, 2)
		assert.Equal(t, "5 kg", weight.Values[0].Text())
		assert.Equal(t, techdata.Placeholder(), weight.Values[1].Content)
		assert.NoError(t, data.Validate())
	})

	t.Run("is idempotent apart from keys", func(t *testing.T) {
		t.Parallel()

		fragments := []techdata.Fragment{
			{Markup: `<h2>Audio</h2>` + ampTable, Title: "Tab", Order: 1},
			{Markup: `<table><tr><td>Weight</td><td><ul><li>5 kg</li><li><b>net</b></li></ul></td></tr></table>`, Order: 2},
		}
		e := goquery.NewExtractor()

		first := e.Extract(fragments)
		second := e.Extract(fragments)

		assert.Equal(t, withoutKeys(first), withoutKeys(second))
		assert.NotEqual(t, first.Groups[0].Rows[0].Values[0].Key, second.Groups[0].Rows[0].Values[0].Key)
	})
}

func withoutKeys(data *techdata.TechnicalData) *techdata.TechnicalData {
	out := &techdata.TechnicalData{Variants: data.Variants}
	for _, g := range data.Groups {
		group := techdata.Group{Title: g.Title}
		for _, r := range g.Rows {
			row := techdata.Row{Title: r.Title}
			for _, v := range r.Values {
				row.Values = append(row.Values, techdata.CellValue{Content: v.Content})
			}
			group.Rows = append(group.Rows, row)
		}
		out.Groups = append(out.Groups, group)
	}
	return out
}
