package goquery

import (
	"fmt"

	"github.com/fwojciec/techdata"
)

// ProjectRows maps the data rows of t onto one value per variant of h.
// A value cell spanning several columns fills each of them with the same
// content. Missing values are padded with the placeholder. drop, if not nil,
// is called with the reason for every row that yields no data row.
func ProjectRows(t Table, h Header, newKey func() string, drop func(reason string)) []techdata.Row {
	width := max(1, len(h.Variants))
	var rows []techdata.Row
	for i := h.Skip; i < len(t.Rows); i++ {
		cells := t.Rows[i]
		title := cells[0].Text
		if !techdata.IsMeaningful(title) {
			if drop != nil {
				drop(fmt.Sprintf("row %d: no title", i))
			}
			continue
		}
		if len(cells) == 1 {
			if drop != nil {
				drop(fmt.Sprintf("row %d: %q has no values", i, title))
			}
			continue
		}

		values := make([]techdata.CellValue, 0, width)
		for _, c := range cells[1:] {
			if len(values) == width {
				break
			}
			content := ConvertRichText(c.Markup)
			if len(content) == 0 {
				content = techdata.Placeholder()
			}
			for k := 0; k < c.ColSpan && len(values) < width; k++ {
				values = append(values, techdata.CellValue{Key: newKey(), Content: cloneBlocks(content)})
			}
		}
		rows = append(rows, techdata.Row{
			Title:  title,
			Values: techdata.FitValues(values, width, newKey),
		})
	}
	return rows
}

func cloneBlocks(blocks []techdata.Block) []techdata.Block {
	out := make([]techdata.Block, len(blocks))
	for i, b := range blocks {
		out[i] = techdata.Block{
			Spans:    append([]techdata.Span(nil), b.Spans...),
			ListItem: b.ListItem,
		}
	}
	return out
}
