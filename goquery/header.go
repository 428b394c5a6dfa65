package goquery

import (
	"strings"

	"github.com/fwojciec/techdata"
)

// Shape is the layout an author used to express variant columns.
type Shape int

// Shapes in classification precedence order.
const (
	ShapeNone Shape = iota
	// ShapeRowspanMix has standalone variants spanning two header rows next
	// to grouped variants spanning several columns.
	ShapeRowspanMix
	// ShapeColspanGroups has a row of group names over a row of variant names.
	ShapeColspanGroups
	// ShapeTitleRow has a full-width title row over a variant row.
	ShapeTitleRow
	// ShapeDirect has a single header row of variant names.
	ShapeDirect
)

func (s Shape) String() string {
	switch s {
	case ShapeRowspanMix:
		return "rowspan_mix"
	case ShapeColspanGroups:
		return "colspan_groups"
	case ShapeTitleRow:
		return "title_row"
	case ShapeDirect:
		return "direct"
	default:
		return "none"
	}
}

// Header is the classification of a table's leading rows.
type Header struct {
	Shape    Shape
	Variants []string

	// Skip is the number of leading rows consumed by the header.
	Skip int

	// Title is a group title found inside the header itself, if any.
	Title string
}

// ClassifyHeader inspects the first rows of t and returns the first shape
// that matches. Tables matching no shape have no variants and no header rows.
func ClassifyHeader(t Table) Header {
	switch {
	case isRowspanMix(t.Rows):
		return rowspanMixHeader(t.Rows)
	case isColspanGroups(t.Rows):
		return colspanGroupsHeader(t.Rows)
	case isTitleRow(t.Rows):
		return titleRowHeader(t.Rows)
	case isDirect(t.Rows):
		return directHeader(t.Rows)
	default:
		return Header{Shape: ShapeNone}
	}
}

// standalone reports whether c is a variant spanning both header rows.
func standalone(c Cell) bool {
	return c.RowSpan > 1 && meaningfulLen(c.Text) >= 2
}

func isRowspanMix(rows [][]Cell) bool {
	if len(rows) < 2 {
		return false
	}
	var single, grouped bool
	for _, c := range rows[0] {
		single = single || standalone(c)
		grouped = grouped || (c.ColSpan > 1 && techdata.IsMeaningful(c.Text))
	}
	return single && grouped
}

func rowspanMixHeader(rows [][]Cell) Header {
	var variants []string
	sub, next := rows[1], 0
	for _, c := range rows[0] {
		switch {
		case c.RowSpan > 1:
			if meaningfulLen(c.Text) >= 2 {
				variants = append(variants, c.Text)
			}
		case c.ColSpan > 1:
			for k := 0; k < c.ColSpan && next < len(sub); k++ {
				variants = append(variants, joinName(c.Text, sub[next].Text))
				next++
			}
		default:
			if meaningfulLen(c.Text) >= 2 {
				variants = append(variants, c.Text)
			}
		}
	}
	return Header{Shape: ShapeRowspanMix, Variants: variants, Skip: 2}
}

func isColspanGroups(rows [][]Cell) bool {
	if len(rows) < 2 || len(rows[0]) < 2 {
		return false
	}
	var grouped bool
	for _, c := range rows[0] {
		if standalone(c) {
			return false
		}
		grouped = grouped || (c.ColSpan > 1 && techdata.IsMeaningful(c.Text))
	}
	return grouped
}

func colspanGroupsHeader(rows [][]Cell) Header {
	var prefix []string
	var covered []bool
	for _, c := range rows[0] {
		for k := 0; k < c.ColSpan; k++ {
			prefix = append(prefix, c.Text)
			covered = append(covered, c.RowSpan > 1)
		}
	}

	// Columns held by first-row rowspan cells have no second-row cell.
	var raw []string
	fill := func() {
		for len(raw) < len(covered) && covered[len(raw)] {
			raw = append(raw, "")
		}
	}
	for _, c := range rows[1] {
		fill()
		for k := 0; k < c.ColSpan; k++ {
			raw = append(raw, c.Text)
		}
	}
	fill()

	names := make([]string, 0, len(raw))
	for i, r := range raw {
		name := r
		if i < len(prefix) && prefix[i] != "" && prefix[i] != r {
			name = joinName(prefix[i], r)
		}
		names = append(names, name)
	}
	// The label column is dropped when its name is too short or its
	// second-row cell is empty, even if the first-row label has text.
	if len(names) > 0 && (meaningfulLen(names[0]) < 2 || !techdata.IsMeaningful(raw[0])) {
		names = names[1:]
	}
	return Header{Shape: ShapeColspanGroups, Variants: names, Skip: 2}
}

func isTitleRow(rows [][]Cell) bool {
	if len(rows) < 2 || spanningTitle(rows[0]) == nil {
		return false
	}
	var candidates int
	for _, c := range rows[1] {
		if c.Header || techdata.IsMeaningful(c.Text) {
			candidates++
		}
	}
	return candidates >= 2
}

// spanningTitle returns the first cell spanning three or more columns.
func spanningTitle(row []Cell) *Cell {
	for i := range row {
		if row[i].ColSpan >= 3 {
			return &row[i]
		}
	}
	return nil
}

func titleRowHeader(rows [][]Cell) Header {
	cells := rows[1]
	if meaningfulLen(cells[0].Text) < 3 {
		cells = cells[1:]
	}
	var variants []string
	for _, c := range cells {
		if c.Header || techdata.IsMeaningful(c.Text) {
			variants = append(variants, c.Text)
		}
	}
	h := Header{Shape: ShapeTitleRow, Variants: variants, Skip: 2}
	if title := spanningTitle(rows[0]); techdata.IsMeaningful(title.Text) {
		h.Title = title.Text
	}
	return h
}

func isDirect(rows [][]Cell) bool {
	if len(rows) < 1 || len(rows[0]) < 3 {
		return false
	}
	for _, c := range rows[0][1:] {
		if c.Header {
			return true
		}
	}
	return false
}

func directHeader(rows [][]Cell) Header {
	first := rows[0][0]
	h := Header{Shape: ShapeDirect, Skip: 1}
	for _, c := range rows[0][1:] {
		h.Variants = append(h.Variants, c.Text)
	}
	if !first.Header && meaningfulLen(first.Text) >= 2 {
		h.Title = first.Text
	}
	return h
}

func joinName(group, sub string) string {
	return strings.TrimSpace(group + " " + sub)
}
