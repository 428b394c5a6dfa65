package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Cell is one td or th of a parsed table.
type Cell struct {
	Text    string
	Markup  string
	ColSpan int
	RowSpan int

	// Header is set for th cells and cells holding bold content.
	Header bool
}

// Table is the row/cell matrix of one table element. Rows without cells
// are not included.
type Table struct {
	Rows [][]Cell
}

// ParseTable parses markup and returns the matrix of its first table.
// Markup without a table yields an empty Table.
func ParseTable(markup string) Table {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return Table{}
	}
	tables := doc.Find("table")
	if tables.Length() == 0 {
		return Table{}
	}
	return parseTable(tables.Get(0))
}

func parseTable(table *html.Node) Table {
	var t Table
	for _, tr := range tableRows(table) {
		var row []Cell
		for _, c := range children(tr) {
			tag := tagName(c)
			if tag != "td" && tag != "th" {
				continue
			}
			row = append(row, Cell{
				Text:    textOf(c),
				Markup:  innerMarkup(c),
				ColSpan: attrInt(c, "colspan", 1),
				RowSpan: attrInt(c, "rowspan", 1),
				Header:  tag == "th" || contains(c, "b, strong"),
			})
		}
		if len(row) > 0 {
			t.Rows = append(t.Rows, row)
		}
	}
	return t
}

// tableRows returns the tr elements of table, looking through thead, tbody
// and tfoot but not into nested tables.
func tableRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	for _, c := range children(table) {
		switch tagName(c) {
		case "tr":
			rows = append(rows, c)
		case "thead", "tbody", "tfoot":
			for _, tr := range children(c) {
				if tagName(tr) == "tr" {
					rows = append(rows, tr)
				}
			}
		}
	}
	return rows
}
