// Package htmltomarkdown renders technical data as Markdown using html-to-markdown.
package htmltomarkdown

import (
	"html"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/techdata"
)

// Ensure Renderer implements techdata.Renderer at compile time.
var _ techdata.Renderer = (*Renderer)(nil)

// Column labels of the rendered tables.
const (
	ParameterLabel = "Parameter"
	ValueLabel     = "Value"
)

// Renderer renders technical data as Markdown tables, one per group.
// Data is first laid out as HTML and then converted.
type Renderer struct {
	conv *converter.Converter
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Renderer{conv: conv}
}

// Render converts data to Markdown. Data without groups renders as an empty string.
func (r *Renderer) Render(data *techdata.TechnicalData) (string, error) {
	if data == nil {
		return "", techdata.Errorf(techdata.EINVALID, "nil technical data")
	}
	if len(data.Groups) == 0 {
		return "", nil
	}

	result, err := r.conv.ConvertString(HTML(data))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}

// HTML lays data out as HTML: a heading for each titled group followed by
// a table with one column per variant.
func HTML(data *techdata.TechnicalData) string {
	var b strings.Builder

	header := []string{ValueLabel}
	if len(data.Variants) > 0 {
		header = data.Variants
	}

	for _, g := range data.Groups {
		if g.Title != "" {
			b.WriteString("<h3>")
			b.WriteString(html.EscapeString(g.Title))
			b.WriteString("</h3>")
		}

		b.WriteString("<table><thead><tr><th>")
		b.WriteString(ParameterLabel)
		b.WriteString("</th>")
		for _, h := range header {
			b.WriteString("<th>")
			b.WriteString(html.EscapeString(h))
			b.WriteString("</th>")
		}
		b.WriteString("</tr></thead><tbody>")

		for _, row := range g.Rows {
			b.WriteString("<tr><td>")
			b.WriteString(html.EscapeString(row.Title))
			b.WriteString("</td>")
			for _, v := range row.Values {
				b.WriteString("<td>")
				writeBlocks(&b, v.Content)
				b.WriteString("</td>")
			}
			b.WriteString("</tr>")
		}

		b.WriteString("</tbody></table>")
	}

	return b.String()
}

func writeBlocks(b *strings.Builder, blocks []techdata.Block) {
	for i, block := range blocks {
		if i > 0 {
			b.WriteString("<br>")
		}
		if block.ListItem {
			b.WriteString("• ")
		}
		for _, s := range block.Spans {
			writeSpan(b, s)
		}
	}
}

func writeSpan(b *strings.Builder, s techdata.Span) {
	text := html.EscapeString(s.Text)
	if s.Marks.Has(techdata.Italic) {
		text = "<em>" + text + "</em>"
	}
	if s.Marks.Has(techdata.Bold) {
		text = "<strong>" + text + "</strong>"
	}
	b.WriteString(text)
}
