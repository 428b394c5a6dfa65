// Package etree reads and writes technical data as XML using beevik/etree.
package etree

import (
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/techdata"
)

// Ensure Renderer implements techdata.Renderer at compile time.
var _ techdata.Renderer = (*Renderer)(nil)

// Element and attribute names of the XML document.
const (
	rootTag    = "technicalData"
	variantsEl = "variants"
	variantEl  = "variant"
	groupEl    = "group"
	rowEl      = "row"
	valueEl    = "value"
	blockEl    = "block"
	spanEl     = "span"
	titleAttr  = "title"
	keyAttr    = "key"
	listAttr   = "list"
	marksAttr  = "marks"
)

// Renderer renders technical data as an indented XML document.
type Renderer struct {
	// Indent is the number of spaces per nesting level. Zero disables indentation.
	Indent int
}

// NewRenderer creates a Renderer indenting by two spaces.
func NewRenderer() *Renderer {
	return &Renderer{Indent: 2}
}

// Render converts data to XML.
func (r *Renderer) Render(data *techdata.TechnicalData) (string, error) {
	if data == nil {
		return "", techdata.Errorf(techdata.EINVALID, "nil technical data")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(rootTag)

	if len(data.Variants) > 0 {
		variants := root.CreateElement(variantsEl)
		for _, v := range data.Variants {
			variants.CreateElement(variantEl).SetText(v)
		}
	}

	for _, g := range data.Groups {
		group := root.CreateElement(groupEl)
		if g.Title != "" {
			group.CreateAttr(titleAttr, g.Title)
		}
		for _, row := range g.Rows {
			rowElem := group.CreateElement(rowEl)
			rowElem.CreateAttr(titleAttr, row.Title)
			for _, v := range row.Values {
				writeValue(rowElem.CreateElement(valueEl), v)
			}
		}
	}

	if r.Indent > 0 {
		doc.Indent(r.Indent)
	}

	return doc.WriteToString()
}

func writeValue(el *etree.Element, v techdata.CellValue) {
	el.CreateAttr(keyAttr, v.Key)
	for _, b := range v.Content {
		block := el.CreateElement(blockEl)
		if b.ListItem {
			block.CreateAttr(listAttr, "true")
		}
		for _, s := range b.Spans {
			span := block.CreateElement(spanEl)
			if names := s.Marks.Names(); len(names) > 0 {
				span.CreateAttr(marksAttr, strings.Join(names, " "))
			}
			span.SetText(s.Text)
		}
	}
}

// Parse reads technical data from an XML document written by Renderer.
func Parse(r io.Reader) (*techdata.TechnicalData, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, techdata.Errorf(techdata.EINVALID, "parsing technical data XML: %v", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != rootTag {
		return nil, techdata.Errorf(techdata.EINVALID, "missing %s root element", rootTag)
	}

	data := &techdata.TechnicalData{Groups: []techdata.Group{}}

	if variants := root.SelectElement(variantsEl); variants != nil {
		for _, v := range variants.SelectElements(variantEl) {
			data.Variants = append(data.Variants, v.Text())
		}
	}

	for _, groupElem := range root.SelectElements(groupEl) {
		group := techdata.Group{
			Title: groupElem.SelectAttrValue(titleAttr, ""),
			Rows:  []techdata.Row{},
		}
		for _, rowElem := range groupElem.SelectElements(rowEl) {
			row := techdata.Row{Title: rowElem.SelectAttrValue(titleAttr, "")}
			for _, valueElem := range rowElem.SelectElements(valueEl) {
				row.Values = append(row.Values, readValue(valueElem))
			}
			group.Rows = append(group.Rows, row)
		}
		data.Groups = append(data.Groups, group)
	}

	return data, nil
}

func readValue(el *etree.Element) techdata.CellValue {
	v := techdata.CellValue{Key: el.SelectAttrValue(keyAttr, "")}
	for _, blockElem := range el.SelectElements(blockEl) {
		block := techdata.Block{ListItem: blockElem.SelectAttrValue(listAttr, "") == "true"}
		for _, spanElem := range blockElem.SelectElements(spanEl) {
			block.Spans = append(block.Spans, techdata.Span{
				Text:  spanElem.Text(),
				Marks: techdata.ParseMarks(strings.Fields(spanElem.SelectAttrValue(marksAttr, ""))),
			})
		}
		v.Content = append(v.Content, block)
	}
	return v
}
