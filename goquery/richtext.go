package goquery

import (
	"strings"
	"unicode"

	"github.com/fwojciec/techdata"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// cellContext is the parse context for cell markup.
var cellContext = &html.Node{Type: html.ElementNode, Data: "td", DataAtom: atom.Td}

// span is a run of text under one mark set. Separator spans split blocks.
type span struct {
	text  string
	marks techdata.Marks
	sep   bool
}

// ConvertRichText converts the inner markup of one table cell into
// rich-text blocks. List items become bullet blocks; otherwise line breaks
// and nested paragraphs split the text into paragraph blocks. Empty or
// whitespace-only markup yields no blocks.
func ConvertRichText(markup string) []techdata.Block {
	nodes, err := html.ParseFragment(strings.NewReader(markup), cellContext)
	if err != nil {
		return nil
	}
	root := &html.Node{Type: html.ElementNode, Data: "td", DataAtom: atom.Td}
	for _, n := range nodes {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		root.AppendChild(n)
	}

	if items := findAll(root, "li"); len(items) > 0 {
		return listBlocks(root, items)
	}
	return paragraphs(mergeSpans(collectSpans(root, 0, true, false)))
}

func listBlocks(root *html.Node, items []*html.Node) []techdata.Block {
	var blocks []techdata.Block
	for _, li := range items {
		spans := trimSpans(mergeSpans(collectSpans(li, inheritedMarks(li, root), true, true)))
		if len(spans) == 0 {
			continue
		}
		blocks = append(blocks, techdata.Block{Spans: spans, ListItem: true})
	}
	return blocks
}

// collectSpans flattens the subtree of n into spans. outer is true for the
// element the walk started at; inList turns separators into plain spaces and
// leaves nested lists to their own items.
func collectSpans(n *html.Node, marks techdata.Marks, outer, inList bool) []span {
	switch kindOf(n) {
	case kindText:
		t := collapseSpaces(n.Data)
		if t == "" {
			return nil
		}
		return []span{{text: t, marks: marks}}
	case kindElement:
		tag := tagName(n)
		if skipped(tag) {
			return nil
		}
		if tag == "br" {
			return []span{separator(marks, inList)}
		}
		if inList && !outer && (tag == "ul" || tag == "ol") {
			return nil
		}
		marks |= marksOf(tag)

		var out []span
		breaks := !outer && (tag == "p" || tag == "div")
		if breaks {
			out = append(out, separator(marks, inList))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			out = append(out, collectSpans(c, marks, false, inList)...)
		}
		if breaks {
			out = append(out, separator(marks, inList))
		}
		return out
	default:
		return nil
	}
}

func separator(marks techdata.Marks, inList bool) span {
	if inList {
		return span{text: " ", marks: marks}
	}
	return span{text: "\n", sep: true}
}

func marksOf(tag string) techdata.Marks {
	switch tag {
	case "b", "strong":
		return techdata.Bold
	case "i", "em":
		return techdata.Italic
	}
	return 0
}

// inheritedMarks unions the marks of the ancestors of n below root.
func inheritedMarks(n, root *html.Node) techdata.Marks {
	var marks techdata.Marks
	for p := n.Parent; p != nil && p != root; p = p.Parent {
		marks |= marksOf(tagName(p))
	}
	return marks
}

// mergeSpans joins adjacent text spans that share a mark set.
func mergeSpans(spans []span) []span {
	var out []span
	for _, s := range spans {
		if n := len(out); n > 0 && !s.sep && !out[n-1].sep && out[n-1].marks == s.marks {
			out[n-1].text += s.text
			continue
		}
		out = append(out, s)
	}
	return out
}

// paragraphs splits spans at separators into paragraph blocks.
func paragraphs(spans []span) []techdata.Block {
	var blocks []techdata.Block
	start := 0
	for i := 0; i <= len(spans); i++ {
		if i < len(spans) && !spans[i].sep {
			continue
		}
		if trimmed := trimSpans(spans[start:i]); len(trimmed) > 0 {
			blocks = append(blocks, techdata.Block{Spans: trimmed})
		}
		start = i + 1
	}
	return blocks
}

// trimSpans trims leading whitespace from the first span and trailing
// whitespace from the last, dropping spans that end up empty.
func trimSpans(spans []span) []techdata.Span {
	out := make([]techdata.Span, 0, len(spans))
	for _, s := range spans {
		out = append(out, techdata.Span{Text: s.text, Marks: s.marks})
	}
	for len(out) > 0 {
		out[0].Text = strings.TrimLeftFunc(out[0].Text, unicode.IsSpace)
		if out[0].Text != "" {
			break
		}
		out = out[1:]
	}
	for len(out) > 0 {
		last := len(out) - 1
		out[last].Text = strings.TrimRightFunc(out[last].Text, unicode.IsSpace)
		if out[last].Text != "" {
			break
		}
		out = out[:last]
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
