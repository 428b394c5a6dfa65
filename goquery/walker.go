// Package goquery extracts technical data from specification markup using
// goquery and golang.org/x/net/html.
package goquery

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// nodeKind is the closed set of node shapes the extractor distinguishes.
type nodeKind int

const (
	kindOther nodeKind = iota
	kindElement
	kindText
)

func kindOf(n *html.Node) nodeKind {
	switch n.Type {
	case html.ElementNode:
		return kindElement
	case html.TextNode:
		return kindText
	default:
		return kindOther
	}
}

// parseFragment parses markup and returns the top-level nodes of its body.
// Unparsable markup yields no nodes.
func parseFragment(markup string) []*html.Node {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}
	body := doc.Find("body")
	if body.Length() == 0 {
		return nil
	}
	return children(body.Get(0))
}

// children returns the direct children of n in document order.
func children(n *html.Node) []*html.Node {
	var nodes []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		nodes = append(nodes, c)
	}
	return nodes
}

// tagName returns the lowercase tag name of an element, or "" for other nodes.
func tagName(n *html.Node) string {
	if kindOf(n) != kindElement {
		return ""
	}
	return strings.ToLower(n.Data)
}

// attrInt reads a positive integer attribute, falling back to def when the
// attribute is absent, non-numeric or below one.
func attrInt(n *html.Node, key string, def int) int {
	for _, a := range n.Attr {
		if !strings.EqualFold(a.Key, key) {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(a.Val))
		if err != nil || v < 1 {
			return def
		}
		return v
	}
	return def
}

// innerMarkup serializes the children of n.
func innerMarkup(n *html.Node) string {
	s, err := goquery.NewDocumentFromNode(n).Html()
	if err != nil {
		return ""
	}
	return s
}

// findAll returns the descendants of n matching selector, in document order.
func findAll(n *html.Node, selector string) []*html.Node {
	return goquery.NewDocumentFromNode(n).Find(selector).Nodes
}

// contains reports whether n has a descendant matching selector.
func contains(n *html.Node, selector string) bool {
	return len(findAll(n, selector)) > 0
}

// skipped reports whether the subtree of an element never carries content.
func skipped(tag string) bool {
	switch tag {
	case "script", "style", "noscript", "template", "iframe", "object", "embed", "video", "audio":
		return true
	}
	return false
}

// blockTag reports whether an element starts a new line of text.
func blockTag(tag string) bool {
	switch tag {
	case "p", "div", "li", "tr", "td", "th", "br", "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// textOf returns the normalized visible text of n. Block boundaries become
// single spaces.
func textOf(n *html.Node) string {
	return textWithout(n, "")
}

// textWithout is textOf ignoring every subtree rooted at an exclude element.
func textWithout(n *html.Node, exclude string) string {
	var sb strings.Builder
	writeText(n, exclude, &sb)
	return strings.Join(strings.Fields(normalizeSpaces(sb.String())), " ")
}

func writeText(n *html.Node, exclude string, sb *strings.Builder) {
	switch kindOf(n) {
	case kindText:
		sb.WriteString(n.Data)
	case kindElement:
		tag := tagName(n)
		if skipped(tag) || (exclude != "" && tag == exclude) {
			return
		}
		if blockTag(tag) {
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeText(c, exclude, sb)
		}
		if blockTag(tag) {
			sb.WriteByte(' ')
		}
	case kindOther:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeText(c, exclude, sb)
		}
	}
}

// normalizeSpaces maps non-breaking and other exotic spaces to ' '.
func normalizeSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\u00a0', '\u2007', '\u202f', '\u2009', '\u200a':
			return ' '
		case '\u200b', '\ufeff':
			return -1
		}
		return r
	}, s)
}

// collapseSpaces replaces every run of whitespace with one space, keeping a
// single leading or trailing space when present.
func collapseSpaces(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	space := false
	for _, r := range normalizeSpaces(s) {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space {
			sb.WriteByte(' ')
			space = false
		}
		sb.WriteRune(r)
	}
	if space {
		sb.WriteByte(' ')
	}
	return sb.String()
}

// meaningfulLen counts the runes of s once surrounding whitespace and dashes
// are removed.
func meaningfulLen(s string) int {
	return len([]rune(strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.Is(unicode.Pd, r)
	})))
}
