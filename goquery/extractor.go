package goquery

import (
	"fmt"
	"strings"

	"github.com/fwojciec/techdata"
	"github.com/google/uuid"
	"golang.org/x/net/html"
)

// Ensure Extractor implements techdata.Extractor at compile time.
var _ techdata.Extractor = (*Extractor)(nil)

// Extractor assembles TechnicalData from the tables found in each fragment.
// An Extractor holds no state between calls and is safe for concurrent use
// as long as NewKey and Events are.
type Extractor struct {
	// NewKey generates CellValue keys. Defaults to random UUIDs.
	NewKey func() string

	// Events, if set, receives every extraction event.
	Events techdata.EventFunc
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{NewKey: uuid.NewString}
}

// Extract processes fragments in Order and merges their groups. Variants
// come from the table with the most columns; on ties the first one wins.
// Every row is then fitted to that width.
func (e *Extractor) Extract(fragments []techdata.Fragment) *techdata.TechnicalData {
	a := &assembly{newKey: e.NewKey, events: e.Events}
	if a.newKey == nil {
		a.newKey = uuid.NewString
	}

	for i, f := range techdata.SortFragments(fragments) {
		a.fragment = i
		first := len(a.groups)
		a.extractFragment(f.Markup)
		if title := strings.TrimSpace(f.Title); title != "" && len(a.groups) > first && a.groups[first].Title == "" {
			a.groups[first].Title = title
		}
	}

	data := &techdata.TechnicalData{Groups: a.groups}
	if data.Groups == nil {
		data.Groups = []techdata.Group{}
	}
	if len(a.best) > 0 {
		data.Variants = a.best
		for gi := range data.Groups {
			rows := data.Groups[gi].Rows
			for ri := range rows {
				rows[ri].Values = techdata.FitValues(rows[ri].Values, len(a.best), a.newKey)
			}
		}
	}
	return data
}

// assembly is the state of one Extract call.
type assembly struct {
	newKey func() string
	events techdata.EventFunc

	groups []techdata.Group
	best   []string

	fragment int
	table    int
}

func (a *assembly) emit(typ techdata.EventType, detail string) {
	if a.events == nil {
		return
	}
	table := -1
	if typ != techdata.EventFragmentEmpty && typ != techdata.EventFragmentRecovered {
		table = a.table
	}
	a.events(techdata.Event{Type: typ, Fragment: a.fragment, Table: table, Detail: detail})
}

// extractFragment walks one fragment. A fragment that aborts part way
// contributes nothing.
func (a *assembly) extractFragment(markup string) {
	groups, best := len(a.groups), a.best
	defer func() {
		if r := recover(); r != nil {
			a.groups, a.best = a.groups[:groups], best
			a.emit(techdata.EventFragmentRecovered, fmt.Sprint(r))
		}
	}()

	a.table = 0
	nodes := parseFragment(markup)
	if len(nodes) == 0 {
		a.emit(techdata.EventFragmentEmpty, "no markup")
		return
	}
	a.walk(nodes, "")
}

// walk processes nodes in order and returns the pending group title left
// for whatever follows them.
func (a *assembly) walk(nodes []*html.Node, pending string) string {
	for _, n := range nodes {
		if kindOf(n) != kindElement {
			continue
		}
		tag := tagName(n)
		switch {
		case isMedia(n):
			a.emit(techdata.EventMediaSkipped, tag)
		case titleTag(tag):
			pending = a.titled(n, pending)
		case tag == "table":
			a.addTable(n, pending)
			pending = ""
		default:
			pending = a.walk(children(n), pending)
		}
	}
	return pending
}

// titled handles a heading or paragraph. Its text becomes the pending title
// unless a nested table is its only content, in which case the table is
// processed under the current pending title.
func (a *assembly) titled(n *html.Node, pending string) string {
	if !techdata.IsMeaningful(textOf(n)) {
		return pending
	}
	tables := outermostTables(n)
	outside := textWithout(n, "table")
	if techdata.IsMeaningful(outside) {
		pending = strings.TrimSpace(strings.TrimSuffix(outside, ":"))
	}
	if len(tables) == 0 {
		return pending
	}
	for _, t := range tables {
		a.addTable(t, pending)
		pending = ""
	}
	return ""
}

func (a *assembly) addTable(n *html.Node, pending string) {
	defer func() { a.table++ }()

	t := parseTable(n)
	h := ClassifyHeader(t)
	a.emit(techdata.EventTableParsed, fmt.Sprintf("shape=%s rows=%d variants=%d", h.Shape, len(t.Rows), len(h.Variants)))

	rows := ProjectRows(t, h, a.newKey, func(reason string) {
		a.emit(techdata.EventRowDropped, reason)
	})

	title := pending
	if title == "" {
		title = h.Title
	}
	if len(rows) > 0 {
		a.groups = append(a.groups, techdata.Group{Title: title, Rows: rows})
	} else {
		a.emit(techdata.EventGroupDropped, fmt.Sprintf("table %q has no rows", title))
	}

	if len(h.Variants) > len(a.best) {
		a.best = h.Variants
	}
}

func titleTag(tag string) bool {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6", "p":
		return true
	}
	return false
}

// isMedia reports whether n is or holds an embedded frame or video.
func isMedia(n *html.Node) bool {
	switch tagName(n) {
	case "iframe", "video":
		return true
	}
	return contains(n, "iframe, video")
}

// outermostTables returns the tables below n that are not inside another
// table.
func outermostTables(n *html.Node) []*html.Node {
	var out []*html.Node
	for _, t := range findAll(n, "table") {
		nested := false
		for p := t.Parent; p != nil && p != n; p = p.Parent {
			if tagName(p) == "table" {
				nested = true
				break
			}
		}
		if !nested {
			out = append(out, t)
		}
	}
	return out
}
