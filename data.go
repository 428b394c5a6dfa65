package techdata

import (
	"encoding/json"
	"strings"
	"unicode"
)

// Marks is the set of formatting attributes attached to a span.
type Marks uint8

// Marks constants.
const (
	Bold Marks = 1 << iota
	Italic
)

// Has reports whether every mark in o is set on m.
func (m Marks) Has(o Marks) bool {
	return m&o == o
}

// Names returns the mark names in a stable order.
func (m Marks) Names() []string {
	var names []string
	if m.Has(Bold) {
		names = append(names, "bold")
	}
	if m.Has(Italic) {
		names = append(names, "italic")
	}
	return names
}

// MarshalJSON encodes marks as a list of names.
func (m Marks) MarshalJSON() ([]byte, error) {
	names := m.Names()
	if names == nil {
		names = []string{}
	}
	return json.Marshal(names)
}

// UnmarshalJSON decodes a list of mark names. Unknown names are ignored.
func (m *Marks) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*m = ParseMarks(names)
	return nil
}

// ParseMarks returns the marks named by names. Unknown names are ignored.
func ParseMarks(names []string) Marks {
	var m Marks
	for _, name := range names {
		switch name {
		case "bold":
			m |= Bold
		case "italic":
			m |= Italic
		}
	}
	return m
}

// Span is a run of text sharing one set of marks.
type Span struct {
	Text  string `json:"text"`
	Marks Marks  `json:"marks,omitempty"`
}

// Block is a paragraph or a bullet-list item made of spans.
type Block struct {
	Spans    []Span `json:"spans"`
	ListItem bool   `json:"listItem,omitempty"`
}

// Text returns the concatenated span text of the block.
func (b Block) Text() string {
	var sb strings.Builder
	for _, s := range b.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// CellValue is the rich-text value a row supplies for one variant.
type CellValue struct {
	// Key is an opaque identifier used by editors to address the value.
	Key     string  `json:"key"`
	Content []Block `json:"content"`
}

// Text returns the plain text of the value, one line per block.
func (v CellValue) Text() string {
	lines := make([]string, 0, len(v.Content))
	for _, b := range v.Content {
		lines = append(lines, b.Text())
	}
	return strings.Join(lines, "\n")
}

// Row is a named parameter with one value per variant.
type Row struct {
	Title  string      `json:"title"`
	Values []CellValue `json:"values"`
}

// Group is a titled or untitled section of rows, one per source table.
type Group struct {
	Title string `json:"title,omitempty"`
	Rows  []Row  `json:"rows"`
}

// TechnicalData is the normalized result of extracting every tab of a
// catalog item.
type TechnicalData struct {
	Variants []string `json:"variants,omitempty"`
	Groups   []Group  `json:"groups"`
}

// Width returns the number of values every row must carry.
func (d *TechnicalData) Width() int {
	return max(1, len(d.Variants))
}

// RowCount returns the number of rows across all groups.
func (d *TechnicalData) RowCount() int {
	var n int
	for _, g := range d.Groups {
		n += len(g.Rows)
	}
	return n
}

// Validate returns an error if any group or row breaks the shape invariants.
func (d *TechnicalData) Validate() error {
	width := d.Width()
	for i, g := range d.Groups {
		if len(g.Rows) == 0 {
			return Errorf(EINVALID, "group %d has no rows", i)
		}
		for j, r := range g.Rows {
			if !IsMeaningful(r.Title) {
				return Errorf(EINVALID, "group %d row %d has no title", i, j)
			}
			if len(r.Values) != width {
				return Errorf(EINVALID, "group %d row %q has %d values, want %d", i, r.Title, len(r.Values), width)
			}
		}
	}
	return nil
}

// PlaceholderText is the text of the block used for missing values.
const PlaceholderText = "-"

// Placeholder returns the content substituted for a missing or empty value.
func Placeholder() []Block {
	return []Block{{Spans: []Span{{Text: PlaceholderText}}}}
}

// FitValues pads values with placeholders or truncates them to width.
// Placeholder keys come from key.
func FitValues(values []CellValue, width int, key func() string) []CellValue {
	if len(values) > width {
		return values[:width]
	}
	for len(values) < width {
		values = append(values, CellValue{Key: key(), Content: Placeholder()})
	}
	return values
}

// IsMeaningful reports whether s carries more than whitespace and dashes.
func IsMeaningful(s string) bool {
	return strings.TrimFunc(s, isFiller) != ""
}

func isFiller(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Pd, r) || r == '−'
}
