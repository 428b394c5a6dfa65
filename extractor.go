package techdata

// Extractor converts the tabs of one catalog item into TechnicalData.
type Extractor interface {
	// Extract processes fragments in Order and returns the merged result.
	// It never returns nil: unusable input yields an empty TechnicalData.
	Extract(fragments []Fragment) *TechnicalData
}

// EventType identifies a notable, non-fatal outcome during extraction.
type EventType int

const (
	// EventTableParsed is emitted for every table handed to the pipeline.
	EventTableParsed EventType = iota
	// EventRowDropped is emitted for a table row that produced no data row.
	EventRowDropped
	// EventGroupDropped is emitted for a table that produced no rows.
	EventGroupDropped
	// EventMediaSkipped is emitted for an element skipped as embedded media.
	EventMediaSkipped
	// EventFragmentEmpty is emitted for a fragment with no usable markup.
	EventFragmentEmpty
	// EventFragmentRecovered is emitted when a fragment aborted unexpectedly
	// and was treated as empty.
	EventFragmentRecovered
)

func (t EventType) String() string {
	switch t {
	case EventTableParsed:
		return "table_parsed"
	case EventRowDropped:
		return "row_dropped"
	case EventGroupDropped:
		return "group_dropped"
	case EventMediaSkipped:
		return "media_skipped"
	case EventFragmentEmpty:
		return "fragment_empty"
	case EventFragmentRecovered:
		return "fragment_recovered"
	default:
		return "unknown"
	}
}

// Event describes one extraction outcome.
type Event struct {
	Type EventType

	// Fragment is the index of the fragment in processing order.
	Fragment int

	// Table is the index of the table within the fragment, or -1.
	Table int

	// Detail is a short human-readable explanation.
	Detail string
}

// EventFunc is called as extraction proceeds.
type EventFunc func(Event)

// Stats counts extraction events.
type Stats struct {
	Tables         int
	DroppedRows    int
	DroppedGroups  int
	SkippedMedia   int
	EmptyFragments int
	Recovered      int
}

// Observe records ev.
func (s *Stats) Observe(ev Event) {
	switch ev.Type {
	case EventTableParsed:
		s.Tables++
	case EventRowDropped:
		s.DroppedRows++
	case EventGroupDropped:
		s.DroppedGroups++
	case EventMediaSkipped:
		s.SkippedMedia++
	case EventFragmentEmpty:
		s.EmptyFragments++
	case EventFragmentRecovered:
		s.Recovered++
	}
}
