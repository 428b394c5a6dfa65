package mock

import "github.com/fwojciec/techdata"

var _ techdata.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of techdata.Extractor.
type Extractor struct {
	ExtractFn func(fragments []techdata.Fragment) *techdata.TechnicalData
}

func (e *Extractor) Extract(fragments []techdata.Fragment) *techdata.TechnicalData {
	return e.ExtractFn(fragments)
}
