// Package slog provides log/slog decorators for techdata services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/techdata"
)

// Ensure LoggingExtractor implements techdata.Extractor.
var _ techdata.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging of each extraction.
type LoggingExtractor struct {
	next   techdata.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next techdata.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs a summary.
func (e *LoggingExtractor) Extract(fragments []techdata.Fragment) (data *techdata.TechnicalData) {
	defer func(begin time.Time) {
		var groups, rows, variants int
		if data != nil {
			groups, rows, variants = len(data.Groups), data.RowCount(), len(data.Variants)
		}
		e.logger.Info("extract",
			"fragments", len(fragments),
			"groups", groups,
			"rows", rows,
			"variants", variants,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(fragments)
}

// NewEventLogger returns an EventFunc that logs every event at debug level.
func NewEventLogger(logger *slog.Logger) techdata.EventFunc {
	return func(ev techdata.Event) {
		logger.Log(context.Background(), slog.LevelDebug, "extract event",
			"type", ev.Type.String(),
			"fragment", ev.Fragment,
			"table", ev.Table,
			"detail", ev.Detail,
		)
	}
}
