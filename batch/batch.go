// Package batch converts stored catalog items to technical data.
// It coordinates loading items, extracting their fragments concurrently,
// and saving the results.
package batch

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/fwojciec/techdata"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Converter.Concurrency is not positive.
const DefaultConcurrency = 4

// Converter extracts technical data for every matching item.
type Converter struct {
	Items       techdata.ItemService
	Extractor   techdata.Extractor
	Concurrency int

	// Force re-extracts items whose fragments have not changed.
	Force bool
}

// Result holds the outcome of a conversion run.
type Result struct {
	Converted int
	Skipped   int
	Failed    int
	Groups    int
	Rows      int
}

// ProgressEvent reports progress during a conversion run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Item      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting conversion progress.
type ProgressFunc func(event ProgressEvent)

// convertResult holds the outcome of extracting a single item.
type convertResult struct {
	position int
	item     *techdata.Item
	data     *techdata.TechnicalData
	hash     string
	err      error
}

// ConvertAll extracts every item matching filter and stores the results.
// Extraction runs concurrently; results are saved in item order.
// The progress callback, if provided, receives events as conversion proceeds.
func (c *Converter) ConvertAll(ctx context.Context, filter techdata.ItemFilter, progress ProgressFunc) (*Result, error) {
	items, err := c.Items.FindItems(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find items: %w", err)
	}

	notify := func(ev ProgressEvent) {
		if progress != nil {
			progress(ev)
		}
	}

	var result Result
	var pending []*techdata.Item
	total := len(items)
	var completed atomic.Int64

	notify(ProgressEvent{Type: ProgressStarted, Total: total})

	for _, item := range items {
		if !c.Force && !item.Stale() {
			result.Skipped++
			notify(ProgressEvent{
				Type:      ProgressSkipped,
				Completed: int(completed.Add(1)),
				Total:     total,
				Item:      item.Name,
			})
			continue
		}
		pending = append(pending, item)
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan convertResult, len(pending))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, item := range pending {
			g.Go(func() error {
				resultCh <- c.convertItem(gctx, i, item)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]convertResult, len(pending))
	for r := range resultCh {
		results[r.position] = r
	}

	for _, r := range results {
		if r.err == nil {
			r.err = c.Items.UpdateItemData(ctx, r.item.ID, r.data, r.hash)
		}

		if r.err != nil {
			result.Failed++
			notify(ProgressEvent{
				Type:      ProgressFailed,
				Completed: int(completed.Add(1)),
				Total:     total,
				Item:      r.item.Name,
				Error:     r.err,
			})
			continue
		}

		result.Converted++
		result.Groups += len(r.data.Groups)
		result.Rows += r.data.RowCount()
		notify(ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Add(1)),
			Total:     total,
			Item:      r.item.Name,
		})
	}

	notify(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return &result, nil
}

// convertItem extracts a single item's fragments in one pass.
func (c *Converter) convertItem(ctx context.Context, position int, item *techdata.Item) convertResult {
	r := convertResult{position: position, item: item}

	if err := ctx.Err(); err != nil {
		r.err = err
		return r
	}

	data := c.Extractor.Extract(item.Fragments)
	if err := data.Validate(); err != nil {
		r.err = fmt.Errorf("item %q: %w", item.Name, err)
		return r
	}

	r.data = data
	r.hash = techdata.HashFragments(item.Fragments)
	return r
}
