package main

import (
	"fmt"

	"github.com/fwojciec/techdata"
	"github.com/fwojciec/techdata/batch"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	var filter techdata.ItemFilter
	if c.Name != "" {
		filter.Name = &c.Name
	}

	// Apply user-specified options
	deps.Converter.Force = c.Force
	if c.Concurrency > 0 {
		deps.Converter.Concurrency = c.Concurrency
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d items\n", event.Total)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", event.Item, event.Error)
		case batch.ProgressFinished:
			// Summary printed after conversion completes
		}
	}

	result, err := deps.Converter.ConvertAll(deps.Ctx, filter, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error converting: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Converted %d items (%d unchanged, %d failed): %d groups, %d rows\n",
		result.Converted, result.Skipped, result.Failed, result.Groups, result.Rows)

	if result.Failed > 0 {
		return techdata.Errorf(techdata.EINTERNAL, "%d items failed to convert", result.Failed)
	}
	return nil
}
