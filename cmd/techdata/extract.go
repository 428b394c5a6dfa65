package main

import (
	"fmt"

	"github.com/fwojciec/techdata"
	"github.com/fwojciec/techdata/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	fragments, err := fs.LoadFragments(c.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", techdata.ErrorMessage(err))
		return err
	}

	r, err := renderer(c.Format)
	if err != nil {
		return err
	}

	data := deps.Extractor.Extract(fragments)

	out, err := r.Render(data)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", techdata.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, out)

	if s := deps.Stats; s != nil {
		fmt.Fprintf(deps.Stderr, "%d fragments, %d tables, %d groups, %d rows (dropped %d rows, %d groups; skipped %d media)\n",
			len(fragments), s.Tables, len(data.Groups), data.RowCount(), s.DroppedRows, s.DroppedGroups, s.SkippedMedia)
	}

	return nil
}
