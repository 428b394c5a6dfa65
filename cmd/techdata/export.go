package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/techdata"
	"github.com/fwojciec/techdata/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	r, err := renderer(c.Format)
	if err != nil {
		return err
	}

	items, err := deps.Items.FindItems(deps.Ctx, techdata.ItemFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", techdata.ErrorMessage(err))
		return err
	}

	dir := filepath.Clean(c.Dir)
	w := fs.NewWriter(filepath.Dir(dir), filepath.Base(dir))

	var written int
	for _, item := range items {
		if item.Data == nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: not converted\n", item.Name)
			continue
		}

		out, err := r.Render(item.Data)
		if err == nil {
			err = w.Write(item.Name, extension(c.Format), out)
		}
		if err != nil {
			_ = w.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", item.Name, techdata.ErrorMessage(err))
			return err
		}
		written++
	}

	if err := w.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d items to %s\n", written, dir)
	return nil
}
