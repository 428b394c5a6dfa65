package main

import (
	"fmt"

	"github.com/fwojciec/techdata"
	"github.com/fwojciec/techdata/fs"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	fragments, err := fs.LoadFragments(c.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", techdata.ErrorMessage(err))
		return err
	}

	// Force mode: delete existing item first
	if c.Force {
		existing, err := deps.Items.FindItems(deps.Ctx, techdata.ItemFilter{Name: &c.Name})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", techdata.ErrorMessage(err))
			return err
		}
		if len(existing) > 0 {
			if err := deps.Items.DeleteItem(deps.Ctx, existing[0].ID); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", techdata.ErrorMessage(err))
				return err
			}
		}
	}

	item := &techdata.Item{
		Name:      c.Name,
		Fragments: fragments,
	}

	if err := deps.Items.CreateItem(deps.Ctx, item); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", techdata.ErrorMessage(err))
		if techdata.ErrorCode(err) == techdata.ECONFLICT {
			fmt.Fprintln(deps.Stderr, "Hint: use --force to replace it")
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported item %q (%s) with %d fragments\n", item.Name, item.ID, len(fragments))
	return nil
}
