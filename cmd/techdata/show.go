package main

import (
	"fmt"

	"github.com/fwojciec/techdata"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	item, err := findItemByName(deps, c.Name)
	if err != nil {
		return err
	}

	if item.Data == nil {
		fmt.Fprintf(deps.Stderr, "error: item %q has not been converted. Use 'techdata convert' first.\n", c.Name)
		return techdata.Errorf(techdata.EINVALID, "item %q has not been converted", c.Name)
	}

	r, err := renderer(c.Format)
	if err != nil {
		return err
	}

	out, err := r.Render(item.Data)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", techdata.ErrorMessage(err))
		return err
	}

	if item.Stale() {
		fmt.Fprintf(deps.Stderr, "warning: fragments of %q changed since last conversion\n", c.Name)
	}
	fmt.Fprintln(deps.Stdout, out)
	return nil
}

// findItemByName returns the named item, reporting errors to stderr.
func findItemByName(deps *Dependencies, name string) (*techdata.Item, error) {
	items, err := deps.Items.FindItems(deps.Ctx, techdata.ItemFilter{Name: &name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", techdata.ErrorMessage(err))
		return nil, err
	}

	if len(items) == 0 {
		fmt.Fprintf(deps.Stderr, "error: item %q not found. Use 'techdata list' to see available items.\n", name)
		return nil, techdata.Errorf(techdata.ENOTFOUND, "item %q not found", name)
	}

	return items[0], nil
}
