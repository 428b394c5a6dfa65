package main

import (
	"fmt"

	"github.com/fwojciec/techdata"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return techdata.Errorf(techdata.EINVALID, "use --force to confirm deletion")
	}

	item, err := findItemByName(deps, c.Name)
	if err != nil {
		return err
	}

	if err := deps.Items.DeleteItem(deps.Ctx, item.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", techdata.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted item %q\n", item.Name)
	return nil
}
