package main

import (
	"fmt"

	"github.com/fwojciec/techdata"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	items, err := deps.Items.FindItems(deps.Ctx, techdata.ItemFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", techdata.ErrorMessage(err))
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(deps.Stdout, "No items found. Use 'techdata import' to create one.")
		return nil
	}

	for _, item := range items {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d fragments  %s\n", item.ID, item.Name, len(item.Fragments), status(item))
	}

	return nil
}

func status(item *techdata.Item) string {
	switch {
	case item.Data == nil:
		return "pending"
	case item.Stale():
		return "stale"
	}
	return fmt.Sprintf("%d groups, %d rows", len(item.Data.Groups), item.Data.RowCount())
}
