package techdata

import (
	"context"
	"time"
)

// Item represents a catalog item whose tabs are converted to TechnicalData.
type Item struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Fragments []Fragment     `json:"fragments"`
	Data      *TechnicalData `json:"data,omitempty"`

	// SourceHash is HashFragments of the fragments Data was extracted from.
	// Empty when Data has never been extracted.
	SourceHash string `json:"sourceHash,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the item contains invalid fields.
func (i *Item) Validate() error {
	if i.Name == "" {
		return Errorf(EINVALID, "item name required")
	}
	return nil
}

// Stale reports whether Data is missing or was extracted from other fragments.
func (i *Item) Stale() bool {
	return i.Data == nil || i.SourceHash != HashFragments(i.Fragments)
}

// ItemService represents a service for managing catalog items.
type ItemService interface {
	// CreateItem creates a new item with its fragments.
	// Returns ECONFLICT if an item with the same name exists.
	CreateItem(ctx context.Context, item *Item) error

	// FindItemByID retrieves an item by ID, including fragments and data.
	// Returns ENOTFOUND if item does not exist.
	FindItemByID(ctx context.Context, id string) (*Item, error)

	// FindItems retrieves items matching the filter, including fragments.
	FindItems(ctx context.Context, filter ItemFilter) ([]*Item, error)

	// UpdateItemData stores extracted data and the hash of its source.
	// Returns ENOTFOUND if item does not exist.
	UpdateItemData(ctx context.Context, id string, data *TechnicalData, sourceHash string) error

	// DeleteItem permanently removes an item and its fragments.
	// Returns ENOTFOUND if item does not exist.
	DeleteItem(ctx context.Context, id string) error
}

// ItemFilter represents a filter for FindItems.
type ItemFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
