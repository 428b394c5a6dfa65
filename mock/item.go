package mock

import (
	"context"

	"github.com/fwojciec/techdata"
)

var _ techdata.ItemService = (*ItemService)(nil)

// ItemService is a mock implementation of techdata.ItemService.
type ItemService struct {
	CreateItemFn     func(ctx context.Context, item *techdata.Item) error
	FindItemByIDFn   func(ctx context.Context, id string) (*techdata.Item, error)
	FindItemsFn      func(ctx context.Context, filter techdata.ItemFilter) ([]*techdata.Item, error)
	UpdateItemDataFn func(ctx context.Context, id string, data *techdata.TechnicalData, sourceHash string) error
	DeleteItemFn     func(ctx context.Context, id string) error
}

func (s *ItemService) CreateItem(ctx context.Context, item *techdata.Item) error {
	return s.CreateItemFn(ctx, item)
}

func (s *ItemService) FindItemByID(ctx context.Context, id string) (*techdata.Item, error) {
	return s.FindItemByIDFn(ctx, id)
}

func (s *ItemService) FindItems(ctx context.Context, filter techdata.ItemFilter) ([]*techdata.Item, error) {
	return s.FindItemsFn(ctx, filter)
}

func (s *ItemService) UpdateItemData(ctx context.Context, id string, data *techdata.TechnicalData, sourceHash string) error {
	return s.UpdateItemDataFn(ctx, id, data, sourceHash)
}

func (s *ItemService) DeleteItem(ctx context.Context, id string) error {
	return s.DeleteItemFn(ctx, id)
}
