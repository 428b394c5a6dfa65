package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/techdata"
)

// Ensure LoggingItemService implements techdata.ItemService.
var _ techdata.ItemService = (*LoggingItemService)(nil)

// LoggingItemService wraps an ItemService with logging of writes.
type LoggingItemService struct {
	next   techdata.ItemService
	logger *slog.Logger
}

// NewLoggingItemService creates a new LoggingItemService.
func NewLoggingItemService(next techdata.ItemService, logger *slog.Logger) *LoggingItemService {
	return &LoggingItemService{next: next, logger: logger}
}

// CreateItem delegates to the wrapped service and logs the operation.
func (s *LoggingItemService) CreateItem(ctx context.Context, item *techdata.Item) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create item",
			"name", item.Name,
			"fragments", len(item.Fragments),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateItem(ctx, item)
}

// FindItemByID delegates to the wrapped service.
func (s *LoggingItemService) FindItemByID(ctx context.Context, id string) (*techdata.Item, error) {
	return s.next.FindItemByID(ctx, id)
}

// FindItems delegates to the wrapped service.
func (s *LoggingItemService) FindItems(ctx context.Context, filter techdata.ItemFilter) ([]*techdata.Item, error) {
	return s.next.FindItems(ctx, filter)
}

// UpdateItemData delegates to the wrapped service and logs the operation.
func (s *LoggingItemService) UpdateItemData(ctx context.Context, id string, data *techdata.TechnicalData, sourceHash string) (err error) {
	defer func(begin time.Time) {
		var groups int
		if data != nil {
			groups = len(data.Groups)
		}
		s.logger.Info("update item data",
			"id", id,
			"groups", groups,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateItemData(ctx, id, data, sourceHash)
}

// DeleteItem delegates to the wrapped service and logs the operation.
func (s *LoggingItemService) DeleteItem(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete item",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteItem(ctx, id)
}
