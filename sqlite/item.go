package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/techdata"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ techdata.ItemService = (*ItemService)(nil)

// ItemService implements techdata.ItemService using SQLite.
// Fragments live in their own table; extracted data is stored as JSON.
type ItemService struct {
	db *DB
}

// NewItemService creates a new ItemService.
func NewItemService(db *DB) *ItemService {
	return &ItemService{db: db}
}

// CreateItem creates a new item with its fragments.
func (s *ItemService) CreateItem(ctx context.Context, item *techdata.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	data, err := encodeData(item.Data)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var n int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM items WHERE name = ?", item.Name).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return techdata.Errorf(techdata.ECONFLICT, "item %q already exists", item.Name)
	}

	item.ID = uuid.New().String()
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO items (id, name, data, source_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, item.ID, item.Name, data, item.SourceHash,
		item.CreatedAt.Format(time.RFC3339), item.UpdatedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	for i, f := range item.Fragments {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO fragments (item_id, position, title, markup, sort_order)
			VALUES (?, ?, ?, ?, ?)
		`, item.ID, i, f.Title, f.Markup, f.Order); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindItemByID retrieves an item by ID.
func (s *ItemService) FindItemByID(ctx context.Context, id string) (*techdata.Item, error) {
	items, err := s.FindItems(ctx, techdata.ItemFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, techdata.Errorf(techdata.ENOTFOUND, "item not found")
	}
	return items[0], nil
}

// FindItems retrieves items matching the filter, ordered by name.
func (s *ItemService) FindItems(ctx context.Context, filter techdata.ItemFilter) ([]*techdata.Item, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, data, source_hash, created_at, updated_at FROM items WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY name ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		if filter.Limit <= 0 {
			query.WriteString(" LIMIT -1")
		}
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*techdata.Item
	for rows.Next() {
		var item techdata.Item
		var data, createdAt, updatedAt string

		if err := rows.Scan(&item.ID, &item.Name, &data, &item.SourceHash, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if item.Data, err = decodeData(data); err != nil {
			return nil, err
		}
		if item.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if item.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for _, item := range items {
		if item.Fragments, err = s.findFragments(ctx, item.ID); err != nil {
			return nil, err
		}
	}

	return items, nil
}

// findFragments returns the fragments of an item in insertion order.
func (s *ItemService) findFragments(ctx context.Context, itemID string) ([]techdata.Fragment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, markup, sort_order
		FROM fragments
		WHERE item_id = ?
		ORDER BY position ASC
	`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fragments []techdata.Fragment
	for rows.Next() {
		var f techdata.Fragment
		if err := rows.Scan(&f.Title, &f.Markup, &f.Order); err != nil {
			return nil, err
		}
		fragments = append(fragments, f)
	}

	return fragments, rows.Err()
}

// UpdateItemData stores extracted data and the hash of its source fragments.
func (s *ItemService) UpdateItemData(ctx context.Context, id string, data *techdata.TechnicalData, sourceHash string) error {
	encoded, err := encodeData(data)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE items
		SET data = ?, source_hash = ?, updated_at = ?
		WHERE id = ?
	`, encoded, sourceHash, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return err
	}

	return requireAffected(result, "item not found")
}

// DeleteItem permanently removes an item and its fragments.
func (s *ItemService) DeleteItem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return err
	}

	return requireAffected(result, "item not found")
}

// requireAffected returns ENOTFOUND when result touched no rows.
func requireAffected(result sql.Result, msg string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return techdata.Errorf(techdata.ENOTFOUND, "%s", msg)
	}
	return nil
}

// encodeData serializes data as JSON. Nil data is stored as an empty string.
func encodeData(data *techdata.TechnicalData) (string, error) {
	if data == nil {
		return "", nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to encode technical data: %w", err)
	}
	return string(b), nil
}

func decodeData(s string) (*techdata.TechnicalData, error) {
	if s == "" {
		return nil, nil
	}
	var data techdata.TechnicalData
	if err := json.Unmarshal([]byte(s), &data); err != nil {
		return nil, fmt.Errorf("failed to decode technical data: %w", err)
	}
	return &data, nil
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}
