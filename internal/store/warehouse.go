package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kurir/internal/model"
	"kurir/internal/notify"
)

// WarehouseItems returns the warehouse item collection.
func (s *Store) WarehouseItems(ctx context.Context) ([]model.WarehouseItem, error) {
	return loadCollection[model.WarehouseItem](ctx, s, KeyWarehouseItems)
}

// SaveWarehouseItems replaces the warehouse item collection.
func (s *Store) SaveWarehouseItems(ctx context.Context, items []model.WarehouseItem) error {
	return saveCollection(ctx, s, KeyWarehouseItems, notify.TopicWarehouse, items)
}

// AddWarehouseItem appends a new warehouse item.
func (s *Store) AddWarehouseItem(ctx context.Context, item model.WarehouseItem) (*model.WarehouseItem, error) {
	if item.Quantity < 0 {
		return nil, fmt.Errorf("item quantity cannot be negative")
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	items, err := s.WarehouseItems(ctx)
	if err != nil {
		return nil, err
	}
	items = append(items, item)
	if err := s.SaveWarehouseItems(ctx, items); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateWarehouseItem loads the collection, applies fn to the matching record
// and saves. Returns nil if no record matches.
func (s *Store) UpdateWarehouseItem(ctx context.Context, id string, fn func(*model.WarehouseItem)) (*model.WarehouseItem, error) {
	items, err := s.WarehouseItems(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		fn(&items[i])
		items[i].ID = id
		if items[i].Quantity < 0 {
			return nil, fmt.Errorf("item quantity cannot be negative")
		}
		items[i].UpdatedAt = time.Now().UTC()
		if err := s.SaveWarehouseItems(ctx, items); err != nil {
			return nil, err
		}
		updated := items[i]
		return &updated, nil
	}
	return nil, nil
}

// RemoveWarehouseItem deletes a warehouse item. Returns false if no record
// matches.
func (s *Store) RemoveWarehouseItem(ctx context.Context, id string) (bool, error) {
	items, err := s.WarehouseItems(ctx)
	if err != nil {
		return false, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items = append(items[:i], items[i+1:]...)
		if err := s.SaveWarehouseItems(ctx, items); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
