// Package store gives typed access to the named entity collections. Every
// collection is one JSON document under a fixed key; saves replace the whole
// document and broadcast a change signal.
//
// There is no locking between writers: two callers mutating the same
// collection in close succession overwrite each other (last write wins).
// Mutators therefore always load immediately before applying a change and
// never operate on a snapshot held from an earlier call.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"kurir/internal/kv"
	"kurir/internal/notify"
)

// Collection keys.
const (
	KeyShipments        = "shipments"
	KeyTrashedShipments = "trashedShipments"
	KeyTrips            = "trips"
	KeyExpenses         = "expenses"
	KeyWarehouseItems   = "warehouseItems"
	KeyMessages         = "messages"
	KeyCompanyInfo      = "companyInfo"
)

// Store wraps the key-value substrate and the change bus.
type Store struct {
	kv  kv.Store
	bus *notify.Bus
}

// New returns a Store over the given substrate and bus.
func New(kvStore kv.Store, bus *notify.Bus) *Store {
	return &Store{kv: kvStore, bus: bus}
}

// Bus returns the change bus, for subscribers.
func (s *Store) Bus() *notify.Bus {
	return s.bus
}

// loadCollection reads a collection. An absent key or a payload that fails
// to parse reads as an empty collection; parse failures are never surfaced.
func loadCollection[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	raw, err := s.kv.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, nil
	}
	return records, nil
}

// saveCollection replaces a collection and broadcasts the topic on success.
func saveCollection[T any](ctx context.Context, s *Store, key, topic string, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.kv.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	s.bus.Publish(topic)
	return nil
}
