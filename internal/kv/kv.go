// Package kv provides the key-value substrate entity collections are
// persisted on: whole serialized payloads under fixed keys.
package kv

import "context"

// Store is the persistence capability the data layer depends on. Load returns
// nil (not an error) when the key is absent. Save replaces the full payload
// under the key; there are no partial writes.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
