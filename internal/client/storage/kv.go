// Package storage defines the client-side persistence contracts. The
// persistent store is a single versioned database holding named collections
// of JSON records; implementations live in subpackages (boltdb).
package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate moq -out kv_mock.go . KVStorage

// KVStorage is the generic persistent store: named collections of records
// keyed by string. Collections from the schema manifest are created lazily
// on open; schema upgrades are additive and never drop collections.
type KVStorage interface {
	// Get returns the record stored under key in collection.
	// Returns ErrRecordNotFound if the key is absent and
	// ErrCollectionNotFound if the collection does not exist.
	Get(ctx context.Context, collection, key string) (*StoredRecord, error)

	// GetAll returns every record in collection (bulk read).
	GetAll(ctx context.Context, collection string) ([]*StoredRecord, error)

	// Put stores payload under key, stamping id and timestamp. The write is
	// a full overwrite of the previous record, never a partial patch.
	Put(ctx context.Context, collection, key string, payload any) error

	// Delete removes the record under key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, collection, key string) error

	// DeleteAll removes every record in collection.
	DeleteAll(ctx context.Context, collection string) error
}

// StoredRecord is one persisted record: arbitrary JSON payload flattened
// together with the collection key ("id") and the write time in epoch
// milliseconds ("timestamp"). Both stamps are set by Put and win over
// payload fields of the same name.
type StoredRecord struct {
	ID        string
	Timestamp int64
	Raw       json.RawMessage
}

// Decode unmarshals the full record object (payload plus stamps) into v.
func (r *StoredRecord) Decode(v any) error {
	if err := json.Unmarshal(r.Raw, v); err != nil {
		return fmt.Errorf("failed to decode record %q: %w", r.ID, err)
	}
	return nil
}
