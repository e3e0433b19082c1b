package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/blogkeeper/internal/client/storage"
)

// Compile-time check that Storage implements the persistent store contract
var _ storage.KVStorage = (*Storage)(nil)

// Get returns the record stored under key in collection
func (s *Storage) Get(ctx context.Context, collection, key string) (*storage.StoredRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var record *storage.StoredRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(collection))
		if bucket == nil {
			return storage.ErrCollectionNotFound
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrRecordNotFound
		}

		rec, err := decodeRecord(data)
		if err != nil {
			return err
		}
		record = rec

		return nil
	})

	if err != nil {
		return nil, err
	}

	return record, nil
}

// GetAll returns every record in collection
func (s *Storage) GetAll(ctx context.Context, collection string) ([]*storage.StoredRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var records []*storage.StoredRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(collection))
		if bucket == nil {
			return storage.ErrCollectionNotFound
		}

		return bucket.ForEach(func(k, v []byte) error {
			rec, err := decodeRecord(v)
			if err != nil {
				return err
			}
			records = append(records, rec)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return records, nil
}

// Put stores payload under key, stamping id and timestamp fresh. Payload
// fields named "id" or "timestamp" are always overwritten by the stamps.
func (s *Storage) Put(ctx context.Context, collection, key string, payload any) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := s.encodeRecord(key, payload)
	if err != nil {
		return err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(collection))
		if err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}

		if err := bucket.Put([]byte(key), data); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// Delete removes the record under key. Absent keys are a no-op.
func (s *Storage) Delete(ctx context.Context, collection, key string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(collection))
		if bucket == nil {
			return storage.ErrCollectionNotFound
		}

		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete record: %w", err)
		}

		return nil
	})
}

// DeleteAll removes every record in collection by recreating its bucket
func (s *Storage) DeleteAll(ctx context.Context, collection string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(collection)); err != nil {
			if err == bbolt.ErrBucketNotFound {
				return storage.ErrCollectionNotFound
			}
			return fmt.Errorf("failed to delete collection: %w", err)
		}

		if _, err := tx.CreateBucket([]byte(collection)); err != nil {
			return fmt.Errorf("failed to recreate collection: %w", err)
		}

		return nil
	})
}

// encodeRecord flattens payload into a JSON object and stamps id/timestamp.
// Mirrors the write shape {id, ...payload, timestamp}.
func (s *Storage) encodeRecord(key string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, storage.ErrInvalidPayload
	}

	fields["id"] = key
	fields["timestamp"] = s.now().UnixMilli()

	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	return data, nil
}

// decodeRecord extracts the id/timestamp stamps and keeps the raw object
func decodeRecord(data []byte) (*storage.StoredRecord, error) {
	var stamps struct {
		ID        string `json:"id"`
		Timestamp int64  `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &stamps); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	raw := make(json.RawMessage, len(data))
	copy(raw, data)

	return &storage.StoredRecord{
		ID:        stamps.ID,
		Timestamp: stamps.Timestamp,
		Raw:       raw,
	}, nil
}
