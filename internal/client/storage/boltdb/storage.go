// Package boltdb implements the client persistent store on top of bbolt.
// Each named collection from the schema manifest maps to one bucket.
package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// Collection names created on open. Upgrades are additive: opening an older
// database file creates the missing buckets and never drops existing ones.
var collectionManifest = []string{
	"userData",
	"history",
	"bookmarks",
	"favorites",
	"reads",
	"search",
	"cache",
	"secureStorage",
}

// Storage represents the bbolt-backed persistent store for the client
type Storage struct {
	db  *bbolt.DB
	now func() time.Time
}

// New opens (or creates) the database at dbPath and ensures every manifest
// collection exists.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db, now: time.Now}

	if err := storage.initCollections(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize collections: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initCollections creates manifest buckets that do not exist yet
func (s *Storage) initCollections() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range collectionManifest {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("failed to create collection %q: %w", name, err)
			}
		}
		return nil
	})
}
