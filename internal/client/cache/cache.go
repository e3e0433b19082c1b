// Package cache implements the keyed TTL cache on top of the persistent
// store. Expired entries are treated as absent but stay on disk until they
// are overwritten or explicitly cleared; there is no sweep goroutine.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/iudanet/blogkeeper/internal/client/storage"
)

// collection is the persistent-store collection backing the cache
const collection = "cache"

const (
	// DefaultDuration is the fallback for unknown keys (content-list class)
	DefaultDuration = 10 * time.Minute

	// OfflineDuration applies to the "{key}_offline" fallback namespace
	OfflineDuration = 7 * 24 * time.Hour

	// offlineSuffix marks entries of the offline namespace
	offlineSuffix = "_offline"
)

// durations maps logical key classes to their TTL. Batch-indexed keys such
// as "content_list_batch_12" resolve by prefix.
var durations = map[string]time.Duration{
	"content_list": 10 * time.Minute,
	"static_pages": 30 * time.Minute,
	"tags":         time.Hour,
	"user_data":    24 * time.Hour,
	"comments":     5 * time.Minute,
}

// DurationFor resolves the TTL for a cache key.
func DurationFor(key string) time.Duration {
	if strings.HasSuffix(key, offlineSuffix) {
		return OfflineDuration
	}
	if d, ok := durations[key]; ok {
		return d
	}
	for prefix, d := range durations {
		if strings.HasPrefix(key, prefix) {
			return d
		}
	}
	return DefaultDuration
}

// cacheEntry is the persisted payload; the entry timestamp comes from the
// record stamp written by the persistent store.
type cacheEntry struct {
	Value json.RawMessage `json:"value"`
}

// Service is the cache layer over the persistent store.
type Service struct {
	store  storage.KVStorage
	now    func() time.Time
	logger *slog.Logger
}

// New creates the cache service.
func New(kv storage.KVStorage, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: kv, now: time.Now, logger: logger}
}

// Get loads the cached value under key into out. Returns false on miss,
// expiry or any read error; the cache never propagates failures to callers.
func (s *Service) Get(ctx context.Context, key string, out any) bool {
	record, err := s.store.Get(ctx, collection, key)
	if err != nil {
		if !errors.Is(err, storage.ErrRecordNotFound) && !errors.Is(err, storage.ErrCollectionNotFound) {
			s.logger.Warn("cache read failed", "key", key, "error", err)
		}
		return false
	}

	age := s.now().UnixMilli() - record.Timestamp
	if age < 0 || age >= DurationFor(key).Milliseconds() {
		return false
	}

	var entry cacheEntry
	if err := record.Decode(&entry); err != nil {
		s.logger.Warn("cache entry is corrupt", "key", key, "error", err)
		return false
	}

	if err := json.Unmarshal(entry.Value, out); err != nil {
		s.logger.Warn("cache value does not match requested shape", "key", key, "error", err)
		return false
	}

	return true
}

// Set stores value under key, resetting its TTL window.
func (s *Service) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.store.Put(ctx, collection, key, cacheEntry{Value: raw})
}

// Clear removes the entry under key.
func (s *Service) Clear(ctx context.Context, key string) error {
	err := s.store.Delete(ctx, collection, key)
	if err != nil && !errors.Is(err, storage.ErrCollectionNotFound) {
		return err
	}
	return nil
}

// SetOffline writes the long-duration fallback snapshot for key. Written
// opportunistically after successful fetches; read only on failure paths.
func (s *Service) SetOffline(ctx context.Context, key string, value any) error {
	return s.Set(ctx, key+offlineSuffix, value)
}

// GetOffline reads the offline snapshot for key.
func (s *Service) GetOffline(ctx context.Context, key string, out any) bool {
	return s.Get(ctx, key+offlineSuffix, out)
}
