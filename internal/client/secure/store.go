// Package secure implements the encrypted field store: a small fixed set of
// sensitive values (tokens, user profile) encrypted with the build-time
// secret before they reach the persistent store. Plaintext never exists at
// rest, and decryption fails closed.
package secure

import (
	"context"
	"errors"
	"log/slog"

	"github.com/iudanet/blogkeeper/internal/client/storage"
	"github.com/iudanet/blogkeeper/internal/crypto"
)

// collection is the persistent-store collection holding encrypted blobs
const collection = "secureStorage"

// Keys of the sensitive fields this store manages
const (
	KeyAuthToken    = "auth_token"
	KeyRefreshToken = "refresh_token"
	KeyUserProfile  = "user_profile"
)

// sensitiveKeys is everything Clear removes
var sensitiveKeys = []string{KeyAuthToken, KeyRefreshToken, KeyUserProfile}

// ErrNoEncryptionKey indicates the store was built without a usable secret.
// Writes are refused; reads behave as "not present".
var ErrNoEncryptionKey = errors.New("encryption key is not available")

// encryptedBlob is the persisted shape: only ciphertext strings at rest
type encryptedBlob struct {
	Value string `json:"value"`
}

// Store encrypts values on the way into the persistent store and decrypts
// them on the way out.
type Store struct {
	store  storage.KVStorage
	key    []byte
	logger *slog.Logger
}

// New derives the storage key from secret and returns the store. An empty
// or unusable secret degrades the store to fail-closed: Save errors, Get
// reports absent.
func New(kv storage.KVStorage, secret string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	key, err := crypto.DeriveKey(secret)
	if err != nil {
		logger.Warn("secure store has no encryption key, operating fail-closed", "error", err)
		key = nil
	}

	return &Store{store: kv, key: key, logger: logger}
}

// Save encrypts v (JSON-serialized) and writes it under key.
func (s *Store) Save(ctx context.Context, key string, v any) error {
	if s.key == nil {
		return ErrNoEncryptionKey
	}

	ciphertext, err := crypto.EncryptJSON(v, s.key)
	if err != nil {
		return err
	}

	return s.store.Put(ctx, collection, key, encryptedBlob{Value: ciphertext})
}

// Get decrypts the value under key into out. Any failure (absent key,
// corrupt or foreign-key ciphertext, missing secret) reports false; callers
// treat all of these as "not present".
func (s *Store) Get(ctx context.Context, key string, out any) bool {
	if s.key == nil {
		return false
	}

	record, err := s.store.Get(ctx, collection, key)
	if err != nil {
		if !errors.Is(err, storage.ErrRecordNotFound) && !errors.Is(err, storage.ErrCollectionNotFound) {
			s.logger.Warn("failed to read encrypted field", "key", key, "error", err)
		}
		return false
	}

	var blob encryptedBlob
	if err := record.Decode(&blob); err != nil {
		s.logger.Warn("failed to decode encrypted field", "key", key, "error", err)
		return false
	}
	if blob.Value == "" {
		return false
	}

	if err := crypto.DecryptJSON(blob.Value, s.key, out); err != nil {
		// Stale ciphertext after a secret change lands here: fail closed
		s.logger.Warn("failed to decrypt field, treating as absent", "key", key, "error", err)
		return false
	}

	return true
}

// Delete removes a single encrypted field. Absent fields are a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.store.Delete(ctx, collection, key)
	if err != nil && !errors.Is(err, storage.ErrCollectionNotFound) {
		return err
	}
	return nil
}

// Clear removes every sensitive field. Deletes run sequentially and each is
// independently safe, so a partial failure leaves no plaintext behind.
func (s *Store) Clear(ctx context.Context) error {
	var lastErr error
	for _, key := range sensitiveKeys {
		if err := s.Delete(ctx, key); err != nil {
			s.logger.Warn("failed to delete encrypted field", "key", key, "error", err)
			lastErr = err
		}
	}
	return lastErr
}
