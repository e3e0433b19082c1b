package secure

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/blogkeeper/internal/client/storage"
	"github.com/iudanet/blogkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/blogkeeper/internal/models"
)

func createTestStore(t *testing.T, secret string) (*Store, storage.KVStorage) {
	t.Helper()

	kv, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "secure.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, kv.Close()) })

	return New(kv, secret, nil), kv
}

func TestStore_RoundTrip(t *testing.T) {
	store, _ := createTestStore(t, "build-secret")
	ctx := context.Background()

	profile := models.UserProfile{ID: "u-1", Email: "a@example.com", Name: "Alice"}
	require.NoError(t, store.Save(ctx, KeyUserProfile, profile))

	var got models.UserProfile
	require.True(t, store.Get(ctx, KeyUserProfile, &got))
	assert.Equal(t, profile, got)
}

func TestStore_PlaintextNeverAtRest(t *testing.T) {
	store, kv := createTestStore(t, "build-secret")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, KeyAuthToken, "ya29.super-secret-token"))

	record, err := kv.Get(ctx, "secureStorage", KeyAuthToken)
	require.NoError(t, err)
	assert.NotContains(t, string(record.Raw), "super-secret-token")
}

func TestStore_GetAbsent(t *testing.T) {
	store, _ := createTestStore(t, "build-secret")

	var out string
	assert.False(t, store.Get(context.Background(), KeyAuthToken, &out))
}

func TestStore_FailClosedOnSecretChange(t *testing.T) {
	ctx := context.Background()

	kv, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "secure.db"))
	require.NoError(t, err)
	defer kv.Close()

	// Write with one secret, read with another: must report absent
	writer := New(kv, "secret-one", nil)
	require.NoError(t, writer.Save(ctx, KeyRefreshToken, "1//refresh"))

	reader := New(kv, "secret-two", nil)
	var out string
	assert.False(t, reader.Get(ctx, KeyRefreshToken, &out))
}

func TestStore_FailClosedOnCorruptCiphertext(t *testing.T) {
	store, kv := createTestStore(t, "build-secret")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, KeyAuthToken, "token"))

	// Overwrite with garbage ciphertext
	require.NoError(t, kv.Put(ctx, "secureStorage", KeyAuthToken, map[string]any{"value": "bm90LWEtcmVhbC1jaXBoZXJ0ZXh0"}))

	var out string
	assert.False(t, store.Get(ctx, KeyAuthToken, &out))
}

func TestStore_EmptySecretFailsClosed(t *testing.T) {
	store, _ := createTestStore(t, "")
	ctx := context.Background()

	err := store.Save(ctx, KeyAuthToken, "token")
	assert.ErrorIs(t, err, ErrNoEncryptionKey)

	var out string
	assert.False(t, store.Get(ctx, KeyAuthToken, &out))
}

func TestStore_Clear(t *testing.T) {
	store, _ := createTestStore(t, "build-secret")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, KeyAuthToken, "tok"))
	require.NoError(t, store.Save(ctx, KeyRefreshToken, "ref"))
	require.NoError(t, store.Save(ctx, KeyUserProfile, models.UserProfile{ID: "u"}))

	require.NoError(t, store.Clear(ctx))

	var s string
	var p models.UserProfile
	assert.False(t, store.Get(ctx, KeyAuthToken, &s))
	assert.False(t, store.Get(ctx, KeyRefreshToken, &s))
	assert.False(t, store.Get(ctx, KeyUserProfile, &p))

	// Clearing again is a no-op
	assert.NoError(t, store.Clear(ctx))
}
