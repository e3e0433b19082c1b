package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/blogkeeper/internal/client/storage/boltdb"
)

func createTestCache(t *testing.T) *Service {
	t.Helper()

	kv, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, kv.Close()) })

	return New(kv, nil)
}

func TestDurationFor(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want time.Duration
	}{
		{name: "content list", key: "content_list", want: 10 * time.Minute},
		{name: "batch-indexed content list", key: "content_list_batch_40", want: 10 * time.Minute},
		{name: "static pages", key: "static_pages", want: 30 * time.Minute},
		{name: "tags", key: "tags", want: time.Hour},
		{name: "user data", key: "user_data", want: 24 * time.Hour},
		{name: "comments by post", key: "comments_post-77", want: 5 * time.Minute},
		{name: "unknown key falls back to content-list duration", key: "mystery", want: DefaultDuration},
		{name: "offline namespace", key: "content_list_offline", want: OfflineDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationFor(tt.key))
		})
	}
}

func TestCache_SetGet(t *testing.T) {
	cache := createTestCache(t)
	ctx := context.Background()

	value := []string{"post-1", "post-2"}
	require.NoError(t, cache.Set(ctx, "content_list", value))

	var got []string
	require.True(t, cache.Get(ctx, "content_list", &got))
	assert.Equal(t, value, got)
}

func TestCache_Expiry(t *testing.T) {
	cache := createTestCache(t)
	ctx := context.Background()

	base := time.UnixMilli(1700000000000)
	cache.now = func() time.Time { return base }

	require.NoError(t, cache.Set(ctx, "content_list", "fresh"))

	var got string

	// Just before expiry: still valid and unchanged
	cache.now = func() time.Time { return base.Add(10*time.Minute - time.Second) }
	require.True(t, cache.Get(ctx, "content_list", &got))
	assert.Equal(t, "fresh", got)

	// Past expiry: treated as absent
	cache.now = func() time.Time { return base.Add(10*time.Minute + time.Second) }
	assert.False(t, cache.Get(ctx, "content_list", &got))
}

func TestCache_Miss(t *testing.T) {
	cache := createTestCache(t)

	var got string
	assert.False(t, cache.Get(context.Background(), "content_list", &got))
}

func TestCache_Clear(t *testing.T) {
	cache := createTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "tags", []string{"action"}))
	require.NoError(t, cache.Clear(ctx, "tags"))

	var got []string
	assert.False(t, cache.Get(ctx, "tags", &got))

	// Clearing an absent key is fine
	assert.NoError(t, cache.Clear(ctx, "tags"))
}

func TestCache_OfflineNamespace(t *testing.T) {
	cache := createTestCache(t)
	ctx := context.Background()

	base := time.UnixMilli(1700000000000)
	cache.now = func() time.Time { return base }

	require.NoError(t, cache.SetOffline(ctx, "content_list", "snapshot"))

	// The offline copy outlives the regular TTL by days
	cache.now = func() time.Time { return base.Add(48 * time.Hour) }

	var got string
	require.True(t, cache.GetOffline(ctx, "content_list", &got))
	assert.Equal(t, "snapshot", got)

	// But not the 7-day window
	cache.now = func() time.Time { return base.Add(8 * 24 * time.Hour) }
	assert.False(t, cache.GetOffline(ctx, "content_list", &got))
}

func TestCache_OverwriteResetsTTL(t *testing.T) {
	cache := createTestCache(t)
	ctx := context.Background()

	base := time.UnixMilli(1700000000000)
	cache.now = func() time.Time { return base }
	require.NoError(t, cache.Set(ctx, "comments_p1", "old"))

	// Rewrite shortly before expiry
	cache.now = func() time.Time { return base.Add(4 * time.Minute) }
	require.NoError(t, cache.Set(ctx, "comments_p1", "new"))

	// Old window has passed, new one has not
	cache.now = func() time.Time { return base.Add(8 * time.Minute) }

	var got string
	require.True(t, cache.Get(ctx, "comments_p1", &got))
	assert.Equal(t, "new", got)
}
