package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/blogkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/blogkeeper/internal/models"
)

const testUser = "user-1"

func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	kv, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, kv.Close()) })

	return New(kv, nil)
}

func TestRepository_GetAlwaysSlice(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Missing record, unknown type, bad user id: all degrade to empty
	assert.NotNil(t, repo.Get(ctx, models.CollectionFavorites, testUser))
	assert.Empty(t, repo.Get(ctx, models.CollectionFavorites, testUser))
	assert.NotNil(t, repo.Get(ctx, "likes", testUser))
	assert.NotNil(t, repo.Get(ctx, models.CollectionReads, ""))
}

func TestRepository_ReplaceAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	items := []models.Item{
		{ID: "post-1", Title: "First", FavoriteAt: 100},
		{ID: "post-2", Title: "Second", FavoriteAt: 200},
	}
	require.NoError(t, repo.Replace(ctx, models.CollectionFavorites, testUser, items))

	got := repo.Get(ctx, models.CollectionFavorites, testUser)
	assert.Equal(t, items, got)

	// Replace is a full overwrite, not a union
	require.NoError(t, repo.Replace(ctx, models.CollectionFavorites, testUser, items[:1]))
	assert.Len(t, repo.Get(ctx, models.CollectionFavorites, testUser), 1)
}

func TestRepository_CollectionsAreIndependent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, models.CollectionFavorites, testUser, []models.Item{{ID: "a"}}))
	require.NoError(t, repo.Replace(ctx, models.CollectionBookmarks, testUser, []models.Item{{ID: "b"}}))
	require.NoError(t, repo.Replace(ctx, models.CollectionFavorites, "user-2", []models.Item{{ID: "c"}}))

	assert.Equal(t, "a", repo.Get(ctx, models.CollectionFavorites, testUser)[0].ID)
	assert.Equal(t, "b", repo.Get(ctx, models.CollectionBookmarks, testUser)[0].ID)
	assert.Equal(t, "c", repo.Get(ctx, models.CollectionFavorites, "user-2")[0].ID)
}

func TestRepository_AppendItem(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.AppendItem(ctx, models.CollectionBookmarks, testUser, models.Item{ID: "manga-1", Page: 10}))
	require.NoError(t, repo.AppendItem(ctx, models.CollectionBookmarks, testUser, models.Item{ID: "manga-2", Page: 3}))

	got := repo.Get(ctx, models.CollectionBookmarks, testUser)
	require.Len(t, got, 2)
	assert.Equal(t, "manga-1", got[0].ID)
	assert.Equal(t, "manga-2", got[1].ID)
}

func TestRepository_AppendItemReplacesSameID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.AppendItem(ctx, models.CollectionBookmarks, testUser, models.Item{ID: "manga-1", Page: 10}))
	require.NoError(t, repo.AppendItem(ctx, models.CollectionBookmarks, testUser, models.Item{ID: "manga-1", Page: 42}))

	got := repo.Get(ctx, models.CollectionBookmarks, testUser)
	require.Len(t, got, 1, "same id must not duplicate")
	assert.Equal(t, 42, got[0].Page)
}

func TestRepository_AppendItemRequiresID(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.AppendItem(context.Background(), models.CollectionReads, testUser, models.Item{Title: "no id"})
	assert.Error(t, err)
}

func TestRepository_RemoveItem(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, models.CollectionFavorites, testUser, []models.Item{
		{ID: "post-1"}, {ID: "post-2"}, {ID: "post-3"},
	}))

	require.NoError(t, repo.RemoveItem(ctx, models.CollectionFavorites, testUser, "post-2"))
	got := repo.Get(ctx, models.CollectionFavorites, testUser)
	require.Len(t, got, 2)
	assert.Equal(t, "post-1", got[0].ID)
	assert.Equal(t, "post-3", got[1].ID)

	// Absent id is a no-op
	require.NoError(t, repo.RemoveItem(ctx, models.CollectionFavorites, testUser, "post-99"))
	assert.Len(t, repo.Get(ctx, models.CollectionFavorites, testUser), 2)
}

func TestRepository_LegacyAlias(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Writing through the legacy type name lands on the canonical key
	require.NoError(t, repo.Replace(ctx, "follows", testUser, []models.Item{{ID: "post-1"}}))

	got := repo.Get(ctx, models.CollectionFavorites, testUser)
	require.Len(t, got, 1)
	assert.Equal(t, "post-1", got[0].ID)

	// And reads through the legacy name see the same data
	assert.Equal(t, got, repo.Get(ctx, "follows", testUser))
}

func TestRepository_LegacyKeyFallback(t *testing.T) {
	kv, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, kv.Close()) })
	repo := New(kv, nil)
	ctx := context.Background()

	// A record persisted by an older version under the follows_ key
	require.NoError(t, kv.Put(ctx, Collection, "follows_"+testUser, record{Data: []models.Item{{ID: "old-post"}}}))

	got := repo.Get(ctx, models.CollectionFavorites, testUser)
	require.Len(t, got, 1)
	assert.Equal(t, "old-post", got[0].ID)
}

func TestRepository_WipeUserData(t *testing.T) {
	kv, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, kv.Close()) })
	repo := New(kv, nil)
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, models.CollectionFavorites, testUser, []models.Item{{ID: "a"}}))
	require.NoError(t, repo.Replace(ctx, models.CollectionBookmarks, testUser, []models.Item{{ID: "b"}}))
	require.NoError(t, kv.Put(ctx, Collection, "follows_"+testUser, record{Data: []models.Item{{ID: "old"}}}))
	require.NoError(t, repo.Replace(ctx, models.CollectionReads, "user-2", []models.Item{{ID: "keep"}}))

	require.NoError(t, repo.WipeUserData(ctx, testUser))

	assert.Empty(t, repo.Get(ctx, models.CollectionFavorites, testUser))
	assert.Empty(t, repo.Get(ctx, models.CollectionBookmarks, testUser))
	assert.Empty(t, repo.Get(ctx, models.CollectionReads, testUser))

	// Other users keep their data
	assert.Len(t, repo.Get(ctx, models.CollectionReads, "user-2"), 1)
}

func TestRepository_Sizes(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, models.CollectionFavorites, testUser, []models.Item{{ID: "a"}, {ID: "b"}}))
	require.NoError(t, repo.Replace(ctx, models.CollectionReads, testUser, []models.Item{{ID: "c"}}))

	sizes := repo.Sizes(ctx, testUser)
	assert.Equal(t, 2, sizes[models.CollectionFavorites])
	assert.Equal(t, 0, sizes[models.CollectionBookmarks])
	assert.Equal(t, 1, sizes[models.CollectionReads])
}
