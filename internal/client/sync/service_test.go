package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	gosync "sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/blogkeeper/internal/client/api"
	"github.com/iudanet/blogkeeper/internal/client/drive"
	"github.com/iudanet/blogkeeper/internal/client/history"
	"github.com/iudanet/blogkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/blogkeeper/internal/models"
)

const testUser = "user-1"

// plainDoer satisfies drive.AuthedDoer without token handling.
type plainDoer struct{}

func (plainDoer) Do(ctx context.Context, method, url, contentType string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = strings.NewReader(string(body))
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, &api.NetworkError{Err: err}
	}
	return resp, nil
}

// fakeDrive is a stateful in-memory stand-in for the remote object store.
type fakeDrive struct {
	mu      gosync.Mutex
	files   map[string]*fakeFile
	nextID  int
	creates int
	updates int
}

type fakeFile struct {
	name    string
	content []byte
}

func newFakeDrive() *fakeDrive {
	return &fakeDrive{files: make(map[string]*fakeFile)}
}

func (d *fakeDrive) put(name string, content []byte) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	id := fmt.Sprintf("file-%d", d.nextID)
	d.files[id] = &fakeFile{name: name, content: content}
	return id
}

func (d *fakeDrive) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d.mu.Lock()
		defer d.mu.Unlock()

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/files":
			q := r.URL.Query().Get("q")
			name := strings.TrimSuffix(strings.TrimPrefix(q, "name='"), "'")
			var files []map[string]string
			for id, f := range d.files {
				if f.name == name {
					files = append(files, map[string]string{
						"id": id, "name": f.name, "modifiedTime": "2026-08-01T10:00:00Z",
					})
				}
			}
			writeJSON(t, w, map[string]any{"files": files})

		case r.Method == http.MethodPost && r.URL.Path == "/files":
			_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			require.NoError(t, err)
			reader := multipart.NewReader(r.Body, params["boundary"])
			metaPart, err := reader.NextPart()
			require.NoError(t, err)
			var meta struct {
				Name string `json:"name"`
			}
			require.NoError(t, json.NewDecoder(metaPart).Decode(&meta))
			mediaPart, err := reader.NextPart()
			require.NoError(t, err)
			content, err := io.ReadAll(mediaPart)
			require.NoError(t, err)

			d.nextID++
			id := fmt.Sprintf("file-%d", d.nextID)
			d.files[id] = &fakeFile{name: meta.Name, content: content}
			d.creates++
			writeJSON(t, w, map[string]string{"id": id, "name": meta.Name})

		case r.Method == http.MethodPatch:
			id := strings.TrimPrefix(r.URL.Path, "/files/")
			f, ok := d.files[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			content, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			f.content = content
			d.updates++
			writeJSON(t, w, map[string]string{"id": id, "name": f.name})

		case r.Method == http.MethodGet:
			id := strings.TrimPrefix(r.URL.Path, "/files/")
			f, ok := d.files[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write(f.content)

		case r.Method == http.MethodDelete:
			id := strings.TrimPrefix(r.URL.Path, "/files/")
			delete(d.files, id)
			w.WriteHeader(http.StatusNoContent)

		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL)
		}
	})
}

// blobByName decodes the stored backup blob, failing if absent.
func (d *fakeDrive) blobByName(t *testing.T, name string) *models.BackupBlob {
	t.Helper()
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, f := range d.files {
		if f.name == name {
			blob := &models.BackupBlob{}
			require.NoError(t, json.Unmarshal(f.content, blob))
			return blob
		}
	}
	t.Fatalf("no remote file named %s", name)
	return nil
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

type syncEnv struct {
	service *Service
	history *history.Repository
	remote  *fakeDrive
	server  *httptest.Server
}

func newSyncEnv(t *testing.T) *syncEnv {
	t.Helper()

	kv, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "sync.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, kv.Close()) })

	remote := newFakeDrive()
	srv := httptest.NewServer(remote.handler(t))
	t.Cleanup(srv.Close)

	hist := history.New(kv, nil)
	client := drive.New(plainDoer{}, nil, drive.WithBaseURLs(srv.URL, srv.URL))

	return &syncEnv{
		service: New(hist, client, kv, nil),
		history: hist,
		remote:  remote,
		server:  srv,
	}
}

func TestSync_FirstLoginCreatesEmptyBackup(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()

	require.NoError(t, env.service.Sync(ctx, testUser))

	assert.Equal(t, 1, env.remote.creates, "exactly one create for the fresh user")

	blob := env.remote.blobByName(t, "blogger_data_"+testUser+".json")
	assert.Empty(t, blob.ReadPosts)
	assert.Empty(t, blob.FavoritePosts)
	assert.Empty(t, blob.MangaBookmarks)
	assert.NotEmpty(t, blob.DeviceID)

	// The raw JSON must carry empty arrays, not nulls
	raw, err := json.Marshal(models.NewBackupBlob())
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"readPosts":[]`)

	assert.Empty(t, env.history.Get(ctx, models.CollectionFavorites, testUser))
}

func TestSync_MergesBothSides(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()

	require.NoError(t, env.history.Replace(ctx, models.CollectionFavorites, testUser, []models.Item{
		{ID: "a", Title: "local a", FavoriteAt: 100},
		{ID: "b", Title: "local b", FavoriteAt: 200},
	}))

	remoteBlob := models.NewBackupBlob()
	remoteBlob.FavoritePosts = []models.Item{
		{ID: "b", Title: "remote b", FavoriteAt: 250},
		{ID: "c", Title: "remote c", FavoriteAt: 300},
	}
	content, err := json.Marshal(remoteBlob)
	require.NoError(t, err)
	env.remote.put("blogger_data_"+testUser+".json", content)

	require.NoError(t, env.service.Sync(ctx, testUser))

	want := []string{"c", "b", "a"}
	local := env.history.Get(ctx, models.CollectionFavorites, testUser)
	require.Len(t, local, 3)
	for i, id := range want {
		assert.Equal(t, id, local[i].ID)
	}
	assert.Equal(t, "remote b", local[1].Title, "remote wins on id collision")

	// Remote converged to the same merged state
	pushed := env.remote.blobByName(t, "blogger_data_"+testUser+".json")
	require.Len(t, pushed.FavoritePosts, 3)
	for i, id := range want {
		assert.Equal(t, id, pushed.FavoritePosts[i].ID)
	}
}

func TestSync_CooldownSkipsSecondCall(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()

	require.NoError(t, env.service.Sync(ctx, testUser))
	creates, updates := env.remote.creates, env.remote.updates

	err := env.service.Sync(ctx, testUser)
	assert.ErrorIs(t, err, ErrCooldownActive)
	assert.Equal(t, creates, env.remote.creates, "no remote traffic on cooldown")
	assert.Equal(t, updates, env.remote.updates)
}

func TestSync_NetworkFailureDegradesToLocal(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()

	require.NoError(t, env.history.Replace(ctx, models.CollectionReads, testUser, []models.Item{{ID: "r1"}}))

	env.server.Close()

	// Offline sync is not an error and local data is untouched
	require.NoError(t, env.service.Sync(ctx, testUser))
	assert.Len(t, env.history.Get(ctx, models.CollectionReads, testUser), 1)
}

func TestSync_CorruptRemoteBlobTreatedAsEmpty(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()

	require.NoError(t, env.history.Replace(ctx, models.CollectionFavorites, testUser, []models.Item{{ID: "a"}}))
	env.remote.put("blogger_data_"+testUser+".json", []byte(`{"favoritePosts": "not an array"`))

	require.NoError(t, env.service.Sync(ctx, testUser))

	assert.Len(t, env.history.Get(ctx, models.CollectionFavorites, testUser), 1)
	pushed := env.remote.blobByName(t, "blogger_data_"+testUser+".json")
	require.Len(t, pushed.FavoritePosts, 1)
}

func TestBackup_SkipsUnchangedContent(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()

	require.NoError(t, env.history.Replace(ctx, models.CollectionBookmarks, testUser, []models.Item{{ID: "m1", Page: 5}}))

	require.NoError(t, env.service.Backup(ctx, testUser))
	assert.Equal(t, 1, env.remote.creates)

	// Identical content: the second push is short-circuited locally
	require.NoError(t, env.service.Backup(ctx, testUser))
	assert.Equal(t, 1, env.remote.creates)
	assert.Equal(t, 0, env.remote.updates)

	// A mutation changes the fingerprint and the push goes through
	require.NoError(t, env.history.AppendItem(ctx, models.CollectionBookmarks, testUser, models.Item{ID: "m2", Page: 1}))
	require.NoError(t, env.service.Backup(ctx, testUser))
	assert.Equal(t, 1, env.remote.updates)
}

func TestService_DeviceIDStable(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()

	id := env.service.DeviceID(ctx)
	require.NotEmpty(t, id)
	assert.Equal(t, id, env.service.DeviceID(ctx))
}

func TestService_LastSyncAt(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()

	_, ok := env.service.LastSyncAt(ctx, testUser)
	assert.False(t, ok)

	before := time.Now().Add(-time.Second)
	require.NoError(t, env.service.Sync(ctx, testUser))

	at, ok := env.service.LastSyncAt(ctx, testUser)
	require.True(t, ok)
	assert.True(t, at.After(before))
}

func TestService_WipeUserData(t *testing.T) {
	env := newSyncEnv(t)
	ctx := context.Background()

	require.NoError(t, env.service.Sync(ctx, testUser))
	_, ok := env.service.LastSyncAt(ctx, testUser)
	require.True(t, ok)

	require.NoError(t, env.service.WipeUserData(ctx, testUser))
	_, ok = env.service.LastSyncAt(ctx, testUser)
	assert.False(t, ok)
}
