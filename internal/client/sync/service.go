// Package sync implements the orchestrator reconciling the local history
// collections with the per-user remote backup blob. A sync pulls the
// remote blob, merges every collection with local state and writes the
// merged result to both sides, so local and remote converge to the same
// content.
package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/iudanet/blogkeeper/internal/client/api"
	"github.com/iudanet/blogkeeper/internal/client/drive"
	"github.com/iudanet/blogkeeper/internal/client/history"
	"github.com/iudanet/blogkeeper/internal/client/storage"
	"github.com/iudanet/blogkeeper/internal/crypto"
	"github.com/iudanet/blogkeeper/internal/keymutex"
	"github.com/iudanet/blogkeeper/internal/merge"
	"github.com/iudanet/blogkeeper/internal/models"
	"github.com/iudanet/blogkeeper/internal/validation"
	pkgapi "github.com/iudanet/blogkeeper/pkg/api"
)

// SyncCooldown is the minimum interval between full syncs. Rapid repeat
// calls inside the window are no-ops.
const SyncCooldown = 5 * time.Minute

// userDataCollection holds per-install bookkeeping records.
const userDataCollection = "userData"

// ErrCooldownActive reports a sync skipped because one ran recently.
var ErrCooldownActive = errors.New("sync skipped, ran recently")

// RemoteStore is the backup-file contract the orchestrator needs from the
// remote object store client.
type RemoteStore interface {
	FindFile(ctx context.Context, name string) (*pkgapi.DriveFile, error)
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
	SaveOrUpdateJSON(ctx context.Context, name string, v any) (*pkgapi.DriveFile, error)
	DeleteUserData(ctx context.Context, userID string) error
}

// userDataValue is the payload shape of bookkeeping records.
type userDataValue struct {
	Value string `json:"value"`
}

// Service is the sync orchestrator.
type Service struct {
	history *history.Repository
	remote  RemoteStore
	store   storage.KVStorage
	locks   *keymutex.KeyMutex
	limiter *rate.Limiter
	logger  *slog.Logger
	now     func() time.Time
}

// New creates the orchestrator.
func New(hist *history.Repository, remote RemoteStore, store storage.KVStorage, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		history: hist,
		remote:  remote,
		store:   store,
		locks:   keymutex.New(),
		limiter: rate.NewLimiter(rate.Every(SyncCooldown), 1),
		logger:  logger,
		now:     time.Now,
	}
}

var collectionTypes = []models.CollectionType{
	models.CollectionFavorites,
	models.CollectionBookmarks,
	models.CollectionReads,
}

// Sync reconciles all collections with the remote blob. The whole
// merge-and-write step runs under a per-user lock so overlapping syncs
// cannot double-apply merges. Network failures degrade to local-only
// operation and are not fatal.
func (s *Service) Sync(ctx context.Context, userID string) error {
	if err := validation.ValidateUserID(userID); err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	if !s.limiter.Allow() {
		s.logger.Debug("sync cooldown active, skipping", "user_id", userID)
		return ErrCooldownActive
	}

	unlock := s.locks.Lock("sync_" + userID)
	defer unlock()

	name := drive.BackupFileName(userID)

	blob, found, err := s.pullRemote(ctx, userID, name)
	if err != nil {
		if api.IsNetworkError(err) {
			s.logger.Warn("remote unreachable, continuing with local data only", "error", err)
			return nil
		}
		return err
	}

	merged := models.NewBackupBlob()
	for _, ct := range collectionTypes {
		local := s.history.Get(ctx, ct, userID)
		result := merge.Items(local, blob.Collection(ct), merge.RecencyFor(ct))

		if err := s.history.Replace(ctx, ct, userID, result); err != nil {
			return fmt.Errorf("failed to store merged %s: %w", ct, err)
		}
		merged.SetCollection(ct, result)
	}

	if err := s.push(ctx, userID, name, merged, !found); err != nil {
		if api.IsNetworkError(err) {
			s.logger.Warn("backup push failed, local state is current", "error", err)
		} else {
			return err
		}
	}

	s.recordLastSync(ctx, userID)
	s.logger.Info("sync complete", "user_id", userID,
		"favorites", len(merged.FavoritePosts),
		"bookmarks", len(merged.MangaBookmarks),
		"reads", len(merged.ReadPosts))
	return nil
}

// Backup pushes the current local state to the remote blob without pulling
// first (the opportunistic post-mutation push). Unchanged content is
// detected by fingerprint and skips the network write.
func (s *Service) Backup(ctx context.Context, userID string) error {
	if err := validation.ValidateUserID(userID); err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	unlock := s.locks.Lock("sync_" + userID)
	defer unlock()

	blob := models.NewBackupBlob()
	for _, ct := range collectionTypes {
		blob.SetCollection(ct, s.history.Get(ctx, ct, userID))
	}

	return s.push(ctx, userID, drive.BackupFileName(userID), blob, false)
}

// pullRemote fetches and decodes the user's backup blob. A missing remote
// file is the first-sync case: an empty blob is returned and found=false
// tells the caller to create the file. A corrupt blob degrades to empty
// rather than blocking the sync.
func (s *Service) pullRemote(ctx context.Context, userID, name string) (*models.BackupBlob, bool, error) {
	file, err := s.remote.FindFile(ctx, name)
	if errors.Is(err, drive.ErrFileNotFound) {
		s.logger.Info("no remote backup yet, will create one", "user_id", userID)
		return models.NewBackupBlob(), false, nil
	}
	if err != nil {
		return nil, false, err
	}

	data, err := s.remote.DownloadFile(ctx, file.ID)
	if err != nil {
		if errors.Is(err, drive.ErrFileNotFound) {
			return models.NewBackupBlob(), false, nil
		}
		return nil, false, err
	}

	blob := models.NewBackupBlob()
	if err := json.Unmarshal(data, blob); err != nil {
		s.logger.Warn("remote backup is corrupt, treating as empty", "error", err)
		return models.NewBackupBlob(), true, nil
	}
	return blob, true, nil
}

// push writes the blob remotely unless its content fingerprint matches the
// last pushed one. force bypasses the short-circuit (first-sync create).
func (s *Service) push(ctx context.Context, userID, name string, blob *models.BackupBlob, force bool) error {
	// The fingerprint covers collections only, so stamping metadata does
	// not defeat the short-circuit.
	fingerprint := *blob
	fingerprint.DeviceID = ""
	fingerprint.UpdatedAt = 0
	content, err := json.Marshal(&fingerprint)
	if err != nil {
		return fmt.Errorf("failed to serialize backup: %w", err)
	}
	hash := crypto.HashBytes(content)

	if !force && hash == s.lastPushedHash(ctx, userID) {
		s.logger.Debug("backup unchanged, skipping remote write", "user_id", userID)
		return nil
	}

	blob.DeviceID = s.DeviceID(ctx)
	blob.UpdatedAt = s.now().UnixMilli()

	if _, err := s.remote.SaveOrUpdateJSON(ctx, name, blob); err != nil {
		return fmt.Errorf("failed to push backup: %w", err)
	}

	if err := s.store.Put(ctx, userDataCollection, backupHashKey(userID), userDataValue{Value: hash}); err != nil {
		s.logger.Warn("failed to record backup fingerprint", "error", err)
	}
	return nil
}

func (s *Service) lastPushedHash(ctx context.Context, userID string) string {
	rec, err := s.store.Get(ctx, userDataCollection, backupHashKey(userID))
	if err != nil {
		return ""
	}
	var v userDataValue
	if err := rec.Decode(&v); err != nil {
		return ""
	}
	return v.Value
}

// DeviceID returns the per-install identifier, minting and persisting one
// on first use.
func (s *Service) DeviceID(ctx context.Context) string {
	const key = "device_id"

	if rec, err := s.store.Get(ctx, userDataCollection, key); err == nil {
		var v userDataValue
		if err := rec.Decode(&v); err == nil && v.Value != "" {
			return v.Value
		}
	}

	id := uuid.NewString()
	if err := s.store.Put(ctx, userDataCollection, key, userDataValue{Value: id}); err != nil {
		s.logger.Warn("failed to persist device id", "error", err)
	}
	return id
}

// LastSyncAt reports when the last successful sync finished.
func (s *Service) LastSyncAt(ctx context.Context, userID string) (time.Time, bool) {
	rec, err := s.store.Get(ctx, userDataCollection, lastSyncKey(userID))
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(rec.Timestamp), true
}

// WipeUserData drops the user's sync bookkeeping (logout cleanup).
func (s *Service) WipeUserData(ctx context.Context, userID string) error {
	if err := s.store.Delete(ctx, userDataCollection, lastSyncKey(userID)); err != nil {
		return fmt.Errorf("failed to drop last-sync record: %w", err)
	}
	if err := s.store.Delete(ctx, userDataCollection, backupHashKey(userID)); err != nil {
		return fmt.Errorf("failed to drop backup fingerprint: %w", err)
	}
	return nil
}

func (s *Service) recordLastSync(ctx context.Context, userID string) {
	if err := s.store.Put(ctx, userDataCollection, lastSyncKey(userID), userDataValue{Value: "ok"}); err != nil {
		s.logger.Warn("failed to record sync time", "error", err)
	}
}

func lastSyncKey(userID string) string   { return "last_sync_" + userID }
func backupHashKey(userID string) string { return "backup_hash_" + userID }
