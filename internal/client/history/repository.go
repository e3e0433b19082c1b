// Package history implements the per-user collections of followed posts,
// manga bookmarks and read marks. Reads degrade to an empty slice on any
// storage failure so rendering call sites never branch on errors; writes
// propagate so the caller can surface them.
package history

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/blogkeeper/internal/client/storage"
	"github.com/iudanet/blogkeeper/internal/models"
	"github.com/iudanet/blogkeeper/internal/validation"
)

// Collection is the storage collection holding every history record.
const Collection = "history"

// record is the persisted payload shape: the item array wrapped in an
// object so the store's id/timestamp stamping has a place to land.
type record struct {
	Data []models.Item `json:"data"`
}

// Repository is the history/bookmark store.
type Repository struct {
	store  storage.KVStorage
	logger *slog.Logger
}

// New creates the repository.
func New(store storage.KVStorage, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{store: store, logger: logger}
}

// key derives the storage key, resolving legacy collection aliases so that
// requests using an old name land on the current record.
func key(ct models.CollectionType, userID string) string {
	if canonical, ok := models.LegacyCollectionAlias[string(ct)]; ok {
		ct = canonical
	}
	return string(ct) + "_" + userID
}

// legacyKey returns the pre-rename storage key for ct, or "" when none
// exists. Old databases hold favorites under the "follows_" prefix.
func legacyKey(ct models.CollectionType, userID string) string {
	for alias, canonical := range models.LegacyCollectionAlias {
		if canonical == ct {
			return alias + "_" + userID
		}
	}
	return ""
}

// Get returns the collection's items. Always returns a non-nil slice:
// missing records, unknown types and storage failures all degrade to empty.
func (r *Repository) Get(ctx context.Context, ct models.CollectionType, userID string) []models.Item {
	if err := validation.ValidateCollectionType(ct); err != nil {
		r.logger.Warn("history read with unknown collection type", "type", ct)
		return []models.Item{}
	}
	if err := validation.ValidateUserID(userID); err != nil {
		return []models.Item{}
	}

	rec, err := r.store.Get(ctx, Collection, key(ct, userID))
	if err != nil {
		if lk := legacyKey(ct, userID); lk != "" {
			rec, err = r.store.Get(ctx, Collection, lk)
		}
	}
	if err != nil {
		return []models.Item{}
	}

	var stored record
	if err := rec.Decode(&stored); err != nil {
		r.logger.Warn("failed to decode history record", "key", rec.ID, "error", err)
		return []models.Item{}
	}
	if stored.Data == nil {
		return []models.Item{}
	}
	return stored.Data
}

// Replace overwrites the collection with the given items (bulk writes and
// the post-merge write-back).
func (r *Repository) Replace(ctx context.Context, ct models.CollectionType, userID string, items []models.Item) error {
	if err := r.validateWrite(ct, userID); err != nil {
		return err
	}
	if items == nil {
		items = []models.Item{}
	}

	if err := r.store.Put(ctx, Collection, key(ct, userID), record{Data: items}); err != nil {
		return fmt.Errorf("failed to replace %s collection: %w", ct, err)
	}
	return nil
}

// AppendItem adds a single item to the collection. An existing item with
// the same id is replaced in place rather than duplicated.
func (r *Repository) AppendItem(ctx context.Context, ct models.CollectionType, userID string, item models.Item) error {
	if err := r.validateWrite(ct, userID); err != nil {
		return err
	}
	if item.ID == "" {
		return fmt.Errorf("history item has no id")
	}

	items := r.Get(ctx, ct, userID)

	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}

	if err := r.store.Put(ctx, Collection, key(ct, userID), record{Data: items}); err != nil {
		return fmt.Errorf("failed to append to %s collection: %w", ct, err)
	}
	return nil
}

// RemoveItem deletes the item with the given id. Removing an absent id is
// a no-op.
func (r *Repository) RemoveItem(ctx context.Context, ct models.CollectionType, userID, itemID string) error {
	if err := r.validateWrite(ct, userID); err != nil {
		return err
	}

	items := r.Get(ctx, ct, userID)
	kept := make([]models.Item, 0, len(items))
	for _, it := range items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return nil
	}

	if err := r.store.Put(ctx, Collection, key(ct, userID), record{Data: kept}); err != nil {
		return fmt.Errorf("failed to remove from %s collection: %w", ct, err)
	}
	return nil
}

// WipeUserData deletes every collection belonging to userID, legacy keys
// included. Invoked on logout and on refresh failure.
func (r *Repository) WipeUserData(ctx context.Context, userID string) error {
	if err := validation.ValidateUserID(userID); err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	types := []models.CollectionType{
		models.CollectionFavorites,
		models.CollectionBookmarks,
		models.CollectionReads,
	}

	for _, ct := range types {
		if err := r.store.Delete(ctx, Collection, key(ct, userID)); err != nil {
			return fmt.Errorf("failed to wipe %s collection: %w", ct, err)
		}
		if lk := legacyKey(ct, userID); lk != "" {
			if err := r.store.Delete(ctx, Collection, lk); err != nil {
				return fmt.Errorf("failed to wipe legacy %s collection: %w", ct, err)
			}
		}
	}

	r.logger.Info("history collections wiped", "user_id", userID)
	return nil
}

// Sizes reports the item count per collection (status command).
func (r *Repository) Sizes(ctx context.Context, userID string) map[models.CollectionType]int {
	sizes := make(map[models.CollectionType]int, 3)
	for _, ct := range []models.CollectionType{
		models.CollectionFavorites,
		models.CollectionBookmarks,
		models.CollectionReads,
	} {
		sizes[ct] = len(r.Get(ctx, ct, userID))
	}
	return sizes
}

func (r *Repository) validateWrite(ct models.CollectionType, userID string) error {
	if err := validation.ValidateCollectionType(ct); err != nil {
		return fmt.Errorf("invalid collection type: %w", err)
	}
	if err := validation.ValidateUserID(userID); err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}
	return nil
}
