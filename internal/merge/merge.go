// Package merge implements the reconciliation algebra for history
// collections: union of local and remote, deduplicated by item id with the
// remote side winning on conflict, ordered by recency descending.
package merge

import (
	"sort"

	"github.com/iudanet/blogkeeper/internal/models"
)

// Recency extracts the ordering field of an item for one collection kind.
type Recency func(models.Item) int64

// ByFavoriteAt orders favorites. Items written before favoriteAt existed
// fall back to their write timestamp.
func ByFavoriteAt(it models.Item) int64 {
	if it.FavoriteAt != 0 {
		return it.FavoriteAt
	}
	return it.Timestamp
}

// ByTimestamp orders bookmarks and read marks.
func ByTimestamp(it models.Item) int64 {
	return it.Timestamp
}

// RecencyFor returns the recency field used by a collection type.
func RecencyFor(ct models.CollectionType) Recency {
	if ct == models.CollectionFavorites {
		return ByFavoriteAt
	}
	return ByTimestamp
}

// Items merges local and remote into a deduplicated union. Iteration order
// is local-then-remote, so a remote item with a duplicate id overwrites the
// local one: remote is the authority on conflict. The result is sorted by
// recency descending and never contains two items with the same id.
func Items(local, remote []models.Item, recency Recency) []models.Item {
	byID := make(map[string]models.Item, len(local)+len(remote))
	order := make([]string, 0, len(local)+len(remote))

	for _, it := range local {
		if it.ID == "" {
			continue
		}
		if _, seen := byID[it.ID]; !seen {
			order = append(order, it.ID)
		}
		byID[it.ID] = it
	}
	for _, it := range remote {
		if it.ID == "" {
			continue
		}
		if _, seen := byID[it.ID]; !seen {
			order = append(order, it.ID)
		}
		byID[it.ID] = it
	}

	merged := make([]models.Item, 0, len(order))
	for _, id := range order {
		merged = append(merged, byID[id])
	}

	// Stable sort keeps first-seen order among equal recencies deterministic
	sort.SliceStable(merged, func(i, j int) bool {
		return recency(merged[i]) > recency(merged[j])
	})

	return merged
}
