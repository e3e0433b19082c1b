package models

// CollectionType identifies a per-user history collection.
type CollectionType string

const (
	// CollectionFavorites holds posts the user follows.
	CollectionFavorites CollectionType = "favorites"
	// CollectionBookmarks holds manga reading positions.
	CollectionBookmarks CollectionType = "bookmarks"
	// CollectionReads holds posts the user already opened.
	CollectionReads CollectionType = "reads"
)

// LegacyCollectionAlias maps collection names used by older database
// versions to their current names. Reads must consult the alias when the
// current key is absent so old devices keep their data after an upgrade.
var LegacyCollectionAlias = map[string]CollectionType{
	"follows": CollectionFavorites,
}

// ValidCollectionType reports whether ct names a known collection.
func ValidCollectionType(ct CollectionType) bool {
	switch ct {
	case CollectionFavorites, CollectionBookmarks, CollectionReads:
		return true
	}
	return false
}

// Item is a single entry in a history collection: a followed post, a manga
// bookmark or a read mark. Identity is the ID field (post id or manga id);
// a collection never holds two items with the same ID.
type Item struct {
	ID         string `json:"id"`
	Title      string `json:"title,omitempty"`
	URL        string `json:"url,omitempty"`
	Thumbnail  string `json:"thumbnail,omitempty"`
	Page       int    `json:"page,omitempty"`
	Chapter    string `json:"chapter,omitempty"`
	FavoriteAt int64  `json:"favoriteAt,omitempty"`
	Timestamp  int64  `json:"timestamp,omitempty"`
}
