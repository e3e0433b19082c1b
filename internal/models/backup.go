package models

// BackupBlob is the JSON document stored as one file per user in the remote
// object store. It is overwritten wholesale on every backup; modifiedTime of
// the remote file is the only version metadata.
type BackupBlob struct {
	ReadPosts      []Item `json:"readPosts"`
	FavoritePosts  []Item `json:"favoritePosts"`
	MangaBookmarks []Item `json:"mangaBookmarks"`
	DeviceID       string `json:"deviceId,omitempty"`
	UpdatedAt      int64  `json:"updatedAt,omitempty"`
}

// NewBackupBlob returns a blob whose collections marshal as empty JSON
// arrays rather than null. The remote file created on first backup must
// carry the empty-array shape.
func NewBackupBlob() *BackupBlob {
	return &BackupBlob{
		ReadPosts:      []Item{},
		FavoritePosts:  []Item{},
		MangaBookmarks: []Item{},
	}
}

// Collection returns the blob slice backing the given collection type.
func (b *BackupBlob) Collection(ct CollectionType) []Item {
	switch ct {
	case CollectionFavorites:
		return b.FavoritePosts
	case CollectionBookmarks:
		return b.MangaBookmarks
	case CollectionReads:
		return b.ReadPosts
	}
	return nil
}

// SetCollection replaces the blob slice backing the given collection type.
func (b *BackupBlob) SetCollection(ct CollectionType, items []Item) {
	switch ct {
	case CollectionFavorites:
		b.FavoritePosts = items
	case CollectionBookmarks:
		b.MangaBookmarks = items
	case CollectionReads:
		b.ReadPosts = items
	}
}
