package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/blogkeeper/internal/models"
)

// requireUser returns the logged-in user's id or a login hint.
func (c *Cli) requireUser(ctx context.Context) (string, error) {
	profile, ok := c.auth.Profile(ctx)
	if !ok {
		return "", fmt.Errorf("not logged in. Run 'blogkeeper login' first")
	}
	return profile.ID, nil
}

// printItems renders one collection.
func (c *Cli) printItems(ct models.CollectionType, items []models.Item) {
	if len(items) == 0 {
		c.io.Printf("No %s yet.\n", ct)
		return
	}

	c.io.Printf("%s (%d):\n", ct, len(items))
	for _, it := range items {
		line := "  " + it.ID
		if it.Title != "" {
			line += "  " + it.Title
		}
		if ct == models.CollectionBookmarks {
			line += fmt.Sprintf("  page %d", it.Page)
			if it.Chapter != "" {
				line += "  chapter " + it.Chapter
			}
		}
		if at := itemTime(ct, it); !at.IsZero() {
			line += "  (" + at.Format("2006-01-02 15:04") + ")"
		}
		c.io.Println(line)
	}
}

func itemTime(ct models.CollectionType, it models.Item) time.Time {
	ms := it.Timestamp
	if ct == models.CollectionFavorites && it.FavoriteAt != 0 {
		ms = it.FavoriteAt
	}
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

// backupAfterMutation pushes the change remotely, degrading to a warning
// when the push cannot go through. The local write already succeeded.
func (c *Cli) backupAfterMutation(ctx context.Context, userID string) {
	if err := c.sync.Backup(ctx, userID); err != nil {
		c.io.Printf("Warning: could not back up: %v\n", err)
	}
}
