package cli

import (
	"context"
	"time"

	"github.com/iudanet/blogkeeper/internal/client/auth"
	"github.com/iudanet/blogkeeper/internal/models"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	state := c.auth.State(ctx)
	c.io.Printf("Session: %s\n", state)

	if state == auth.StateNoToken {
		c.io.Println()
		c.io.Println("Run 'blogkeeper login' to authenticate.")
		return nil
	}

	profile, ok := c.auth.Profile(ctx)
	if !ok {
		return nil
	}
	c.io.Printf("User: %s (%s)\n", profile.Name, profile.Email)

	sizes := c.history.Sizes(ctx, profile.ID)
	c.io.Println()
	c.io.Printf("Favorites: %d\n", sizes[models.CollectionFavorites])
	c.io.Printf("Bookmarks: %d\n", sizes[models.CollectionBookmarks])
	c.io.Printf("Read:      %d\n", sizes[models.CollectionReads])

	c.io.Println()
	if at, ok := c.sync.LastSyncAt(ctx, profile.ID); ok {
		c.io.Printf("Last sync: %s (%s ago)\n",
			at.Format(time.RFC3339), time.Since(at).Round(time.Second))
	} else {
		c.io.Println("Last sync: never")
	}

	return nil
}
