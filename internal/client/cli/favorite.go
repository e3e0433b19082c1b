package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/blogkeeper/internal/models"
)

func (c *Cli) runFavorite(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: blogkeeper favorite <add|remove> <post-id> [title]")
	}
	action, postID := args[0], args[1]

	userID, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	switch action {
	case "add":
		item := models.Item{
			ID:         postID,
			Title:      strings.Join(args[2:], " "),
			FavoriteAt: time.Now().UnixMilli(),
		}
		if err := c.history.AppendItem(ctx, models.CollectionFavorites, userID, item); err != nil {
			return fmt.Errorf("failed to add favorite: %w", err)
		}
		c.io.Printf("✓ Added %s to favorites\n", postID)

	case "remove":
		if err := c.history.RemoveItem(ctx, models.CollectionFavorites, userID, postID); err != nil {
			return fmt.Errorf("failed to remove favorite: %w", err)
		}
		c.io.Printf("✓ Removed %s from favorites\n", postID)

	default:
		return fmt.Errorf("unknown action %q, want add or remove", action)
	}

	c.backupAfterMutation(ctx, userID)
	return nil
}
