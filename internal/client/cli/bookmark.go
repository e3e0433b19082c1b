package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/iudanet/blogkeeper/internal/models"
)

// runBookmark records a manga reading position. Saving the same manga id
// again moves the bookmark instead of duplicating it.
func (c *Cli) runBookmark(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: blogkeeper bookmark <manga-id> <page> [chapter]")
	}
	mangaID := args[0]

	page, err := strconv.Atoi(args[1])
	if err != nil || page < 0 {
		return fmt.Errorf("page must be a non-negative number, got %q", args[1])
	}

	chapter := ""
	if len(args) > 2 {
		chapter = args[2]
	}

	userID, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	item := models.Item{
		ID:        mangaID,
		Page:      page,
		Chapter:   chapter,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := c.history.AppendItem(ctx, models.CollectionBookmarks, userID, item); err != nil {
		return fmt.Errorf("failed to save bookmark: %w", err)
	}

	c.io.Printf("✓ Bookmarked %s at page %d\n", mangaID, page)
	c.backupAfterMutation(ctx, userID)
	return nil
}
