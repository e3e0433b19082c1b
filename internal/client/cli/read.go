package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/blogkeeper/internal/models"
)

func (c *Cli) runRead(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: blogkeeper read <post-id> [title]")
	}
	postID := args[0]

	userID, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	item := models.Item{
		ID:        postID,
		Title:     strings.Join(args[1:], " "),
		Timestamp: time.Now().UnixMilli(),
	}
	if err := c.history.AppendItem(ctx, models.CollectionReads, userID, item); err != nil {
		return fmt.Errorf("failed to mark as read: %w", err)
	}

	c.io.Printf("✓ Marked %s as read\n", postID)
	c.backupAfterMutation(ctx, userID)
	return nil
}
