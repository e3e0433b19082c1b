package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/blogkeeper/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context) error {
	userID, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Sync ===")

	if err := c.sync.Sync(ctx, userID); err != nil {
		if errors.Is(err, sync.ErrCooldownActive) {
			c.io.Println("Already synced recently; nothing to do.")
			return nil
		}
		return fmt.Errorf("sync failed: %w", err)
	}

	c.io.Println("✓ Sync complete.")
	return nil
}
