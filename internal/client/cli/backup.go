package cli

import (
	"context"
	"fmt"
)

// runBackup pushes local state to the remote blob without pulling first.
func (c *Cli) runBackup(ctx context.Context) error {
	userID, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	if err := c.sync.Backup(ctx, userID); err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	c.io.Println("✓ Backup pushed.")
	return nil
}
