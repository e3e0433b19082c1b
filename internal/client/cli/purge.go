package cli

import (
	"context"
	"fmt"
)

// cacheCollection is cleared wholesale on purge.
const cacheCollection = "cache"

// runPurge deletes the remote backup and all local data, then logs out.
func (c *Cli) runPurge(ctx context.Context) error {
	userID, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Purge ===")
	c.io.Println("This deletes your remote backup and ALL local data.")
	answer, err := c.io.ReadInput("Type 'yes' to continue: ")
	if err != nil {
		return err
	}
	if answer != "yes" {
		c.io.Println("Aborted.")
		return nil
	}

	if err := c.remote.DeleteUserData(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete remote backup: %w", err)
	}
	c.io.Println("✓ Remote backup deleted.")

	if err := c.store.DeleteAll(ctx, cacheCollection); err != nil {
		c.io.Printf("Warning: failed to clear cache: %v\n", err)
	}

	// Logout clears the encrypted fields and wipes the history collections
	if err := c.auth.Logout(ctx); err != nil {
		return fmt.Errorf("failed to clear local session: %w", err)
	}

	c.io.Println("✓ Local data cleared. You are logged out.")
	return nil
}
