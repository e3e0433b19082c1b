package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/blogkeeper/internal/client/sync"
)

// runLogin exchanges a pasted authorization code for a session and pulls
// the remote backup. A restore failure degrades to a warning: the user
// stays logged in with local data.
func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println("Authorize the app in your browser, then paste the code below.")

	code, err := c.io.ReadSecret("Authorization code: ")
	if err != nil {
		return fmt.Errorf("failed to read authorization code: %w", err)
	}

	tok, err := c.exchanger.ExchangeCode(ctx, code)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	profile, err := c.auth.SetSession(ctx, tok)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if profile == nil {
		return fmt.Errorf("login failed: provider returned no identity")
	}

	c.io.Printf("✓ Logged in as %s (%s)\n", profile.Name, profile.Email)

	if err := c.sync.Sync(ctx, profile.ID); err != nil && !errors.Is(err, sync.ErrCooldownActive) {
		c.io.Printf("Warning: could not restore backup: %v\n", err)
		c.io.Println("Your local data is intact; run 'blogkeeper sync' to retry.")
	}

	return nil
}
