package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/blogkeeper/internal/models"
	"github.com/iudanet/blogkeeper/internal/validation"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: blogkeeper list <favorites|bookmarks|reads>")
	}

	ct := models.CollectionType(args[0])
	if err := validation.ValidateCollectionType(ct); err != nil {
		return err
	}

	userID, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	c.printItems(ct, c.history.Get(ctx, ct, userID))
	return nil
}
