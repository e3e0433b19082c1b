package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runFeed(ctx context.Context) error {
	posts, err := c.content.Posts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load the feed: %w", err)
	}

	if len(posts) == 0 {
		c.io.Println("The feed is empty.")
		return nil
	}

	for _, post := range posts {
		c.io.Printf("%s  %s\n", post.Published.Format("2006-01-02"), post.Title)
		c.io.Printf("    %s\n", post.Link)
	}
	return nil
}
