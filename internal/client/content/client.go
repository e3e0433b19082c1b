// Package content implements the read-side client for the blog's public
// feed: fetch, sanitize, map to the stable Post shape, and cache with an
// offline snapshot so the reader works without connectivity.
package content

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/iudanet/blogkeeper/internal/client/api"
	"github.com/iudanet/blogkeeper/internal/client/cache"
	"github.com/iudanet/blogkeeper/internal/models"
)

// FetchTimeout bounds one feed download.
const FetchTimeout = 10 * time.Second

// CacheKey stores the post list; the content_list prefix selects the
// short TTL.
const CacheKey = "content_list_posts"

// Client fetches and caches the blog's feed.
type Client struct {
	feedURL    string
	httpClient *http.Client
	parser     *gofeed.Parser
	policy     *bluemonday.Policy
	cache      *cache.Service
	logger     *slog.Logger
}

// New creates the feed client. The sanitizer policy is allowlist-based:
// scripts, inline handlers and embedded frames never reach the cache.
func New(feedURL string, cacheSvc *cache.Service, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: FetchTimeout,
		},
		parser: gofeed.NewParser(),
		policy: bluemonday.UGCPolicy(),
		cache:  cacheSvc,
		logger: logger,
	}
}

// Posts returns the blog's post list: cache first, then the network, then
// the offline snapshot when the network is unreachable.
func (c *Client) Posts(ctx context.Context) ([]models.Post, error) {
	var cached []models.Post
	if c.cache.Get(ctx, CacheKey, &cached) {
		return cached, nil
	}

	posts, err := c.fetch(ctx)
	if err != nil {
		var offline []models.Post
		if c.cache.GetOffline(ctx, CacheKey, &offline) {
			c.logger.Warn("feed fetch failed, serving offline snapshot", "error", err)
			return offline, nil
		}
		return nil, err
	}

	if err := c.cache.Set(ctx, CacheKey, posts); err != nil {
		c.logger.Warn("failed to cache post list", "error", err)
	}
	if err := c.cache.SetOffline(ctx, CacheKey, posts); err != nil {
		c.logger.Warn("failed to store offline snapshot", "error", err)
	}

	return posts, nil
}

// Refresh drops the cached list so the next Posts call hits the network.
func (c *Client) Refresh(ctx context.Context) error {
	return c.cache.Clear(ctx, CacheKey)
}

// fetch downloads and parses the feed.
func (c *Client) fetch(ctx context.Context) ([]models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &api.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &api.APIError{Status: resp.StatusCode, Message: "feed fetch failed"}
	}

	feed, err := c.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	posts := make([]models.Post, 0, len(feed.Items))
	for _, item := range feed.Items {
		posts = append(posts, c.toPost(item))
	}

	c.logger.Debug("feed fetched", "posts", len(posts))
	return posts, nil
}

// toPost maps one feed entry onto the stable Post shape, sanitizing the
// HTML body.
func (c *Client) toPost(item *gofeed.Item) models.Post {
	id := item.GUID
	if id == "" {
		id = item.Link
	}

	content := item.Content
	if content == "" {
		content = item.Description
	}

	author := ""
	if len(item.Authors) > 0 {
		author = item.Authors[0].Name
	}

	post := models.Post{
		ID:      id,
		Title:   item.Title,
		Content: c.policy.Sanitize(content),
		Link:    item.Link,
		Author:  author,
		Labels:  item.Categories,
	}
	if item.PublishedParsed != nil {
		post.Published = *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		post.Updated = *item.UpdatedParsed
	}
	return post
}
